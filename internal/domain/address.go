package domain

// Address — сохранённый адрес доставки. После создания неизменяем:
// операции обновления нет, только удаление. Заказы хранят собственную
// копию адреса, поэтому удаление не портит историю.
type Address struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Phone  string `json:"phone"`
}

// Validate проверяет обязательные поля адреса и возвращает список замечаний.
func (a Address) Validate() []error {
	var errs []error

	if a.Name == "" {
		errs = append(errs, ErrAddressNameRequired)
	}
	if a.Street == "" {
		errs = append(errs, ErrAddressStreetRequired)
	}
	if a.City == "" {
		errs = append(errs, ErrAddressCityRequired)
	}

	return errs
}

// CloneAddresses возвращает копию списка адресов.
func CloneAddresses(addrs []Address) []Address {
	if addrs == nil {
		return nil
	}
	result := make([]Address, len(addrs))
	copy(result, addrs)
	return result
}
