package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const opTimeout = 5 * time.Second

// stateRepository хранит каждую коллекцию отдельной JSONB-строкой
// в таблице shop_state, по одной на ключ коллекции.
type stateRepository struct {
	db *sql.DB
}

// NewStateRepository создаёт PostgreSQL-реализацию StateRepository.
func NewStateRepository(store *Store) domain.StateRepository {
	return &stateRepository{db: store.DB()}
}

// Load читает все сохранённые коллекции одним запросом.
func (r *stateRepository) Load() (domain.State, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT collection, payload FROM shop_state
	`)
	if err != nil {
		return domain.State{}, fmt.Errorf("select shop state: %w", err)
	}
	defer rows.Close()

	var state domain.State
	for rows.Next() {
		var collection string
		var payload []byte
		if err := rows.Scan(&collection, &payload); err != nil {
			return domain.State{}, fmt.Errorf("scan shop state row: %w", err)
		}

		var decodeErr error
		switch collection {
		case domain.CollectionCart:
			decodeErr = json.Unmarshal(payload, &state.Cart)
		case domain.CollectionWishlist:
			decodeErr = json.Unmarshal(payload, &state.Wishlist)
		case domain.CollectionAddresses:
			decodeErr = json.Unmarshal(payload, &state.Addresses)
		case domain.CollectionOrders:
			decodeErr = json.Unmarshal(payload, &state.Orders)
		default:
			// Неизвестные ключи игнорируем: схема может расти вперёд кода.
		}
		if decodeErr != nil {
			return domain.State{}, fmt.Errorf("decode %s payload: %w", collection, decodeErr)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.State{}, fmt.Errorf("iterate shop state rows: %w", err)
	}

	return state, nil
}

// SaveCart сохраняет корзину.
func (r *stateRepository) SaveCart(items []domain.CartItem) error {
	return r.saveCollection(domain.CollectionCart, items)
}

// SaveWishlist сохраняет wishlist.
func (r *stateRepository) SaveWishlist(products []domain.Product) error {
	return r.saveCollection(domain.CollectionWishlist, products)
}

// SaveAddresses сохраняет адресную книгу.
func (r *stateRepository) SaveAddresses(addrs []domain.Address) error {
	return r.saveCollection(domain.CollectionAddresses, addrs)
}

// SaveOrders сохраняет список заказов.
func (r *stateRepository) SaveOrders(orders []domain.Order) error {
	return r.saveCollection(domain.CollectionOrders, orders)
}

func (r *stateRepository) saveCollection(collection string, src any) error {
	payload, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	// nil-срез сериализуется в json null; храним пустой массив.
	if string(payload) == "null" {
		payload = []byte("[]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO shop_state (collection, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (collection) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()
	`, collection, payload)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", collection, err)
	}
	return nil
}

var _ domain.StateRepository = (*stateRepository)(nil)
