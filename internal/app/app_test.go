package app_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/app"
	"github.com/vladislavdragonenkov/storefront/internal/config"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/notify"
)

func TestBuild_MemoryBackend(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: config.BackendMemory,
		LogLevel:       "panic",
	}

	shop, closeAll, err := app.Build(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, closeAll()) }()

	require.Empty(t, shop.Cart())
	require.NoError(t, shop.AddToCart(domain.Product{ID: 1, Title: "Widget", Price: decimal.NewFromFloat(10.00)}))
	require.Len(t, shop.Cart(), 1)
}

func TestBuild_FileBackendSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		StorageBackend: config.BackendFile,
		StateDir:       dir,
		LogLevel:       "panic",
	}
	recorder := notify.NewRecorder()

	shop, closeAll, err := app.BuildWithNotifier(context.Background(), cfg, recorder)
	require.NoError(t, err)
	require.NoError(t, shop.AddToCart(domain.Product{ID: 1, Title: "Widget", Price: decimal.NewFromFloat(10.00)}))
	addr, err := shop.AddAddress(domain.Address{Name: "Ann", Street: "Main St 1", City: "Springfield"})
	require.NoError(t, err)
	require.NoError(t, closeAll())

	// Повторная сборка поверх того же каталога — имитация перезапуска процесса.
	restarted, closeAll2, err := app.BuildWithNotifier(context.Background(), cfg, recorder)
	require.NoError(t, err)
	defer func() { require.NoError(t, closeAll2()) }()

	require.Len(t, restarted.Cart(), 1)
	require.Equal(t, int64(1), restarted.Cart()[0].ID)
	require.Len(t, restarted.Addresses(), 1)
	require.Equal(t, addr.ID, restarted.Addresses()[0].ID)

	// Полный цикл: заказ на восстановленной корзине.
	order, err := restarted.PlaceOrder(addr.ID)
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.NewFromFloat(10.00)))
	require.Empty(t, restarted.Cart())

	last, ok := recorder.Last()
	require.True(t, ok)
	require.Equal(t, "Order Placed!", last.Title)
}

func TestBuild_UnknownBackend(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: "redis",
		LogLevel:       "panic",
	}

	_, _, err := app.Build(context.Background(), cfg)
	require.Error(t, err)
}
