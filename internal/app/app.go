package app

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/config"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/notify"
	"github.com/vladislavdragonenkov/storefront/internal/storage/file"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
	"github.com/vladislavdragonenkov/storefront/internal/store"
)

// Build собирает полностью связанный Store: хранилище по конфигурации,
// journal-приёмник уведомлений (UI-слой может заменить его своим через
// BuildWithNotifier), опциональный Kafka producer — и один раз гидрирует
// состояние. Возвращаемая функция закрывает занятые ресурсы.
func Build(ctx context.Context, cfg *config.Config) (*store.Shop, func() error, error) {
	return BuildWithNotifier(ctx, cfg, nil)
}

// BuildWithNotifier — как Build, но с приёмником уведомлений вызывающей стороны.
func BuildWithNotifier(ctx context.Context, cfg *config.Config, notifier domain.Notifier) (*store.Shop, func() error, error) {
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	logger := log.WithField("component", "app")

	var closers []func() error
	closeAll := func() error {
		var errs []error
		// Закрываем в обратном порядке создания.
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	repo, err := buildRepository(ctx, cfg, logger, &closers)
	if err != nil {
		_ = closeAll()
		return nil, nil, err
	}

	if notifier == nil {
		notifier = notify.NewLogNotifier(log.WithField("component", "notifier"))
	}

	// Инициализация Kafka producer (опционально)
	var shop *store.Shop
	shopLogger := log.WithField("component", "shop")
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer initialized")
			closers = append(closers, producer.Close)
			shop = store.NewShopWithPublisher(repo, notifier, producer, shopLogger)
		}
	}
	if shop == nil {
		shop = store.NewShop(repo, notifier, shopLogger)
	}

	if err := shop.Hydrate(); err != nil {
		_ = closeAll()
		return nil, nil, fmt.Errorf("hydrate shop: %w", err)
	}

	return shop, closeAll, nil
}

func buildRepository(ctx context.Context, cfg *config.Config, logger *log.Entry, closers *[]func() error) (domain.StateRepository, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Info("using in-memory state repository, state will not survive restarts")
		return memory.NewStateRepository(), nil

	case config.BackendFile:
		repo, err := file.NewRepository(cfg.StateDir)
		if err != nil {
			return nil, fmt.Errorf("init file repository: %w", err)
		}
		logger.WithField("dir", cfg.StateDir).Info("using file state repository")
		return repo, nil

	case config.BackendPostgres:
		pg, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		*closers = append(*closers, pg.Close)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		logger.Info("using postgres state repository")
		return postgres.NewStateRepository(pg), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
