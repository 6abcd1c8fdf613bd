package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/blobstore"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/logging"
)

// app wires the session together: config, logger, blob slot, catalog
// loader, cart store. Everything downstream receives these as explicit
// handles; nothing reaches into package state.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	slot   blobstore.Store
	loader *catalog.Loader
	cart   *cart.Store
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.LOG_LEVEL)

	var src catalog.Source = catalog.NewMockSource()
	if cfg.PRODUCTS_URL != "" {
		src = &catalog.RemoteSource{
			URL:    cfg.PRODUCTS_URL,
			Client: &http.Client{Timeout: cfg.FETCH_TIMEOUT},
		}
	}

	slot, err := openSlot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		log:    logger,
		slot:   slot,
		loader: catalog.NewLoader(src),
		cart:   cart.NewStore(ctx, slot, cfg.CART_KEY, logger),
	}, nil
}

func openSlot(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	switch cfg.CART_BACKEND {
	case "", "file":
		return blobstore.NewFileStore(cfg.CART_DIR)
	case "sqlite":
		return blobstore.OpenSQLite(cfg.CART_DB_PATH)
	case "redis":
		return blobstore.OpenRedis(ctx, cfg.REDIS_ADDR)
	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.CART_BACKEND)
	}
}

// context attaches the session logger so downstream code can pick it
// up with logging.FromContext.
func (a *app) context(ctx context.Context) context.Context {
	return logging.IntoContext(ctx, a.log)
}

func (a *app) Close() {
	if err := a.slot.Close(); err != nil {
		a.log.Error("slot_close_failed", "error", err)
	}
}
