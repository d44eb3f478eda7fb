package bootstrap

import (
	"fmt"
	"time"

	"fintech-hub-client/internal/config"
	"fintech-hub-client/internal/pkg/logger"
	"fintech-hub-client/internal/service"
	"fintech-hub-client/pkg/api"
	"fintech-hub-client/pkg/events"
	"fintech-hub-client/pkg/store"
)

// Container wires the client together: one API client, one session store,
// one event bus, one session service.
type Container struct {
	Config  *config.Config
	Logger  logger.ILogger
	Api     *api.Client
	Store   store.Store
	Bus     *events.Bus
	Session service.ISessionService
}

func NewContainer(cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	sessionStore, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	apiClient := api.New(cfg.Api.BaseURL, time.Duration(cfg.Api.TimeoutSeconds)*time.Second)
	bus := events.NewBus()

	sessionService := service.NewSessionService(apiClient, sessionStore, bus, sysLogger)

	return &Container{
		Config:  cfg,
		Logger:  sysLogger,
		Api:     apiClient,
		Store:   sessionStore,
		Bus:     bus,
		Session: sessionService,
	}, nil
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.State.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(cfg.State.RedisURL)
	case "file", "":
		return store.NewFileStore(cfg.State.FilePath)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.State.Backend)
	}
}

// Close releases everything the container holds that needs releasing.
func (c *Container) Close() {
	if c.Bus != nil {
		_ = c.Bus.Close()
	}
	if closer, ok := c.Store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	_ = c.Logger.Sync()
}
