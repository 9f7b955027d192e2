package app

import (
	"fmt"
	"time"

	"gosyncquotes/internal/config"
	"gosyncquotes/internal/sync"
	"gosyncquotes/internal/utils"
	"gosyncquotes/remote"
	"gosyncquotes/store"
)

// App holds the wired-together application: config, store, state, the remote
// gateway and the sync coordinator. Commands create one App and share it for
// their lifetime.
type App struct {
	config      *config.Config
	store       store.Store
	state       *State
	gateway     remote.Gateway
	coordinator *sync.Coordinator
}

// NewApp creates and initializes a new App instance from the loaded config
func NewApp() (*App, error) {
	return NewAppWithConfig(config.GetConfig())
}

// NewAppWithConfig wires an App around an explicit config, opening the
// configured store and pointing the gateway at the configured server.
func NewAppWithConfig(cfg *config.Config) (*App, error) {
	storePath, err := cfg.StorePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}

	st, err := store.Open(cfg.Store.Type, storePath)
	if err != nil {
		return nil, utils.ErrStoreOpen(storePath, err)
	}

	return NewAppWithDeps(cfg, st, remote.NewClient(cfg.Server.BaseURL))
}

// NewAppWithDeps wires an App around injected collaborators. Tests use this
// with an in-memory store and a mock gateway.
func NewAppWithDeps(cfg *config.Config, st store.Store, gateway remote.Gateway) (*App, error) {
	state := NewState(st)
	manager := sync.NewSyncManager(state, st, gateway, sync.NewConflictLog(sync.DefaultLogCapacity))

	coordinator, err := sync.NewCoordinator(manager, st, cfg.SyncInterval())
	if err != nil {
		return nil, fmt.Errorf("failed to create sync coordinator: %w", err)
	}

	return &App{
		config:      cfg,
		store:       st,
		state:       state,
		gateway:     gateway,
		coordinator: coordinator,
	}, nil
}

// Config returns the loaded configuration
func (a *App) Config() *config.Config {
	return a.config
}

// Store returns the open store handle
func (a *App) Store() store.Store {
	return a.store
}

// State returns the application state object
func (a *App) State() *State {
	return a.state
}

// Gateway returns the remote gateway
func (a *App) Gateway() remote.Gateway {
	return a.gateway
}

// Coordinator returns the sync coordinator
func (a *App) Coordinator() *sync.Coordinator {
	return a.coordinator
}

// StartAutoSync begins periodic background syncing when the config asks for
// it. Safe to call unconditionally.
func (a *App) StartAutoSync() {
	if a.config.Sync.Auto {
		a.coordinator.StartAutoSync()
	}
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() {
	a.ShutdownWithTimeout(5 * time.Second)
}

// ShutdownWithTimeout stops background syncing, waits up to timeout for an
// in-flight cycle and closes the store.
func (a *App) ShutdownWithTimeout(timeout time.Duration) {
	a.coordinator.Shutdown(timeout)
	if err := a.store.Close(); err != nil {
		utils.Warnf("Failed to close store: %v", err)
	}
}
