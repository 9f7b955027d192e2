package app

import (
	"path/filepath"
	"testing"
	"time"

	"gosyncquotes/internal/config"
	"gosyncquotes/quote"
	"gosyncquotes/remote"
	"gosyncquotes/store"
	_ "gosyncquotes/store/bolt"
)

func newTestApp(t *testing.T) (*App, *store.MemStore, *remote.MockGateway) {
	t.Helper()
	st := store.NewMemStore()
	gateway := remote.NewMockGateway()
	a, err := NewAppWithDeps(&config.Config{}, st, gateway)
	if err != nil {
		t.Fatalf("NewAppWithDeps failed: %v", err)
	}
	return a, st, gateway
}

// TestNewAppWithDeps verifies the wiring of an injected app
func TestNewAppWithDeps(t *testing.T) {
	a, st, gateway := newTestApp(t)

	if a.Store() != st {
		t.Error("Expected the injected store")
	}
	if a.Gateway() != gateway {
		t.Error("Expected the injected gateway")
	}
	if a.State() == nil {
		t.Fatal("Expected a state object")
	}
	if a.Coordinator() == nil {
		t.Fatal("Expected a sync coordinator")
	}

	// A fresh store gets the default quote set.
	if got := len(a.State().Quotes()); got != len(DefaultQuotes()) {
		t.Errorf("Expected %d seeded quotes, got %d", len(DefaultQuotes()), got)
	}
}

// TestNewAppWithConfig verifies the registry-backed store path end to end
func TestNewAppWithConfig(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{BaseURL: "http://quotes.test"},
		Store: config.StoreConfig{
			Type: "bolt",
			Path: filepath.Join(t.TempDir(), "state.bolt"),
		},
	}

	a, err := NewAppWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewAppWithConfig failed: %v", err)
	}
	defer a.ShutdownWithTimeout(time.Second)

	if got := len(a.State().Quotes()); got == 0 {
		t.Error("Expected the seeded quote set")
	}
}

// TestNewAppWithConfigUnknownStore verifies unknown store types fail with
// a suggestion rather than panic
func TestNewAppWithConfigUnknownStore(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{BaseURL: "http://quotes.test"},
		Store: config.StoreConfig{
			Type: "leveldb",
			Path: filepath.Join(t.TempDir(), "state.db"),
		},
	}

	if _, err := NewAppWithConfig(cfg); err == nil {
		t.Error("Expected an error for an unregistered store type")
	}
}

// TestStartAutoSync verifies the config gate
func TestStartAutoSync(t *testing.T) {
	a, _, _ := newTestApp(t)

	// Auto disabled: no timer.
	a.StartAutoSync()
	if a.Coordinator().AutoSyncActive() {
		t.Error("Expected no auto-sync with sync.auto disabled")
	}

	a.config.Sync.Auto = true
	a.StartAutoSync()
	if !a.Coordinator().AutoSyncActive() {
		t.Error("Expected auto-sync running with sync.auto enabled")
	}

	a.Coordinator().StopAutoSync()
}

// TestShutdownStopsSync verifies triggers are ignored after shutdown
func TestShutdownStopsSync(t *testing.T) {
	a, _, gateway := newTestApp(t)
	gateway.SetRecords([]quote.RemoteRecord{
		{ID: "1", Text: "From server", Category: "Server", ServerTimestamp: time.Now(), Source: quote.SourceServer},
	})

	a.ShutdownWithTimeout(time.Second)

	a.Coordinator().TriggerSync()
	time.Sleep(50 * time.Millisecond)
	if got := gateway.FetchCalls(); got != 0 {
		t.Errorf("Expected no fetches after shutdown, got %d", got)
	}
	if a.Coordinator().AutoSyncActive() {
		t.Error("Expected auto-sync stopped after shutdown")
	}
}
