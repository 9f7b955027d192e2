package sync

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"gosyncquotes/internal/utils"
	"gosyncquotes/store"
)

const (
	// DefaultSyncInterval is the periodic cadence when neither the store nor
	// the config carries a preference.
	DefaultSyncInterval = 30 * time.Second

	// MinSyncInterval is the enforced floor. Shorter intervals are clamped
	// with a warning, not rejected.
	MinSyncInterval = 10 * time.Second

	// ReconnectSyncDelay separates the catch-up sync from the reconnect
	// event itself. It is distinct from the periodic cadence.
	ReconnectSyncDelay = time.Second
)

// ErrOffline reports a manual sync attempted while the client knows it is
// disconnected. Periodic ticks in that state pause silently instead.
var ErrOffline = errors.New("sync paused while offline")

// Coordinator owns the sync lifecycle: the manual trigger, the periodic
// timer, and the online/offline reaction. At most one cycle runs at a time;
// triggers landing while one is in flight are dropped, not queued.
type Coordinator struct {
	manager *SyncManager
	store   store.Store

	// Timer lifecycle and published status, both guarded by mu.
	mu       sync.Mutex
	interval time.Duration
	ticker   *time.Ticker
	stopCh   chan struct{}
	status   Status

	minInterval    time.Duration
	reconnectDelay time.Duration

	// Sync state tracking (prevent duplicate cycles)
	syncing  atomic.Bool
	online   atomic.Bool
	running  atomic.Bool
	shutdown atomic.Bool

	// Goroutine management
	wg sync.WaitGroup

	// Logging (silent errors)
	logger *log.Logger
}

// NewCoordinator creates a coordinator around one sync manager. The periodic
// interval comes from the store when a preference was saved there; otherwise
// the configured fallback applies, then the default. The coordinator starts
// idle and assumed online; nothing syncs until a trigger or StartAutoSync.
func NewCoordinator(manager *SyncManager, st store.Store, fallback time.Duration) (*Coordinator, error) {
	if manager == nil || st == nil {
		return nil, fmt.Errorf("sync manager and store are required")
	}

	c := &Coordinator{
		manager:        manager,
		store:          st,
		minInterval:    MinSyncInterval,
		reconnectDelay: ReconnectSyncDelay,
		logger:         log.New(os.Stderr, "[AutoSync] ", log.LstdFlags),
	}

	// The stored preference takes precedence over the configured fallback.
	interval := store.LoadSyncInterval(st)
	if interval <= 0 {
		interval = fallback
	}
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	c.interval = c.clampInterval(interval)

	c.online.Store(true)
	c.status = Status{Message: "Idle", Severity: SeverityInfo, At: time.Now()}
	return c, nil
}

func (c *Coordinator) clampInterval(d time.Duration) time.Duration {
	if d < c.minInterval {
		utils.Warnf("Sync interval %v is below the %v minimum, clamping", d, c.minInterval)
		return c.minInterval
	}
	return d
}

// TriggerSync starts one sync cycle in the background and returns
// immediately. A call while a cycle is in flight is dropped.
func (c *Coordinator) TriggerSync() {
	c.trigger("manual")
}

func (c *Coordinator) trigger(reason string) {
	// Check if shutting down
	if c.shutdown.Load() {
		return
	}

	// Check if already syncing
	if !c.syncing.CompareAndSwap(false, true) {
		// Already syncing, skip
		return
	}

	c.wg.Add(1)
	go c.runCycle(reason)
}

// runCycle is the goroutine body behind background triggers. Errors are
// logged, never surfaced; the published status carries them to the UI.
func (c *Coordinator) runCycle(reason string) {
	defer c.wg.Done()
	defer c.syncing.Store(false)

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			c.logger.Printf("Panic in %s sync: %v", reason, r)
		}
	}()

	result, err := c.doSync()
	if err != nil {
		if !errors.Is(err, ErrOffline) {
			c.logger.Printf("%s sync failed: %v", reason, err)
		}
		return
	}

	if result.ConflictsResolved > 0 || result.NetNew > 0 {
		c.logger.Printf("%s sync completed: %d fetched, %d conflicts resolved, %d new",
			reason, result.Fetched, result.ConflictsResolved, result.NetNew)
	}
}

// RunSync runs one cycle synchronously and returns its result. It is the
// blocking form of TriggerSync used by the CLI; a cycle already in flight is
// reported as an error rather than queued behind.
func (c *Coordinator) RunSync() (*SyncResult, error) {
	if !c.syncing.CompareAndSwap(false, true) {
		return nil, utils.ErrSyncInProgress()
	}
	defer c.syncing.Store(false)

	return c.doSync()
}

// doSync assumes the caller holds the syncing gate.
func (c *Coordinator) doSync() (*SyncResult, error) {
	if !c.online.Load() {
		c.publish("Sync paused: offline", SeverityWarn)
		return nil, ErrOffline
	}

	c.publish("Syncing with server...", SeverityInfo)
	result, err := c.manager.SyncOnce()
	if err != nil {
		c.publish("Sync failed: "+err.Error(), SeverityError)
		return nil, err
	}

	message, severity := syncStatusLine(result)
	c.publish(message, severity)
	return result, nil
}

// StartAutoSync begins periodic syncing at the configured interval. Starting
// an already running timer is a no-op.
func (c *Coordinator) StartAutoSync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.shutdown.Load() || c.running.Load() {
		return
	}
	c.startTimerLocked()
}

// StopAutoSync prevents future scheduled triggers. A cycle currently in
// flight is never aborted.
func (c *Coordinator) StopAutoSync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

func (c *Coordinator) startTimerLocked() {
	c.ticker = time.NewTicker(c.interval)
	c.stopCh = make(chan struct{})
	c.running.Store(true)
	c.wg.Add(1)
	go c.runTimer(c.ticker, c.stopCh)
}

func (c *Coordinator) stopTimerLocked() {
	if !c.running.Load() {
		return
	}
	c.running.Store(false)
	c.ticker.Stop()
	close(c.stopCh)
	c.ticker = nil
	c.stopCh = nil
}

// runTimer owns one ticker generation. SetInterval replaces generations
// wholesale, so the loop works on captured parameters rather than reading
// them back from the coordinator.
func (c *Coordinator) runTimer(ticker *time.Ticker, stop chan struct{}) {
	defer c.wg.Done()
	for {
		select {
		case <-ticker.C:
			c.trigger("auto")
		case <-stop:
			return
		}
	}
}

// SetInterval changes the periodic cadence, persists the preference, and
// returns the value actually applied after clamping. A running timer is torn
// down and recreated; the new period takes effect from the next tick.
func (c *Coordinator) SetInterval(d time.Duration) time.Duration {
	d = c.clampInterval(d)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.interval = d
	store.SaveSyncInterval(c.store, d)
	if c.running.Load() {
		c.stopTimerLocked()
		c.startTimerLocked()
	}
	return d
}

// Interval returns the current periodic cadence.
func (c *Coordinator) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// SetOnline feeds a connectivity transition to the coordinator. Going
// offline pauses the effect of periodic ticks; coming back online schedules
// one catch-up sync after a short delay.
func (c *Coordinator) SetOnline(online bool) {
	if c.online.Swap(online) == online {
		return
	}

	if online {
		c.logger.Printf("Connection restored, scheduling catch-up sync")
		c.publish("Back online", SeverityInfo)
		time.AfterFunc(c.reconnectDelay, func() { c.trigger("reconnect") })
		return
	}

	c.logger.Printf("Connection lost, sync paused")
	c.publish("Offline: sync paused", SeverityWarn)
}

// Online reports the last connectivity state fed to the coordinator.
func (c *Coordinator) Online() bool {
	return c.online.Load()
}

// Syncing reports whether a cycle is currently in flight.
func (c *Coordinator) Syncing() bool {
	return c.syncing.Load()
}

// AutoSyncActive reports whether the periodic timer is running.
func (c *Coordinator) AutoSyncActive() bool {
	return c.running.Load()
}

func (c *Coordinator) publish(message string, severity Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Status{Message: message, Severity: severity, At: time.Now()}
}

// Status returns the most recently published sync status.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Stats is the aggregate view the UI layer renders.
type Stats struct {
	TotalQuotes        int       `json:"totalQuotes"`
	LocalCount         int       `json:"localCount"`
	RemoteDerivedCount int       `json:"remoteDerivedCount"`
	ConflictsResolved  int       `json:"conflictsResolved"`
	LastSyncAt         time.Time `json:"lastSyncAt,omitzero"`
	AutoSyncActive     bool      `json:"autoSyncActive"`
}

// Stats assembles the current aggregate statistics.
func (c *Coordinator) Stats() Stats {
	total, local, remoteDerived := c.manager.QuoteSet().Counts()
	return Stats{
		TotalQuotes:        total,
		LocalCount:         local,
		RemoteDerivedCount: remoteDerived,
		ConflictsResolved:  c.manager.ConflictLog().Total(),
		LastSyncAt:         store.LoadLastSync(c.store),
		AutoSyncActive:     c.running.Load(),
	}
}

// ConflictLog exposes the audit log for display.
func (c *Coordinator) ConflictLog() *ConflictLog {
	return c.manager.ConflictLog()
}

// ClearConflictLog discards all retained conflict records.
func (c *Coordinator) ClearConflictLog() {
	c.manager.ConflictLog().Clear()
}

// Manager returns the underlying sync manager for direct access.
func (c *Coordinator) Manager() *SyncManager {
	return c.manager
}

// Shutdown stops the timer and waits for a cycle in flight to finish, up to
// the timeout. Triggers arriving after shutdown are ignored.
func (c *Coordinator) Shutdown(timeout time.Duration) {
	c.shutdown.Store(true)
	c.StopAutoSync()

	// Wait for pending syncs with timeout
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		c.logger.Printf("Warning: pending sync did not complete within %v", timeout)
	}
}

func syncStatusLine(r *SyncResult) (string, Severity) {
	switch {
	case r.ConflictsResolved > 0:
		return fmt.Sprintf("Sync complete: %d conflict(s) resolved, server version kept", r.ConflictsResolved), SeverityWarn
	case r.NetNew > 0:
		return fmt.Sprintf("Sync complete: %d new quote(s) from server", r.NetNew), SeverityInfo
	default:
		return "Sync complete: already up to date", SeverityInfo
	}
}
