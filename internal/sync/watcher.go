package sync

import (
	"sync"
	"time"

	"gosyncquotes/remote"
)

// DefaultProbeInterval is the cadence of connectivity probes.
const DefaultProbeInterval = 15 * time.Second

// ConnectivityWatcher polls the gateway and feeds reachability transitions
// to the coordinator. It stands in for the connectivity-change notifications
// a browser environment would push at the widget.
type ConnectivityWatcher struct {
	coordinator *Coordinator
	gateway     remote.Gateway
	interval    time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewConnectivityWatcher creates a watcher probing at the given interval.
// An interval of zero or less falls back to DefaultProbeInterval.
func NewConnectivityWatcher(coordinator *Coordinator, gateway remote.Gateway, interval time.Duration) *ConnectivityWatcher {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &ConnectivityWatcher{
		coordinator: coordinator,
		gateway:     gateway,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

// Start launches the probe loop. The first probe runs immediately rather
// than one interval in.
func (w *ConnectivityWatcher) Start() {
	w.wg.Add(1)
	go w.run()
}

func (w *ConnectivityWatcher) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.probe()
	for {
		select {
		case <-ticker.C:
			w.probe()
		case <-w.stopCh:
			return
		}
	}
}

// probe counts any response from the server as reachable.
func (w *ConnectivityWatcher) probe() {
	w.coordinator.SetOnline(w.gateway.Ping() == nil)
}

// Stop ends the probe loop and waits for it to exit. Safe to call more than
// once.
func (w *ConnectivityWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}
