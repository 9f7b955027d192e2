package operations

import (
	"fmt"
	"io"
	"os"
	"time"

	"gosyncquotes/internal/config"
	"gosyncquotes/internal/sync"
	"gosyncquotes/internal/utils"
)

// ServerInfo is the server connection summary included in the export.
type ServerInfo struct {
	BaseURL string `json:"baseUrl"`
}

// DiagnosticSnapshot is the downloadable export document: a point-in-time
// picture of the sync configuration and the recorded conflicts. It is meant
// for inspection and bug reports, not for re-importing.
type DiagnosticSnapshot struct {
	ServerConfig ServerInfo    `json:"serverConfig"`
	SyncInterval int64         `json:"syncInterval"` // milliseconds
	LastSync     *time.Time    `json:"lastSync"`
	Conflicts    []sync.Record `json:"conflicts"`
	Timestamp    time.Time     `json:"timestamp"`
}

// BuildSnapshot assembles the diagnostic snapshot from the live application.
func BuildSnapshot(cfg *config.Config, coordinator *sync.Coordinator) DiagnosticSnapshot {
	snapshot := DiagnosticSnapshot{
		ServerConfig: ServerInfo{BaseURL: cfg.Server.BaseURL},
		SyncInterval: coordinator.Interval().Milliseconds(),
		Conflicts:    coordinator.ConflictLog().Recent(0),
		Timestamp:    time.Now().UTC(),
	}
	if lastSync := coordinator.Stats().LastSyncAt; !lastSync.IsZero() {
		snapshot.LastSync = &lastSync
	}
	if snapshot.Conflicts == nil {
		snapshot.Conflicts = []sync.Record{}
	}
	return snapshot
}

// ExportDiagnostics writes the snapshot as indented JSON.
func ExportDiagnostics(w io.Writer, cfg *config.Config, coordinator *sync.Coordinator) error {
	data, err := utils.MarshalJSON(BuildSnapshot(cfg, coordinator))
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportDiagnosticsFile writes the snapshot to the given path. An empty
// path picks a dated default name in the working directory; the name
// actually used is returned.
func ExportDiagnosticsFile(cfg *config.Config, coordinator *sync.Coordinator, path string) (string, error) {
	if path == "" {
		path = DefaultExportFilename(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := ExportDiagnostics(f, cfg, coordinator); err != nil {
		return "", err
	}
	return path, nil
}

// DefaultExportFilename returns the dated default export file name.
func DefaultExportFilename(now time.Time) string {
	return fmt.Sprintf("gosyncquotes-diagnostics-%s.json", now.Format("2006-01-02"))
}
