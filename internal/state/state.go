package state

import (
	"database/sql"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/folio/internal/db"
)

const (
	appName      = "folio"
	dbFileName   = "folio.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]ViewState // by document ref
	debounce  time.Duration
	closed    bool
}

// Open opens the database at path. An empty path uses the XDG data dir.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultDBPath(); err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	return newManager(db), nil
}

func newManager(db *sql.DB) *Manager {
	return &Manager{
		db:       db,
		pending:  make(map[string]ViewState),
		debounce: saveDebounce,
	}
}

// Close writes pending view states and closes the database. A debounced
// save firing afterwards is dropped.
func (m *Manager) Close() error {
	m.Flush()
	m.saveMu.Lock()
	m.closed = true
	m.saveMu.Unlock()
	return m.db.Close()
}

// Flush writes pending view states immediately.
func (m *Manager) Flush() {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()
	m.writePending()
}

// writePending saves and clears the pending view states. Failures are
// logged; the viewer keeps working without its saved positions.
func (m *Manager) writePending() {
	m.saveMu.Lock()
	if m.closed {
		m.saveMu.Unlock()
		return
	}
	pending := m.pending
	m.pending = make(map[string]ViewState)
	// Held across the writes so Close waits for a save in progress.
	defer m.saveMu.Unlock()

	for _, v := range pending {
		if err := saveView(m.db, v); err != nil {
			slog.Warn("save view", "ref", v.DocumentRef, "error", err)
		}
	}
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetView returns the saved view of a document, nil if none was saved.
// Unsaved pending changes are returned first.
func (m *Manager) GetView(ref string) (*ViewState, error) {
	m.saveMu.Lock()
	if v, ok := m.pending[ref]; ok {
		m.saveMu.Unlock()
		return &v, nil
	}
	m.saveMu.Unlock()
	return getView(m.db, ref)
}

// SaveView records the view of a document. Writes are debounced so a burst
// of scroll events results in a single write.
func (m *Manager) SaveView(v ViewState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[v.DocumentRef] = v

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, m.writePending)
}

func (m *Manager) GetLastDocument() (string, error) {
	return getLastDocument(m.db)
}

func (m *Manager) SaveLastDocument(ref string) error {
	return saveLastDocument(m.db, ref)
}

// DefaultDBPath returns the database location under the XDG data dir.
func DefaultDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
