package state

import "database/sql"

// Mock is an in-memory test double for Manager.
type Mock struct {
	views  map[string]ViewState
	last   string
	closed bool
	Saves  int

	// Err, when set, fails GetView and SaveLastDocument.
	Err error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{views: make(map[string]ViewState)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) GetView(ref string) (*ViewState, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	v, ok := m.views[ref]
	if !ok {
		return nil, nil //nolint:nilnil // matches Manager
	}
	return &v, nil
}

func (m *Mock) SaveView(v ViewState) {
	m.views[v.DocumentRef] = v
	m.Saves++
}

func (m *Mock) GetLastDocument() (string, error) { return m.last, nil }

func (m *Mock) SaveLastDocument(ref string) error {
	if m.Err != nil {
		return m.Err
	}
	m.last = ref
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }

var _ Interface = (*Mock)(nil)
