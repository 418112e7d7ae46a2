package state

import "database/sql"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	GetView(ref string) (*ViewState, error)
	SaveView(v ViewState)
	GetLastDocument() (string, error)
	SaveLastDocument(ref string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
