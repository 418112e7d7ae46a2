package app

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/document"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/keymap"
	"github.com/llehouerou/folio/internal/notify"
	"github.com/llehouerou/folio/internal/state"
	"github.com/llehouerou/folio/internal/ui/confirm"
	"github.com/llehouerou/folio/internal/ui/doclist"
	"github.com/llehouerou/folio/internal/ui/headerbar"
	"github.com/llehouerou/folio/internal/ui/helpbindings"
	"github.com/llehouerou/folio/internal/ui/statusbar"
	"github.com/llehouerou/folio/internal/ui/viewer"
)

// DocumentStore is the part of the document store the app reads and
// deletes through.
type DocumentStore interface {
	ListDocuments(ctx context.Context) ([]document.Document, error)
	GetDocumentByRef(ctx context.Context, ref string) (document.Document, error)
	Pages(ctx context.Context, docID int64) ([]document.Page, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// Importer imports extraction files found in the inbox.
type Importer interface {
	ImportFile(ctx context.Context, path string) (document.Document, error)
}

// Deps are the services the app runs on. Importer and Inbox may be nil
// when no inbox is configured, Notifier when imports are not announced.
// InboxErr is the reason a configured inbox is not watched.
type Deps struct {
	Store    DocumentStore
	State    state.Interface
	Importer Importer
	Inbox    <-chan string
	InboxErr error
	Notifier notify.Notifier
}

// Model is the root application model containing all state.
type Model struct {
	ViewMode    string
	Documents   doclist.Model
	Viewer      viewer.Model
	Store       DocumentStore
	StateMgr    state.Interface
	Importer    Importer
	Inbox       <-chan string
	Notifier    notify.Notifier
	Zone        *zone.Manager
	Keys        *keymap.Resolver
	Confirm     confirm.Model
	Help        helpbindings.Model
	HelpVisible bool
	StatusMsg   string
	StatusLevel statusbar.Level
	Width       int
	Height      int

	copyText    func(string) error
	pending     *viewer.Position // restored once the viewer has a size
	lastSaved   state.ViewState
	restoreLast bool
	startupErr  *ErrorMsg
}

// New creates the application model from configuration.
func New(cfg *config.Config, deps Deps) Model {
	z := zone.New()

	docs := doclist.New()
	docs.SetZone(z)
	docs.SetFocused(true)

	v := viewer.New(viewer.Options{
		Scale:       cfg.PageScale(),
		Denominator: cfg.Denominator(),
		SyncEnabled: cfg.SyncEnabled(),
		Highlight:   cfg.Text.Highlight,
	})
	v.SetZone(z)

	var startupErr *ErrorMsg
	if deps.InboxErr != nil {
		startupErr = &ErrorMsg{Op: errmsg.OpInboxWatch, Context: cfg.Inbox, Err: deps.InboxErr}
	}

	return Model{
		ViewMode:    headerbar.ModeDocuments,
		Documents:   docs,
		Viewer:      v,
		Store:       deps.Store,
		StateMgr:    deps.State,
		Importer:    deps.Importer,
		Inbox:       deps.Inbox,
		Notifier:    deps.Notifier,
		Zone:        z,
		Keys:        keymap.For("global"),
		Confirm:     confirm.New(),
		Help:        helpbindings.New(),
		copyText:    clipboard.WriteAll,
		restoreLast: true,
		startupErr:  startupErr,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadDocuments()}
	if m.restoreLast {
		cmds = append(cmds, m.openLastDocument())
	}
	cmds = append(cmds, m.waitForInbox())
	if m.startupErr != nil {
		e := *m.startupErr
		cmds = append(cmds, func() tea.Msg { return e })
	}
	return tea.Batch(cmds...)
}

// setMode switches the active view and moves keyboard focus with it.
func (m *Model) setMode(mode string) {
	m.ViewMode = mode
	m.Documents.SetFocused(mode == headerbar.ModeDocuments)
	m.Viewer.SetFocused(mode == headerbar.ModeViewer)
}

func (m *Model) setStatus(msg string, level statusbar.Level) {
	m.StatusMsg = msg
	m.StatusLevel = level
}
