// Package notify sends desktop notifications for finished background work.
package notify

import (
	"fmt"

	"github.com/llehouerou/folio/internal/document"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// defaultTimeout lets the notification server pick how long to show it.
const defaultTimeout = -1

// Notification contains data for a desktop notification.
type Notification struct {
	Title   string // Summary text (required)
	Body    string // Body text (optional)
	Timeout int32  // ms, -1 = server default, 0 = never expire
	Urgency Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification. Unavailable notification servers are
	// not an error.
	Notify(n Notification) error
}

// Imported describes a document that finished importing.
func Imported(doc document.Document) Notification {
	pages := fmt.Sprintf("%d pages", doc.PageCount)
	if doc.PageCount == 1 {
		pages = "1 page"
	}
	return Notification{
		Title:   "Document imported",
		Body:    fmt.Sprintf("%s (%s)", doc.FileName, pages),
		Timeout: defaultTimeout,
		Urgency: UrgencyLow,
	}
}

// ImportFailed describes an extraction file that could not be imported.
func ImportFailed(path string, err error) Notification {
	return Notification{
		Title:   "Import failed",
		Body:    fmt.Sprintf("%s: %v", path, err),
		Timeout: defaultTimeout,
		Urgency: UrgencyNormal,
	}
}

// stubNotifier drops notifications where no notification service exists.
type stubNotifier struct{}

func (stubNotifier) Notify(Notification) error { return nil }
