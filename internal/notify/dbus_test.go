//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/folio/internal/document"
)

func TestNew_WithoutSessionBus(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path=/nonexistent/folio-test-bus")

	n := New("Folio")

	require.NotNil(t, n)
	assert.NoError(t, n.Notify(Notification{Title: "ignored"}))
}

func TestNotify_SessionBus(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n := New("Folio")
	notif := Imported(document.Document{FileName: "test.pdf", PageCount: 2})
	notif.Timeout = 1000

	assert.NoError(t, n.Notify(notif))
}
