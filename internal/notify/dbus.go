//go:build linux

package notify

import (
	"log/slog"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	appName string
	obj     dbus.BusObject
}

// New creates a Notifier that sends desktop notifications via D-Bus as
// appName. Without a session bus it returns a notifier that does nothing.
func New(appName string) Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		slog.Debug("desktop notifications unavailable", "error", err)
		return stubNotifier{}
	}
	return &dbusNotifier{
		appName: appName,
		obj:     conn.Object(dbusNotifyDest, dbusNotifyPath),
	}
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) error {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(strings.ToLower(n.appName)),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		n.appName,
		uint32(0),
		"",
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)
	return call.Err
}
