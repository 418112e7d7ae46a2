// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/folio/internal/store"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Document operations
	OpDocumentsLoad  Op = "load documents"
	OpDocumentOpen   Op = "open document"
	OpDocumentDelete Op = "delete document"

	// Import operations
	OpImportFile  Op = "import file"
	OpInboxWatch  Op = "watch inbox"
	OpClipboardCp Op = "copy to clipboard"

	// View state
	OpViewSave    Op = "save view position"
	OpViewRestore Op = "restore view position"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Sprintf("Failed to %s: document no longer exists", op)
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
