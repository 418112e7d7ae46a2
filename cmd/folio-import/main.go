// Command folio-import stores extraction files in the folio database.
//
// Usage:
//
//	folio-import FILE...
//
// The database location comes from the folio configuration. Files that
// fail to import are reported and skipped; the exit status is non-zero
// when any file failed.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/importer"
	"github.com/llehouerou/folio/internal/logging"
	"github.com/llehouerou/folio/internal/state"
	"github.com/llehouerou/folio/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: folio-import FILE...")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel()))

	stateMgr, err := state.Open(cfg.Database)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	failed := importAll(importer.New(store.New(stateMgr.DB())), os.Args[1:], os.Stdout, os.Stderr)
	stateMgr.Close()
	if failed > 0 {
		os.Exit(1)
	}
}

// importAll prints one "ref, name, pages" line per imported file to out
// and one message per failure to errOut.
func importAll(im *importer.Importer, paths []string, out, errOut io.Writer) (failed int) {
	ctx := context.Background()
	for _, path := range paths {
		doc, err := im.ImportFile(ctx, path)
		if err != nil {
			fmt.Fprintln(errOut, errmsg.FormatWith(errmsg.OpImportFile, path, err))
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%d pages\n", doc.Ref, doc.FileName, doc.PageCount)
	}
	return failed
}
