// trackboard serves a one-page dashboard over a static spotify track
// export: filter by artist genre, compare artist popularity against average
// track popularity, and compare album types.
//
// the track table is loaded from a csv next to the binary (or -data), then
// cleaned and fanned out into an in-memory sqlite catalog. see db/schema.sql
// for info about the catalog.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/trackboard/data"
	"github.com/amonks/trackboard/dataset"
	"github.com/amonks/trackboard/db"
	"github.com/amonks/trackboard/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		panic(err)
	}
}

var usage = strings.TrimSpace(`
usage: trackboard $cmd
valid $cmd are 'serve', 'genres', 'summary'
for help: trackboard $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	if len(os.Args) < 2 {
		return fmt.Errorf(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "serve":
		return serve(ctx, args)

	case "genres":
		return genres(ctx, args)

	case "summary":
		return summary(ctx, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}

// openCatalog loads the track table (from path, or the memoized default
// next to the binary when path is empty) and populates a fresh in-memory
// catalog with it.
func openCatalog(ctx context.Context, path string) (*db.DB, error) {
	var tracks []data.Track
	var err error
	if path == "" {
		tracks, err = dataset.Tracks()
	} else {
		tracks, err = dataset.Load(path)
	}
	if err != nil {
		return nil, err
	}

	catalog, err := db.Open(db.InMemory)
	if err != nil {
		return nil, err
	}

	if err := catalog.Populate(ctx, tracks); err != nil {
		catalog.Close()
		return nil, err
	}

	return catalog, nil
}
