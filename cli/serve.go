package main

import (
	"context"
	"fmt"
	"log"

	"github.com/amonks/trackboard/server"
	"github.com/amonks/trackboard/subcmd"
)

func serve(ctx context.Context, args []string) error {
	subcmd := subcmd.New("serve", "serve the dashboard")
	var (
		port     = subcmd.Int("port", 9999, "http port")
		dataPath = subcmd.String("data", "", "path to the dataset csv (default: next to the binary)")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	catalog, err := openCatalog(ctx, *dataPath)
	if err != nil {
		return err
	}
	defer catalog.Close()

	tracks, err := catalog.CountTracks(ctx)
	if err != nil {
		return err
	}
	artists, err := catalog.CountArtists(ctx)
	if err != nil {
		return err
	}
	log.Printf("serving %d tracks by %d artists on http://localhost:%d", tracks, artists, *port)

	addr := fmt.Sprintf(":%d", *port)
	return server.Run(ctx, catalog, addr)
}
