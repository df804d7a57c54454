// Package server renders the dashboard: one page, one genre selector, a
// scatter plot of artist summaries and a bar chart of album-type summaries,
// all recomputed from the catalog on every request.
package server

import (
	"context"
	"net/http"

	"github.com/amonks/trackboard/db"
)

// Run serves the dashboard at addr until ctx is canceled.
func Run(ctx context.Context, db *db.DB, addr string) error {
	srv := http.Server{Addr: addr, Handler: Handler(db)}

	errs := make(chan error)
	go func() { errs <- srv.ListenAndServe() }()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		return <-errs
	}
}

// Handler returns the dashboard's route table.
func Handler(db *db.DB) http.Handler {
	s := &server{db: db}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /api/summaries", s.handleSummaries)
	mux.HandleFunc("GET /charts/artists.svg", s.handleArtistChart)
	mux.HandleFunc("GET /charts/album-types.svg", s.handleAlbumTypeChart)
	return mux
}

type server struct {
	db *db.DB
}
