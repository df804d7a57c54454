package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/amonks/trackboard/data"
)

// A view is everything one render needs: the selection, the option list,
// and both summary tables. It is rebuilt from scratch on every request --
// selector changes reload the page, so no chart state survives a change.
type view struct {
	Genre      string                  `json:"genre"`
	Genres     []string                `json:"genres"`
	RowCount   int                     `json:"row_count"`
	Artists    []data.ArtistSummary    `json:"artists"`
	AlbumTypes []data.AlbumTypeSummary `json:"album_types"`
}

// buildView runs the filter and both aggregations for the request's genre
// selection. A missing or empty genre parameter means "All"; a tag with no
// matching rows produces empty summary tables, not an error.
func (s *server) buildView(r *http.Request) (*view, error) {
	ctx := r.Context()

	genre := r.URL.Query().Get("genre")
	if genre == "" {
		genre = data.AllGenres
	}

	genres, err := s.db.GenreNames(ctx)
	if err != nil {
		return nil, err
	}

	artists, err := s.db.ArtistSummaries(ctx, genre)
	if err != nil {
		return nil, err
	}

	albumTypes, err := s.db.AlbumTypeSummaries(ctx, genre)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.CountView(ctx, genre)
	if err != nil {
		return nil, err
	}

	return &view{
		Genre:      genre,
		Genres:     genres,
		RowCount:   rows,
		Artists:    artists,
		AlbumTypes: albumTypes,
	}, nil
}

func (s *server) handleSummaries(w http.ResponseWriter, r *http.Request) {
	v, err := s.buildView(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding summaries: %v", err)
	}
}
