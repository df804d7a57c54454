// Package dataset loads the track table the dashboard serves: a static CSV
// export of spotify tracks. The table is read and cleaned once per process
// and memoized; everything downstream treats it as immutable.
package dataset

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/amonks/trackboard/data"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Filename is the dataset the dashboard serves, expected next to the binary.
const Filename = "spotify_data_clean.csv"

// ErrUnavailable reports that the dataset cannot be served: the file is
// missing, unreadable, or not shaped like the track table. It is fatal at
// startup; the dashboard cannot render without data.
var ErrUnavailable = errors.New("dataset unavailable")

func unavailable(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, fmt.Sprintf(format, args...))
}

var requiredColumns = []string{
	"track_id",
	"track_name",
	"artist_name",
	"artist_popularity",
	"track_popularity",
	"album_type",
	"artist_genres",
}

// Load reads and cleans the track table at path. Cleaning happens here,
// exactly once, upstream of any expansion: genre and album-type text is
// lower-cased, missing genres become the "unknown" tag, and non-numeric
// popularity values become nulls. Cleaning already-clean data is a no-op.
func Load(path string) ([]data.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable("error opening dataset at '%s': %v", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			"artist_popularity": series.Float,
			"track_popularity":  series.Float,
		}))
	if df.Err != nil {
		return nil, unavailable("error reading dataset at '%s': %v", path, df.Err)
	}

	have := map[string]bool{}
	for _, name := range df.Names() {
		have[name] = true
	}
	for _, name := range requiredColumns {
		if !have[name] {
			return nil, unavailable("dataset at '%s' is missing column '%s'", path, name)
		}
	}

	var (
		ids         = df.Col("track_id")
		names       = df.Col("track_name")
		artists     = df.Col("artist_name")
		artistPops  = df.Col("artist_popularity")
		trackPops   = df.Col("track_popularity")
		albumTypes  = df.Col("album_type")
		genreFields = df.Col("artist_genres")
	)

	tracks := make([]data.Track, df.Nrow())
	for i := range tracks {
		tracks[i] = data.Track{
			TrackID:          ids.Elem(i).String(),
			Name:             names.Elem(i).String(),
			ArtistName:       artists.Elem(i).String(),
			AlbumType:        strings.ToLower(strings.TrimSpace(albumTypes.Elem(i).String())),
			ArtistPopularity: nullable(artistPops.Elem(i).Float()),
			TrackPopularity:  nullable(trackPops.Elem(i).Float()),
			Genres:           ParseGenres(genreFields.Elem(i).String()),
		}
	}

	return tracks, nil
}

// ParseGenres normalizes a raw artist_genres value and splits it into tags:
// lower-case the whole field, then split on ", ". A missing value yields the
// single "unknown" tag; a value with no separator yields a single tag.
// Parsing is idempotent: feeding a normalized tag back in returns it
// unchanged.
func ParseGenres(raw string) []string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "nan" {
		return []string{data.UnknownGenre}
	}
	return strings.Split(raw, ", ")
}

// nullable converts gota's NaN missing-value marker into a SQL null, so
// unparseable popularity fields drop out of mean computations instead of
// poisoning them.
func nullable(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

var cell struct {
	once   sync.Once
	tracks []data.Track
	err    error
}

// Tracks returns the memoized track table, loading it from DefaultPath on
// first call. The load happens at most once per process, even under
// concurrent first access; later calls return the identical table without
// touching the file. A failed load is memoized too, not retried.
func Tracks() ([]data.Track, error) {
	cell.once.Do(func() {
		path, err := DefaultPath()
		if err != nil {
			cell.err = err
			return
		}
		cell.tracks, cell.err = Load(path)
	})
	return cell.tracks, cell.err
}

// DefaultPath resolves the dataset relative to the executable rather than
// the working directory, so the dashboard finds its data no matter where it
// is launched from.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("error resolving executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), Filename), nil
}
