package data

import "database/sql"

// AllGenres is the selector sentinel meaning "no genre filter". It is never
// stored in the catalog; the presentation layer prepends it to the option
// list.
const AllGenres = "All"

// UnknownGenre is the bucket a track falls into when its source row has no
// genre tags. The loader assigns it exactly once, before any expansion, so
// untagged tracks stay filterable instead of being dropped.
const UnknownGenre = "unknown"

// Track holds one row of the source dataset: a single track together with
// the metadata of its primary artist.
type Track struct {
	TrackID    string
	Name       string
	ArtistName string

	// like "album", "single", or "compilation"
	AlbumType string

	// Null when the source value was not numeric. Null popularities are
	// excluded from mean computations.
	ArtistPopularity sql.NullFloat64
	TrackPopularity  sql.NullFloat64

	// Normalized genre tags, already lower-cased and split. Stored in the
	// track_genres association table rather than on the tracks table.
	Genres []string `gorm:"-"`
}

// TrackGenre represents a many-to-many relationship between tracks and genre
// tags: one row per (track, tag) pair. This is the expanded form of the
// dataset's comma-separated artist_genres field.
type TrackGenre struct {
	TrackID   string
	GenreName string
}

// ArtistSummary is one row of the scatter plot: a single artist's mean
// popularities and track count within the current filtered view.
type ArtistSummary struct {
	ArtistName         string  `json:"artist_name"`
	AvgTrackPopularity float64 `json:"avg_track_popularity"`
	ArtistPopularity   float64 `json:"artist_popularity"`
	TrackCount         int64   `json:"track_count"`
}

// AlbumTypeSummary is one bar of the bar chart: mean track popularity for a
// single album type within the current filtered view.
type AlbumTypeSummary struct {
	AlbumType          string  `json:"album_type"`
	AvgTrackPopularity float64 `json:"avg_track_popularity"`
}
