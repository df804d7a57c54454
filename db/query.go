package db

import (
	"context"
	"fmt"

	"github.com/amonks/trackboard/data"
	"gorm.io/gorm"
)

// GenreNames returns every distinct genre tag in the catalog, sorted. This
// is the selector's option list; the "All" sentinel is not stored here and
// is prepended by the presentation layer.
func (db *DB) GenreNames(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := db.WithContext(ctx).
		Table("track_genres").
		Distinct("genre_name").
		Order("genre_name asc").
		Pluck("genre_name", &names).
		Error; err != nil {
		return nil, fmt.Errorf("error listing genre names: %w", err)
	}
	return names, nil
}

// view builds a query over the current filtered view: the tracks table
// itself for the "All" sentinel (one row per track, never the expanded
// count), or the genre fan-out joined back to tracks for a specific tag.
// Tags match exactly; a tag with no rows yields an empty view rather than
// an error.
func (db *DB) view(ctx context.Context, genre string) *gorm.DB {
	q := db.WithContext(ctx).Table("tracks")
	if genre == data.AllGenres {
		return q
	}
	return q.
		Joins("join track_genres on track_genres.track_id = tracks.track_id").
		Where("track_genres.genre_name = ?", genre)
}

// ArtistSummaries groups the filtered view by artist name and computes mean
// track popularity, mean artist popularity, and track count per artist.
// Null popularities are skipped by avg(); row order is unspecified.
func (db *DB) ArtistSummaries(ctx context.Context, genre string) ([]data.ArtistSummary, error) {
	summaries := []data.ArtistSummary{}
	if err := db.view(ctx, genre).
		Select(
			"artist_name",
			"coalesce(avg(track_popularity), 0) as avg_track_popularity",
			"coalesce(avg(artist_popularity), 0) as artist_popularity",
			"count(*) as track_count",
		).
		Group("artist_name").
		Scan(&summaries).
		Error; err != nil {
		return nil, fmt.Errorf("error summarizing artists for genre '%s': %w", genre, err)
	}
	return summaries, nil
}

// AlbumTypeSummaries groups the filtered view by album type and computes
// mean track popularity per type.
func (db *DB) AlbumTypeSummaries(ctx context.Context, genre string) ([]data.AlbumTypeSummary, error) {
	summaries := []data.AlbumTypeSummary{}
	if err := db.view(ctx, genre).
		Select(
			"album_type",
			"coalesce(avg(track_popularity), 0) as avg_track_popularity",
		).
		Group("album_type").
		Scan(&summaries).
		Error; err != nil {
		return nil, fmt.Errorf("error summarizing album types for genre '%s': %w", genre, err)
	}
	return summaries, nil
}

// CountView returns the number of rows in the filtered view: the track
// count for "All", or the number of fanned-out rows matching a tag.
func (db *DB) CountView(ctx context.Context, genre string) (int, error) {
	var count int64
	if err := db.view(ctx, genre).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting view for genre '%s': %w", genre, err)
	}
	return int(count), nil
}

func (db *DB) CountTracks(ctx context.Context) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table("tracks").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting tracks: %w", err)
	}
	return int(count), nil
}

func (db *DB) CountArtists(ctx context.Context) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table("tracks").
		Distinct("artist_name").
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting artists: %w", err)
	}
	return int(count), nil
}
