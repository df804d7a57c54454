// Package db is the track catalog: a sqlite database holding the cleaned
// track table and its genre fan-out, and the group-by queries the dashboard
// renders from.
package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/amonks/trackboard/data"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DB represents our sqlite3 catalog.
type DB struct{ *gorm.DB }

//go:embed schema.sql
var schema string

// InMemory is the filename for a catalog that lives only as long as the
// process. The dashboard uses it by default, repopulating from the dataset
// at startup; pass a real path instead to keep the catalog between runs.
const InMemory = ":memory:"

// Open returns a connection to a migrated sqlite3 database, creating the
// file and running migrations if necessary.
func Open(filename string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening db at '%s': %w", filename, err)
	}

	db := &DB{gdb}

	if filename == InMemory {
		// every pooled connection to ':memory:' gets its own empty
		// database, so the pool must stay at one connection.
		pool, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("error getting pool for in-memory db: %w", err)
		}
		pool.SetMaxOpenConns(1)
	}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

func (db *DB) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

// InsertTrack, given a Track, inserts it into the tracks table and fans its
// genre tags out into track_genres, doing nothing for rows that already
// exist.
func (db *DB) InsertTrack(track *data.Track) error {
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(track).
		Error; err != nil {
		return fmt.Errorf("error inserting track '%s': %w", track.Name, err)
	}

	for _, genre := range track.Genres {
		if err := db.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&data.TrackGenre{
				TrackID:   track.TrackID,
				GenreName: genre,
			}).
			Error; err != nil {
			return fmt.Errorf("error inserting track_genre {'%s' '%s'}: %w", track.Name, genre, err)
		}
	}

	return nil
}

// Populate fills the catalog from a loaded track table.
func (db *DB) Populate(ctx context.Context, tracks []data.Track) error {
	for i := range tracks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled: %w", err)
		}
		if err := db.InsertTrack(&tracks[i]); err != nil {
			return err
		}
	}
	return nil
}
