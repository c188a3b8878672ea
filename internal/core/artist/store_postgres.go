// Copyright (c) 2026 Marquee. All rights reserved.

package artist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marquee-live/marquee/internal/core/schedule"
	"github.com/marquee-live/marquee/internal/platform/database/schema"
	"github.com/marquee-live/marquee/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context) ([]Ref, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.Table, schema.Artist.Name,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artists")
	}
	defer rows.Close()

	var refs []Ref
	for rows.Next() {
		var ref Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_ref")
		}
		refs = append(refs, ref)
	}

	return refs, dberr.Wrap(rows.Err(), "list_artists")
}

// Search matches artist names case-insensitively on a substring and reports
// each hit with its real upcoming-show count.
func (repository *PostgresRepository) Search(ctx context.Context, term string) ([]schedule.SearchResult, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s,
			(SELECT count(*) FROM %s s WHERE s.%s = a.%s AND s.%s >= NOW())
		FROM %s a
		WHERE a.%s ILIKE $1
		ORDER BY a.%s ASC
	`,
		schema.Artist.ID, schema.Artist.Name,
		schema.Show.Table, schema.Show.ArtistID, schema.Artist.ID, schema.Show.StartTime,
		schema.Artist.Table,
		schema.Artist.Name,
		schema.Artist.Name,
	)

	rows, err := repository.db.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "search_artists")
	}
	defer rows.Close()

	var results []schedule.SearchResult
	for rows.Next() {
		var r schedule.SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_search")
		}
		results = append(results, r)
	}

	return results, dberr.Wrap(rows.Err(), "search_artists")
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Artist, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.City, schema.Artist.State,
		schema.Artist.Phone, schema.Artist.Genres, schema.Artist.ImageLink,
		schema.Artist.FacebookLink, schema.Artist.Website, schema.Artist.SeekingVenue,
		schema.Artist.SeekingDescription,
		schema.Artist.Table, schema.Artist.ID,
	)

	a := &Artist{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_artist")
	}

	return a, nil
}

// Shows returns the artist's shows joined with the venue counterpart fields,
// ordered by start time.
func (repository *PostgresRepository) Shows(ctx context.Context, artistID int) ([]schedule.Entry, error) {
	query := fmt.Sprintf(`
		SELECT v.%s, v.%s, v.%s, s.%s
		FROM %s s
		JOIN %s v ON v.%s = s.%s
		WHERE s.%s = $1
		ORDER BY s.%s ASC
	`,
		schema.Venue.ID, schema.Venue.Name, schema.Venue.ImageLink, schema.Show.StartTime,
		schema.Show.Table,
		schema.Venue.Table, schema.Venue.ID, schema.Show.VenueID,
		schema.Show.ArtistID,
		schema.Show.StartTime,
	)

	rows, err := repository.db.Query(ctx, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artist_shows")
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(&e.CounterpartID, &e.CounterpartName, &e.CounterpartImage, &e.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_show")
		}
		entries = append(entries, e)
	}

	return entries, dberr.Wrap(rows.Err(), "list_artist_shows")
}

func (repository *PostgresRepository) Create(ctx context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s
	`,
		schema.Artist.Table,
		schema.Artist.Name, schema.Artist.City, schema.Artist.State, schema.Artist.Phone,
		schema.Artist.Genres, schema.Artist.ImageLink, schema.Artist.FacebookLink,
		schema.Artist.Website, schema.Artist.SeekingVenue, schema.Artist.SeekingDescription,
		schema.Artist.ID,
	)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_artist")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, query,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID)
	if err != nil {
		return dberr.Wrap(err, "create_artist")
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_create_artist")
}

func (repository *PostgresRepository) Update(ctx context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10, %s = $11
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Artist.Table,
		schema.Artist.Name, schema.Artist.City, schema.Artist.State, schema.Artist.Phone,
		schema.Artist.Genres, schema.Artist.ImageLink, schema.Artist.FacebookLink,
		schema.Artist.Website, schema.Artist.SeekingVenue, schema.Artist.SeekingDescription,
		schema.Artist.ID,
		schema.Artist.ID,
	)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_update_artist")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var updatedID int
	err = tx.QueryRow(ctx, query,
		a.ID, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
		a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription,
	).Scan(&updatedID)
	if err != nil {
		return dberr.Wrap(err, "update_artist")
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_update_artist")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Artist.Table, schema.Artist.ID)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_artist")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artist")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_delete_artist")
}
