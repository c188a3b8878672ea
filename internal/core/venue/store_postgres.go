// Copyright (c) 2026 Marquee. All rights reserved.

package venue

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

// List returns every venue ordered by (city, state); the ORDER BY is the
// contract the grouping scan relies on.
func (repository *PostgresRepository) List(ctx context.Context) ([]Venue, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC, %s ASC
	`,
		schema.Venue.ID, schema.Venue.Name, schema.Venue.City, schema.Venue.State,
		schema.Venue.Address, schema.Venue.Phone, schema.Venue.ImageLink,
		schema.Venue.FacebookLink, schema.Venue.Genres, schema.Venue.Website,
		schema.Venue.SeekingTalent, schema.Venue.SeekingDescription,
		schema.Venue.Table,
		schema.Venue.City, schema.Venue.State, schema.Venue.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_venues")
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
			&v.FacebookLink, &v.Genres, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_venue")
		}
		venues = append(venues, v)
	}

	return venues, dberr.Wrap(rows.Err(), "list_venues")
}

// Search matches venue names case-insensitively on a substring and reports
// each hit with its real upcoming-show count.
func (repository *PostgresRepository) Search(ctx context.Context, term string) ([]schedule.SearchResult, error) {
	query := fmt.Sprintf(`
		SELECT v.%s, v.%s,
			(SELECT count(*) FROM %s s WHERE s.%s = v.%s AND s.%s >= NOW())
		FROM %s v
		WHERE v.%s ILIKE $1
		ORDER BY v.%s ASC
	`,
		schema.Venue.ID, schema.Venue.Name,
		schema.Show.Table, schema.Show.VenueID, schema.Venue.ID, schema.Show.StartTime,
		schema.Venue.Table,
		schema.Venue.Name,
		schema.Venue.Name,
	)

	rows, err := repository.db.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, dberr.Wrap(err, "search_venues")
	}
	defer rows.Close()

	var results []schedule.SearchResult
	for rows.Next() {
		var r schedule.SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_search")
		}
		results = append(results, r)
	}

	return results, dberr.Wrap(rows.Err(), "search_venues")
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Venue, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Venue.ID, schema.Venue.Name, schema.Venue.City, schema.Venue.State,
		schema.Venue.Address, schema.Venue.Phone, schema.Venue.ImageLink,
		schema.Venue.FacebookLink, schema.Venue.Genres, schema.Venue.Website,
		schema.Venue.SeekingTalent, schema.Venue.SeekingDescription,
		schema.Venue.Table, schema.Venue.ID,
	)

	v := &Venue{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Genres, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_venue")
	}

	return v, nil
}

// Shows returns the venue's shows joined with the artist counterpart fields,
// ordered by start time.
func (repository *PostgresRepository) Shows(ctx context.Context, venueID int) ([]schedule.Entry, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, s.%s
		FROM %s s
		JOIN %s a ON a.%s = s.%s
		WHERE s.%s = $1
		ORDER BY s.%s ASC
	`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.ImageLink, schema.Show.StartTime,
		schema.Show.Table,
		schema.Artist.Table, schema.Artist.ID, schema.Show.ArtistID,
		schema.Show.VenueID,
		schema.Show.StartTime,
	)

	rows, err := repository.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_venue_shows")
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(&e.CounterpartID, &e.CounterpartName, &e.CounterpartImage, &e.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_show")
		}
		entries = append(entries, e)
	}

	return entries, dberr.Wrap(rows.Err(), "list_venue_shows")
}

func (repository *PostgresRepository) Create(ctx context.Context, v *Venue) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`,
		schema.Venue.Table,
		schema.Venue.Name, schema.Venue.City, schema.Venue.State, schema.Venue.Address,
		schema.Venue.Phone, schema.Venue.ImageLink, schema.Venue.FacebookLink,
		schema.Venue.Genres, schema.Venue.Website, schema.Venue.SeekingTalent,
		schema.Venue.SeekingDescription,
		schema.Venue.ID,
	)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_venue")
	}
	// Rollback after a successful commit is a no-op; the deferred call
	// guarantees the session is released on every exit path.
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Genres, v.Website, v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.ID)
	if err != nil {
		return dberr.Wrap(err, "create_venue")
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_create_venue")
}

func (repository *PostgresRepository) Update(ctx context.Context, v *Venue) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
			%s = $8, %s = $9, %s = $10, %s = $11, %s = $12
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Venue.Table,
		schema.Venue.Name, schema.Venue.City, schema.Venue.State, schema.Venue.Address,
		schema.Venue.Phone, schema.Venue.ImageLink, schema.Venue.FacebookLink,
		schema.Venue.Genres, schema.Venue.Website, schema.Venue.SeekingTalent,
		schema.Venue.SeekingDescription,
		schema.Venue.ID,
		schema.Venue.ID,
	)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_update_venue")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var updatedID int
	err = tx.QueryRow(ctx, query,
		v.ID, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Genres, v.Website, v.SeekingTalent, v.SeekingDescription,
	).Scan(&updatedID)
	if err != nil {
		return dberr.Wrap(err, "update_venue")
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_update_venue")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Venue.Table, schema.Venue.ID)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_venue")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_venue")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_delete_venue")
}
