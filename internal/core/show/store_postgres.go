// Copyright (c) 2026 Marquee. All rights reserved.

package show

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marquee-live/marquee/internal/platform/database/schema"
	"github.com/marquee-live/marquee/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAll(ctx context.Context) ([]ListRow, error) {
	query := fmt.Sprintf(`
		SELECT v.%s, v.%s, a.%s, a.%s, a.%s, s.%s
		FROM %s s
		JOIN %s v ON v.%s = s.%s
		JOIN %s a ON a.%s = s.%s
		ORDER BY s.%s ASC
	`,
		schema.Venue.ID, schema.Venue.Name,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.ImageLink,
		schema.Show.StartTime,
		schema.Show.Table,
		schema.Venue.Table, schema.Venue.ID, schema.Show.VenueID,
		schema.Artist.Table, schema.Artist.ID, schema.Show.ArtistID,
		schema.Show.StartTime,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		var row ListRow
		err := rows.Scan(
			&row.VenueID, &row.VenueName,
			&row.ArtistID, &row.ArtistName, &row.ArtistImageLink,
			&row.StartTime,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_show")
		}
		out = append(out, row)
	}

	return out, dberr.Wrap(rows.Err(), "list_shows")
}

func (repository *PostgresRepository) Create(ctx context.Context, s *Show) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Show.Table,
		schema.Show.ArtistID, schema.Show.VenueID, schema.Show.StartTime,
		schema.Show.ID,
	)

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_show")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, query, s.ArtistID, s.VenueID, s.StartTime).Scan(&s.ID)
	if err != nil {
		return dberr.Wrap(err, "create_show")
	}

	return dberr.Wrap(tx.Commit(ctx), "commit_create_show")
}

func (repository *PostgresRepository) ArtistExists(ctx context.Context, artistID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Artist.Table, schema.Artist.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, artistID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_artist_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) VenueExists(ctx context.Context, venueID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Venue.Table, schema.Venue.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, venueID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_venue_exists")
	}
	return exists, nil
}
