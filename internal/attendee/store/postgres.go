package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"summit-connect/internal/attendee/models"
)

// Postgres persists attendees in a single table with explicit columns.
// Writes are per-row upserts, matching the per-key semantics of the other
// backends.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Schema is applied at startup. The project has no migration tooling; a
// single idempotent statement is enough for one table.
const Schema = `
CREATE TABLE IF NOT EXISTS attendees (
    id                  TEXT PRIMARY KEY,
    full_name           TEXT NOT NULL,
    email               TEXT NOT NULL DEFAULT '',
    phone               TEXT NOT NULL,
    profession          TEXT NOT NULL,
    business_challenges TEXT NOT NULL,
    street              TEXT NOT NULL,
    city                TEXT NOT NULL,
    state               TEXT NOT NULL,
    zip                 TEXT NOT NULL,
    created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the attendees table if it does not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure attendees schema: %w", err)
	}
	return nil
}

func (s *Postgres) List(ctx context.Context) ([]models.Attendee, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, full_name, email, phone, profession, business_challenges,
		       street, city, state, zip
		FROM attendees`)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	out := []models.Attendee{}
	for rows.Next() {
		var a models.Attendee
		if err := rows.Scan(
			&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Profession,
			&a.BusinessChallenges,
			&a.Address.Street, &a.Address.City, &a.Address.State, &a.Address.Zip,
		); err != nil {
			return nil, fmt.Errorf("scan attendee row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendee rows: %w", err)
	}
	return out, nil
}

func (s *Postgres) Put(ctx context.Context, attendee models.Attendee) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO attendees (
			id, full_name, email, phone, profession, business_challenges,
			street, city, state, zip
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			profession = EXCLUDED.profession,
			business_challenges = EXCLUDED.business_challenges,
			street = EXCLUDED.street,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip`,
		attendee.ID, attendee.FullName, attendee.Email, attendee.Phone,
		attendee.Profession, attendee.BusinessChallenges,
		attendee.Address.Street, attendee.Address.City, attendee.Address.State,
		attendee.Address.Zip,
	)
	if err != nil {
		return fmt.Errorf("upsert attendee %s: %w", attendee.ID, err)
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, id string) error {
	// DELETE of a missing row affects zero rows, not an error.
	if _, err := s.pool.Exec(ctx, `DELETE FROM attendees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete attendee %s: %w", id, err)
	}
	return nil
}
