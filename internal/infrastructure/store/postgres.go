package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitcoach/internal/domain/entities"
	"fitcoach/internal/ports/output"
)

var _ output.PreferenceStore = (*Postgres)(nil)

// Postgres persists preferences in the locale_preferences table, scoped to
// one visitor. Server-side deployments hand each signed-in client a store
// bound to their visitor ID so the locale choice follows them across
// devices.
type Postgres struct {
	pool      *pgxpool.Pool
	visitorID uuid.UUID
}

func NewPostgres(pool *pgxpool.Pool, visitorID uuid.UUID) *Postgres {
	return &Postgres{pool: pool, visitorID: visitorID}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx,
		`SELECT pref_value FROM locale_preferences WHERE visitor_id = $1 AND pref_key = $2`,
		p.visitorID, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO locale_preferences (visitor_id, pref_key, pref_value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (visitor_id, pref_key)
		 DO UPDATE SET pref_value = EXCLUDED.pref_value, updated_at = now()`,
		p.visitorID, key, value,
	)
	return err
}

// All returns every preference stored for the visitor.
func (p *Postgres) All(ctx context.Context) ([]entities.Preference, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT visitor_id, pref_key, pref_value, updated_at
		 FROM locale_preferences WHERE visitor_id = $1 ORDER BY pref_key`,
		p.visitorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prefs []entities.Preference
	for rows.Next() {
		var pref entities.Preference
		if err := rows.Scan(&pref.VisitorID, &pref.Key, &pref.Value, &pref.UpdatedAt); err != nil {
			return nil, err
		}
		prefs = append(prefs, pref)
	}
	return prefs, rows.Err()
}
