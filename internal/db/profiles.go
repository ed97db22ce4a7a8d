package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertProfile stores a candidate profile, replacing any existing profile
// with the same name for the user.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, name string, data []byte) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidate_profiles (user_id, name, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, name) DO UPDATE SET data = $3, updated_at = NOW()
		 RETURNING id`,
		userID, name, data,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert profile %s: %w", name, err)
	}
	return id, nil
}

// GetProfile retrieves a named profile for a user. Returns nil when not found.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID, name string) (*ProfileRow, error) {
	var row ProfileRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, data, created_at, updated_at
		 FROM candidate_profiles WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&row.ID, &row.UserID, &row.Name, &row.Data, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", name, err)
	}
	return &row, nil
}

// ListProfiles retrieves summaries of all profiles belonging to a user
func (db *DB) ListProfiles(ctx context.Context, userID uuid.UUID) ([]ProfileSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at
		 FROM candidate_profiles WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var summaries []ProfileSummary
	for rows.Next() {
		var s ProfileSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteProfile removes a named profile for a user
func (db *DB) DeleteProfile(ctx context.Context, userID uuid.UUID, name string) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM candidate_profiles WHERE user_id = $1 AND name = $2`,
		userID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", name, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile not found: %s", name)
	}
	return nil
}
