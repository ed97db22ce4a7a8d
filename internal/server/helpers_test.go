package server

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/skippr/growscore/internal/db"
	"github.com/skippr/growscore/internal/matching"
)

// fakeProfileStore is an in-memory ProfileStore for handler tests.
type fakeProfileStore struct {
	rows map[string]*db.ProfileRow // key: userID + "/" + name
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{rows: make(map[string]*db.ProfileRow)}
}

func (f *fakeProfileStore) key(userID uuid.UUID, name string) string {
	return userID.String() + "/" + name
}

func (f *fakeProfileStore) UpsertProfile(_ context.Context, userID uuid.UUID, name string, data []byte) (uuid.UUID, error) {
	key := f.key(userID, name)
	row, ok := f.rows[key]
	if !ok {
		row = &db.ProfileRow{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			CreatedAt: time.Now(),
		}
		f.rows[key] = row
	}
	row.Data = data
	row.UpdatedAt = time.Now()
	return row.ID, nil
}

func (f *fakeProfileStore) GetProfile(_ context.Context, userID uuid.UUID, name string) (*db.ProfileRow, error) {
	row, ok := f.rows[f.key(userID, name)]
	if !ok {
		return nil, nil
	}
	return row, nil
}

func (f *fakeProfileStore) ListProfiles(_ context.Context, userID uuid.UUID) ([]db.ProfileSummary, error) {
	var summaries []db.ProfileSummary
	for _, row := range f.rows {
		if row.UserID == userID {
			summaries = append(summaries, db.ProfileSummary{
				ID:        row.ID,
				Name:      row.Name,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			})
		}
	}
	return summaries, nil
}

func (f *fakeProfileStore) DeleteProfile(_ context.Context, userID uuid.UUID, name string) error {
	key := f.key(userID, name)
	if _, ok := f.rows[key]; !ok {
		return fmt.Errorf("profile not found: %s", name)
	}
	delete(f.rows, key)
	return nil
}

// newTestServer builds a Server with an in-memory store and no LLM client,
// suitable for calling handlers directly.
func newTestServer() (*Server, *fakeProfileStore) {
	store := newFakeProfileStore()
	s := &Server{
		store:     store,
		matcher:   matching.NewService(nil),
		validator: validator.New(),
	}
	return s, store
}
