package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skippr/growscore/internal/config"
	"github.com/skippr/growscore/internal/db"
	"github.com/skippr/growscore/internal/types"
)

// fakeDBClient is an in-memory DBClient for unit tests.
type fakeDBClient struct {
	users map[uuid.UUID]*db.User
}

func newFakeDBClient() *fakeDBClient {
	return &fakeDBClient{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDBClient) CreateUser(_ context.Context, name, email, passwordHash string, recruiter bool) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Recruiter:    recruiter,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (f *fakeDBClient) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeDBClient) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDBClient) EmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeDBClient) UpdateUserPassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

func newTestUserService() (*UserService, *fakeDBClient) {
	client := newFakeDBClient()
	service := NewUserService(client, &config.PasswordConfig{BcryptCost: 10})
	return service, client
}

func TestUserService_Register(t *testing.T) {
	service, client := newTestUserService()

	user, err := service.Register(context.Background(), &types.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.False(t, user.Recruiter)

	// Password is stored hashed, never verbatim.
	stored := client.users[user.ID]
	assert.NotEqual(t, "supersecret1", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	_, err := service.Register(ctx, &types.RegisterRequest{Name: "A", Email: "dup@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = service.Register(ctx, &types.RegisterRequest{Name: "B", Email: "dup@example.com", Password: "password2"})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	registered, err := service.Register(ctx, &types.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	user, err := service.Login(ctx, &types.LoginRequest{Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	_, err := service.Register(ctx, &types.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "a@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, _ := newTestUserService()

	_, err := service.Login(context.Background(), &types.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	// Same generic error as a wrong password, to avoid user enumeration.
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, &types.RegisterRequest{Name: "A", Email: "a@example.com", Password: "oldpassword"})
	require.NoError(t, err)

	require.NoError(t, service.UpdatePassword(ctx, user.ID, "oldpassword", "newpassword"))

	_, err = service.Login(ctx, &types.LoginRequest{Email: "a@example.com", Password: "oldpassword"})
	assert.Error(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "a@example.com", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	service, _ := newTestUserService()
	ctx := context.Background()

	user, err := service.Register(ctx, &types.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, user.ID, "notcurrent", "newpassword")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	service, _ := newTestUserService()

	err := service.UpdatePassword(context.Background(), uuid.New(), "a", "newpassword")
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
