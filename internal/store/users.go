package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"coachdata/internal/domain"
	"coachdata/internal/storage"
)

// User-level errors.
var (
	ErrUserNotFound = errors.New("user not found")
)

// UserStore persists app accounts under the global (non-namespaced) users
// key. Unlike entity mutators, user writes are synchronous: losing an
// account to a fire-and-forget failure would lock the user out of every
// namespaced collection derived from their id.
type UserStore struct {
	kv storage.KV
}

// NewUserStore creates a user store over the local KV.
func NewUserStore(kv storage.KV) *UserStore {
	return &UserStore{kv: kv}
}

func (u *UserStore) load(ctx context.Context) ([]domain.User, error) {
	data, err := u.kv.Get(ctx, CollectionUsers)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UserStore) save(ctx context.Context, users []domain.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return u.kv.Set(ctx, CollectionUsers, data)
}

// Create appends a new user, assigning id and timestamps.
func (u *UserStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	users, err := u.load(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if user.ID == "" {
		user.ID = domain.NewID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	users = append(users, user)
	if err := u.save(ctx, users); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByEmail finds a user by email, ErrUserNotFound when absent.
func (u *UserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	users, err := u.load(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

// GetByID finds a user by id, ErrUserNotFound when absent.
func (u *UserStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	users, err := u.load(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, ErrUserNotFound
}
