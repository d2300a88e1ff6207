package users

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps users in an ordered slice. Every operation holds
// the lock for its whole duration, so each one is atomic.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

// NewMemoryRepository returns a repository holding a copy of seed.
func NewMemoryRepository(seed ...User) *MemoryRepository {
	users := make([]User, len(seed))
	copy(users, seed)
	return &MemoryRepository{users: users}
}

// DefaultSeed returns the demo record the API starts with.
func DefaultSeed() []User {
	return []User{{ID: uuid.NewString(), Name: "Alice", Email: "alice@example.com"}}
}

// List returns all users in insertion order.
func (r *MemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Get returns the user with the given id.
func (r *MemoryRepository) Get(ctx context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.users[i], nil
	}
	return User{}, ErrNotFound
}

// Create assigns a fresh id and appends the user.
func (r *MemoryRepository) Create(ctx context.Context, in CreateUser) (User, error) {
	user := User{ID: uuid.NewString(), Name: in.Name, Email: in.Email}

	r.mu.Lock()
	r.users = append(r.users, user)
	r.mu.Unlock()

	return user, nil
}

// Update merges the provided fields into the stored user.
func (r *MemoryRepository) Update(ctx context.Context, id string, in UpdateUser) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return User{}, ErrNotFound
	}
	r.users[i] = in.Apply(r.users[i])
	return r.users[i], nil
}

// Delete removes the user with the given id.
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

// indexOf must be called with r.mu held.
func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
