// Package memory is the sole owner of entity state. The deployment runs
// without a database engine; everything lives in mutex-guarded maps and is
// lost on restart, after which the default admin is re-seeded.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// Store holds all entities behind one RWMutex. Echo serves requests
// concurrently, so every operation takes the lock; the cascade on client
// delete runs under a single write lock and is therefore atomic.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*domain.User
	clients map[string]*domain.Client
	tasks   map[string]*domain.Task
}

func NewStore() *Store {
	return &Store{
		users:   make(map[string]*domain.User),
		clients: make(map[string]*domain.Client),
		tasks:   make(map[string]*domain.Task),
	}
}

// SeedAdmin creates the default admin account when no users exist yet.
// Returns the admin user, or nil when the store was already populated.
func (s *Store) SeedAdmin(username, password, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) > 0 {
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[admin.ID] = admin

	clone := *admin
	return &clone, nil
}

// cloneClient copies a client so stored state never aliases API payloads.
func cloneClient(c *domain.Client) *domain.Client {
	clone := *c
	clone.PortalCredentials = c.PortalCredentials.Clone()
	return &clone
}

func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	if t.FileURLs != nil {
		clone.FileURLs = append([]string(nil), t.FileURLs...)
	}
	return &clone
}
