package memory

import (
	"context"
	"sort"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

// ClientRepository persists clients in the shared store. Stored credential
// passwords are ciphertext; this layer never sees plaintext.
type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(_ context.Context, client *domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *ClientRepository) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	client, ok := r.store.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(client), nil
}

func (r *ClientRepository) List(_ context.Context) ([]*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	clients := make([]*domain.Client, 0, len(r.store.clients))
	for _, client := range r.store.clients {
		clients = append(clients, cloneClient(client))
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})
	return clients, nil
}

func (r *ClientRepository) Update(_ context.Context, client *domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.store.clients[client.ID] = cloneClient(client)
	return nil
}

// Delete removes the client and every task referencing it. Both removals
// happen under one write lock, so the cascade cannot be observed half-done.
func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.store.clients, id)

	for taskID, task := range r.store.tasks {
		if task.ClientID == id {
			delete(r.store.tasks, taskID)
		}
	}
	return nil
}
