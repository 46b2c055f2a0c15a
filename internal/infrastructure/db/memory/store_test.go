package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

func seedClient(t *testing.T, repo *ClientRepository, id string) {
	t.Helper()
	now := time.Now().UTC()
	err := repo.Create(context.Background(), &domain.Client{
		ID: id, FullName: "Client " + id, Phone: "+92300", CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed client %s: %v", id, err)
	}
}

func seedTask(t *testing.T, repo *TaskRepository, id, clientID string) {
	t.Helper()
	now := time.Now().UTC()
	err := repo.Create(context.Background(), &domain.Task{
		ID: id, ClientID: clientID, Title: "t", ServiceType: domain.ServiceFBR,
		Status: domain.StatusPending, FileURLs: []string{}, CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed task %s: %v", id, err)
	}
}

// ---------------------------------------------------------------------------
// Seeding
// ---------------------------------------------------------------------------

func TestStore_SeedAdmin(t *testing.T) {
	store := NewStore()

	admin, err := store.SeedAdmin("admin", "admin123", "Tax Consultant Admin")
	if err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}
	if admin == nil {
		t.Fatal("expected a seeded admin on an empty store")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")) != nil {
		t.Error("seeded password must be bcrypt-hashed")
	}

	// Second seed is a no-op.
	again, err := store.SeedAdmin("admin", "admin123", "Tax Consultant Admin")
	if err != nil {
		t.Fatalf("second SeedAdmin: %v", err)
	}
	if again != nil {
		t.Error("seeding a populated store must be a no-op")
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestUserRepository_DuplicateUsername(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)

	_, err := repo.Create(context.Background(), &domain.User{Username: "sana", Name: "Sana"})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err = repo.Create(context.Background(), &domain.User{Username: "sana", Name: "Other"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)

	created, _ := repo.Create(context.Background(), &domain.User{Username: "sana", Name: "Sana"})

	found, err := repo.FindByUsername(context.Background(), "sana")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("want id %q, got %q", created.ID, found.ID)
	}

	if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Cascade delete
// ---------------------------------------------------------------------------

func TestClientRepository_Delete_CascadesExactly(t *testing.T) {
	store := NewStore()
	clients := NewClientRepository(store)
	tasks := NewTaskRepository(store)

	seedClient(t, clients, "client-1")
	seedClient(t, clients, "client-2")
	seedTask(t, tasks, "task-a", "client-1")
	seedTask(t, tasks, "task-b", "client-1")
	seedTask(t, tasks, "task-c", "client-2")

	if err := clients.Delete(context.Background(), "client-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := clients.FindByID(context.Background(), "client-1"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Error("deleted client must be gone")
	}

	remaining, _ := tasks.List(context.Background())
	if len(remaining) != 1 || remaining[0].ID != "task-c" {
		t.Errorf("cascade must remove exactly client-1's tasks, remaining: %+v", remaining)
	}
}

func TestClientRepository_Delete_NotFound(t *testing.T) {
	store := NewStore()
	clients := NewClientRepository(store)

	if err := clients.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Aliasing
// ---------------------------------------------------------------------------

func TestClientRepository_ReturnsCopies(t *testing.T) {
	store := NewStore()
	clients := NewClientRepository(store)

	now := time.Now().UTC()
	original := &domain.Client{
		ID: "client-1", FullName: "Ali Khan", Phone: "+92300",
		PortalCredentials: domain.PortalCredentials{
			domain.PortalFBR: {Username: "ak", Password: "ciphertext"},
		},
		CreatedAt: now, UpdatedAt: now,
	}
	if err := clients.Create(context.Background(), original); err != nil {
		t.Fatalf("Create: %v", err)
	}

	fetched, _ := clients.FindByID(context.Background(), "client-1")
	fetched.FullName = "Mutated"
	fetched.PortalCredentials[domain.PortalFBR] = domain.PortalLogin{Username: "x", Password: "y"}

	again, _ := clients.FindByID(context.Background(), "client-1")
	if again.FullName != "Ali Khan" {
		t.Error("mutating a returned client must not affect the store")
	}
	if again.PortalCredentials[domain.PortalFBR].Password != "ciphertext" {
		t.Error("mutating returned credentials must not affect the store")
	}
}

func TestTaskRepository_ListByClient(t *testing.T) {
	store := NewStore()
	tasks := NewTaskRepository(store)

	seedTask(t, tasks, "task-a", "client-1")
	seedTask(t, tasks, "task-b", "client-2")

	got, err := tasks.ListByClient(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("ListByClient: %v", err)
	}
	if len(got) != 1 || got[0].ID != "task-a" {
		t.Errorf("expected only client-1 tasks, got %+v", got)
	}
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	store := NewStore()
	tasks := NewTaskRepository(store)

	err := tasks.Update(context.Background(), &domain.Task{ID: "missing"})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
