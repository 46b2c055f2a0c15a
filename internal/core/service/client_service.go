package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taxdesk/practice-api/internal/core/domain"
	"github.com/taxdesk/practice-api/internal/core/ports"
	"github.com/taxdesk/practice-api/internal/vault"
)

// ClientService implements client use-cases. It is the only place portal
// credentials cross between plaintext and ciphertext: inserts and credential
// updates are encrypted before they reach the repository, and every returned
// client is decrypted.
type ClientService struct {
	clients ports.ClientRepository
	vault   *vault.Vault
	log     zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, v *vault.Vault, log zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, vault: v, log: log}
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	encrypted, err := s.vault.EncryptCredentials(input.PortalCredentials)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		ID:                uuid.NewString(),
		FullName:          input.FullName,
		Email:             input.Email,
		Phone:             input.Phone,
		CNIC:              input.CNIC,
		NTN:               input.NTN,
		PortalCredentials: encrypted,
		Notes:             input.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", client.ID).Str("full_name", client.FullName).Msg("client created")
	return s.decryptedView(client)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decryptedView(client)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Client, 0, len(clients))
	for _, client := range clients {
		view, err := s.decryptedView(client)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	existing, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if input.FullName != nil {
		updated.FullName = *input.FullName
	}
	if input.Email != nil {
		updated.Email = *input.Email
	}
	if input.Phone != nil {
		updated.Phone = *input.Phone
	}
	if input.CNIC != nil {
		updated.CNIC = *input.CNIC
	}
	if input.NTN != nil {
		updated.NTN = *input.NTN
	}
	if input.Notes != nil {
		updated.Notes = *input.Notes
	}
	if input.PortalCredentials != nil {
		// Wholesale replacement: the incoming map is encrypted as a unit,
		// there is no per-portal merge with the stored ciphertext.
		encrypted, err := s.vault.EncryptCredentials(input.PortalCredentials)
		if err != nil {
			return nil, err
		}
		updated.PortalCredentials = encrypted
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.clients.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", id).Msg("client updated")
	return s.decryptedView(&updated)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("client_id", id).Msg("client deleted with its tasks")
	return nil
}

// decryptedView returns a copy of client with plaintext credentials; the
// stored record is never mutated.
func (s *ClientService) decryptedView(client *domain.Client) (*domain.Client, error) {
	decrypted, err := s.vault.DecryptCredentials(client.PortalCredentials)
	if err != nil {
		s.log.Error().Err(err).Str("client_id", client.ID).Msg("credential decryption failed")
		return nil, err
	}

	view := *client
	view.PortalCredentials = decrypted
	return &view, nil
}
