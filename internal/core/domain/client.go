package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

// Portal keys for the government portals a client may hold credentials on.
const (
	PortalFBR  = "fbr"
	PortalSECP = "secp"
	PortalPSW  = "psw"
	PortalPRA  = "pra"
	PortalIPO  = "ipo"
)

// PortalLogin is a single portal's username/password pair. At rest the
// password is always ciphertext; API reads always carry it decrypted.
type PortalLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PortalCredentials maps a portal key (fbr, secp, psw, pra, ipo) to its login.
type PortalCredentials map[string]PortalLogin

// Clone returns a shallow copy so stored state never aliases API payloads.
func (pc PortalCredentials) Clone() PortalCredentials {
	if pc == nil {
		return nil
	}
	out := make(PortalCredentials, len(pc))
	for portal, login := range pc {
		out[portal] = login
	}
	return out
}

// Client is a customer of the practice, together with the portal logins the
// consultancy manages on their behalf.
type Client struct {
	ID                string            `json:"id"`
	FullName          string            `json:"fullName"`
	Email             string            `json:"email,omitempty"`
	Phone             string            `json:"phone"`
	CNIC              string            `json:"cnic,omitempty"`
	NTN               string            `json:"ntn,omitempty"`
	PortalCredentials PortalCredentials `json:"portalCredentials,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
