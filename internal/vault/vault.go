// Package vault encrypts portal credentials before they reach the store.
//
// Values are encoded as "hex(nonce):hex(ciphertext)" so stored credentials
// stay printable and self-contained. The cipher is XChaCha20-Poly1305 with a
// fresh random nonce per encryption; the key is derived once from the
// configured secret via HKDF-SHA256.
package vault

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// Vault performs symmetric encryption of credential passwords.
type Vault struct {
	key []byte
}

// New derives the cipher key from secret. An empty secret is refused.
func New(secret string) (*Vault, error) {
	if secret == "" {
		return nil, errors.New("vault: empty encryption key")
	}

	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("portal-credentials"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("vault: derive key: %w", err)
	}
	return &Vault{key: key}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(v.key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("vault: nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Tampered or malformed input returns an error;
// the read that triggered it is terminal, nothing is retried.
func (v *Vault) Decrypt(encoded string) (string, error) {
	nonceHex, sealedHex, ok := strings.Cut(encoded, ":")
	if !ok {
		return "", ErrMalformedCiphertext
	}

	nonce, err := hex.DecodeString(nonceHex)
	if err != nil {
		return "", ErrMalformedCiphertext
	}
	sealed, err := hex.DecodeString(sealedHex)
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	aead, err := chacha20poly1305.NewX(v.key)
	if err != nil {
		return "", err
	}
	if len(nonce) != aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("vault: %w", ErrMalformedCiphertext)
	}
	return string(plaintext), nil
}

// EncryptCredentials replaces the password of every complete login pair with
// its ciphertext. Entries missing a username or password pass through
// untouched, as does a nil map.
func (v *Vault) EncryptCredentials(creds domain.PortalCredentials) (domain.PortalCredentials, error) {
	if creds == nil {
		return nil, nil
	}

	out := make(domain.PortalCredentials, len(creds))
	for portal, login := range creds {
		if login.Username == "" || login.Password == "" {
			out[portal] = login
			continue
		}
		ciphertext, err := v.Encrypt(login.Password)
		if err != nil {
			return nil, fmt.Errorf("encrypt %s credentials: %w", portal, err)
		}
		out[portal] = domain.PortalLogin{Username: login.Username, Password: ciphertext}
	}
	return out, nil
}

// DecryptCredentials is the inverse of EncryptCredentials, applied on every
// read so the API never exposes ciphertext.
func (v *Vault) DecryptCredentials(creds domain.PortalCredentials) (domain.PortalCredentials, error) {
	if creds == nil {
		return nil, nil
	}

	out := make(domain.PortalCredentials, len(creds))
	for portal, login := range creds {
		if login.Username == "" || login.Password == "" {
			out[portal] = login
			continue
		}
		plaintext, err := v.Decrypt(login.Password)
		if err != nil {
			return nil, fmt.Errorf("decrypt %s credentials: %w", portal, err)
		}
		out[portal] = domain.PortalLogin{Username: login.Username, Password: plaintext}
	}
	return out, nil
}
