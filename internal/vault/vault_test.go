package vault

import (
	"errors"
	"strings"
	"testing"

	"github.com/taxdesk/practice-api/internal/core/domain"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	v, err := New("unit-test-encryption-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func TestVault_EncryptDecrypt_RoundTrip(t *testing.T) {
	v := newTestVault(t)

	ciphertext, err := v.Encrypt("fbr-portal-secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !strings.Contains(ciphertext, ":") {
		t.Errorf("expected colon-delimited encoding, got %q", ciphertext)
	}
	if strings.Contains(ciphertext, "fbr-portal-secret") {
		t.Error("ciphertext must not contain the plaintext")
	}

	plaintext, err := v.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if plaintext != "fbr-portal-secret" {
		t.Errorf("round trip: want %q, got %q", "fbr-portal-secret", plaintext)
	}
}

func TestVault_Encrypt_FreshNoncePerMessage(t *testing.T) {
	v := newTestVault(t)

	first, _ := v.Encrypt("same-password")
	second, _ := v.Encrypt("same-password")
	if first == second {
		t.Error("two encryptions of the same plaintext must differ")
	}
}

func TestVault_Decrypt_Malformed(t *testing.T) {
	v := newTestVault(t)

	for _, encoded := range []string{"", "no-delimiter", "zz:zz", "abcd:"} {
		if _, err := v.Decrypt(encoded); !errors.Is(err, ErrMalformedCiphertext) {
			t.Errorf("Decrypt(%q): expected ErrMalformedCiphertext, got %v", encoded, err)
		}
	}
}

func TestVault_Decrypt_Tampered(t *testing.T) {
	v := newTestVault(t)

	ciphertext, _ := v.Encrypt("secret")
	flipped := byte('0')
	if ciphertext[len(ciphertext)-1] == '0' {
		flipped = '1'
	}
	tampered := ciphertext[:len(ciphertext)-1] + string(flipped)
	if _, err := v.Decrypt(tampered); err == nil {
		t.Error("tampered ciphertext must fail authentication")
	}
}

func TestVault_Decrypt_WrongKey(t *testing.T) {
	v := newTestVault(t)
	other, _ := New("a-different-key")

	ciphertext, _ := v.Encrypt("secret")
	if _, err := other.Decrypt(ciphertext); err == nil {
		t.Error("decrypting under the wrong key must fail")
	}
}

func TestVault_New_EmptyKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("expected error for empty encryption key")
	}
}

func TestVault_Credentials_RoundTrip(t *testing.T) {
	v := newTestVault(t)

	original := domain.PortalCredentials{
		domain.PortalFBR:  {Username: "ali.khan", Password: "fbr-pass"},
		domain.PortalSECP: {Username: "akhan-corp", Password: "secp-pass"},
	}

	encrypted, err := v.EncryptCredentials(original)
	if err != nil {
		t.Fatalf("EncryptCredentials: %v", err)
	}
	for portal, login := range encrypted {
		if login.Password == original[portal].Password {
			t.Errorf("%s password stored in plaintext", portal)
		}
		if login.Username != original[portal].Username {
			t.Errorf("%s username must pass through unchanged", portal)
		}
	}

	decrypted, err := v.DecryptCredentials(encrypted)
	if err != nil {
		t.Fatalf("DecryptCredentials: %v", err)
	}
	for portal, login := range original {
		if decrypted[portal] != login {
			t.Errorf("%s: want %+v, got %+v", portal, login, decrypted[portal])
		}
	}
}

func TestVault_Credentials_NilPassthrough(t *testing.T) {
	v := newTestVault(t)

	encrypted, err := v.EncryptCredentials(nil)
	if err != nil || encrypted != nil {
		t.Errorf("nil input must pass through, got %v, %v", encrypted, err)
	}
	decrypted, err := v.DecryptCredentials(nil)
	if err != nil || decrypted != nil {
		t.Errorf("nil input must pass through, got %v, %v", decrypted, err)
	}
}

func TestVault_Credentials_IncompleteEntriesUntouched(t *testing.T) {
	v := newTestVault(t)

	creds := domain.PortalCredentials{
		domain.PortalFBR: {Username: "ali.khan"},          // no password
		domain.PortalPRA: {Password: "orphan-password"},   // no username
		domain.PortalPSW: {Username: "ak", Password: "x"}, // complete
	}

	encrypted, err := v.EncryptCredentials(creds)
	if err != nil {
		t.Fatalf("EncryptCredentials: %v", err)
	}
	if encrypted[domain.PortalFBR] != creds[domain.PortalFBR] {
		t.Error("entry without password must be untouched")
	}
	if encrypted[domain.PortalPRA] != creds[domain.PortalPRA] {
		t.Error("entry without username must be untouched")
	}
	if encrypted[domain.PortalPSW].Password == "x" {
		t.Error("complete entry must be encrypted")
	}
}
