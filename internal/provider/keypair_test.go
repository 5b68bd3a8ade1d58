package provider

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestKey generates an RSA key and writes it to dir in PKCS#1 PEM form.
func writeTestKey(t *testing.T, dir string) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	path := filepath.Join(dir, "id_rsa")
	block := &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}
	return path
}

func TestKeypairProvider_RoundTrip(t *testing.T) {
	p, err := NewKeypairProvider(writeTestKey(t, t.TempDir()))
	if err != nil {
		t.Fatalf("NewKeypairProvider error: %v", err)
	}

	plaintext := []byte(`[{"key":"FOO","value":"bar"}]`)
	blob, err := p.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Contains(blob, plaintext) {
		t.Fatalf("blob contains plaintext")
	}

	got, err := p.Decrypt(blob)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestKeypairProvider_EncryptIsRandomized(t *testing.T) {
	p, err := NewKeypairProvider(writeTestKey(t, t.TempDir()))
	if err != nil {
		t.Fatalf("NewKeypairProvider error: %v", err)
	}

	b1, err := p.Encrypt([]byte("same payload"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b2, err := p.Encrypt([]byte("same payload"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if bytes.Equal(b1, b2) {
		t.Fatalf("expected distinct blobs for the same plaintext")
	}
}

func TestKeypairProvider_WrongKeyFailsWithIntegrity(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	pa, err := NewKeypairProvider(writeTestKey(t, dirA))
	if err != nil {
		t.Fatalf("NewKeypairProvider error: %v", err)
	}
	pb, err := NewKeypairProvider(writeTestKey(t, dirB))
	if err != nil {
		t.Fatalf("NewKeypairProvider error: %v", err)
	}

	blob, err := pa.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := pb.Decrypt(blob); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Decrypt with wrong key: got %v, want ErrIntegrity", err)
	}
}

func TestKeypairProvider_CorruptedBlobFailsWithIntegrity(t *testing.T) {
	p, err := NewKeypairProvider(writeTestKey(t, t.TempDir()))
	if err != nil {
		t.Fatalf("NewKeypairProvider error: %v", err)
	}

	blob, err := p.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	blob[len(blob)-1] ^= 0xFF
	if _, err := p.Decrypt(blob); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Decrypt of tampered blob: got %v, want ErrIntegrity", err)
	}

	if _, err := p.Decrypt([]byte{0x00}); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Decrypt of truncated blob: got %v, want ErrIntegrity", err)
	}
}

func TestNewKeypairProvider_MissingKey(t *testing.T) {
	_, err := NewKeypairProvider(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrNoKey) {
		t.Fatalf("missing key file: got %v, want ErrNoKey", err)
	}
}

func TestNewKeypairProvider_GarbageKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id_rsa")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := NewKeypairProvider(path)
	if !errors.Is(err, ErrNoKey) {
		t.Fatalf("garbage key file: got %v, want ErrNoKey", err)
	}
}
