// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/binary"
	"encoding/pem"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/ssh"
)

const (
	symKeySize = 32
	nonceSize  = 24

	// wrappedLenSize is the big-endian uint16 prefix that records the
	// length of the RSA-wrapped symmetric key inside a blob.
	wrappedLenSize = 2
)

// keypairProvider is the private implementation of [Provider] backed by an
// RSA keypair the user already owns.
//
// Blob layout: len(wrapped) ‖ wrapped ‖ nonce ‖ box, where wrapped is the
// per-blob random symmetric key sealed with RSA-OAEP(SHA-256) and box is the
// plaintext sealed with nacl/secretbox under that symmetric key. A fresh
// symmetric key per blob keeps the RSA operation constant-size regardless of
// store size.
type keypairProvider struct {
	key *rsa.PrivateKey
}

// NewKeypairProvider constructs a [Provider] from the private key file at
// keyPath. Accepted formats: OpenSSH private keys and PEM PKCS#1/PKCS#8.
// The key must be an RSA key.
//
// Returns ErrNoKey if the file is missing or holds no usable RSA key, and
// ErrUnavailable if the file cannot be read.
func NewKeypairProvider(keyPath string) (Provider, error) {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoKey, keyPath)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, keyPath, err)
	}

	key, err := parseRSAPrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoKey, keyPath, err)
	}

	return &keypairProvider{key: key}, nil
}

func parseRSAPrivateKey(data []byte) (*rsa.PrivateKey, error) {
	// ssh.ParseRawPrivateKey understands both OpenSSH keys and the common
	// PEM containers.
	if raw, err := ssh.ParseRawPrivateKey(data); err == nil {
		if key, ok := raw.(*rsa.PrivateKey); ok {
			return key, nil
		}
		return nil, fmt.Errorf("not an RSA key")
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	raw, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	key, ok := raw.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA key")
	}
	return key, nil
}

// Encrypt implements [Provider].
func (p *keypairProvider) Encrypt(plaintext []byte) ([]byte, error) {
	var symKey [symKeySize]byte
	if _, err := io.ReadFull(rand.Reader, symKey[:]); err != nil {
		return nil, fmt.Errorf("%w: generate symmetric key: %v", ErrUnavailable, err)
	}

	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, &p.key.PublicKey, symKey[:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: wrap symmetric key: %v", ErrUnavailable, err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %v", ErrUnavailable, err)
	}

	blob := make([]byte, wrappedLenSize, wrappedLenSize+len(wrapped)+nonceSize+len(plaintext)+secretbox.Overhead)
	binary.BigEndian.PutUint16(blob, uint16(len(wrapped)))
	blob = append(blob, wrapped...)
	blob = append(blob, nonce[:]...)
	blob = secretbox.Seal(blob, plaintext, &nonce, &symKey)

	return blob, nil
}

// Decrypt implements [Provider]. Any structural or cryptographic failure is
// reported as ErrIntegrity: a truncated blob, a symmetric key sealed for a
// different RSA key, or a tampered box are indistinguishable to the caller
// and equally unrecoverable.
func (p *keypairProvider) Decrypt(blob []byte) ([]byte, error) {
	if len(blob) < wrappedLenSize {
		return nil, fmt.Errorf("%w: blob too short", ErrIntegrity)
	}
	wrappedLen := int(binary.BigEndian.Uint16(blob))
	rest := blob[wrappedLenSize:]
	if len(rest) < wrappedLen+nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("%w: blob too short", ErrIntegrity)
	}

	wrapped := rest[:wrappedLen]
	var nonce [nonceSize]byte
	copy(nonce[:], rest[wrappedLen:wrappedLen+nonceSize])
	box := rest[wrappedLen+nonceSize:]

	symRaw, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, p.key, wrapped, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap symmetric key: %v", ErrIntegrity, err)
	}
	if len(symRaw) != symKeySize {
		return nil, fmt.Errorf("%w: unexpected symmetric key length %d", ErrIntegrity, len(symRaw))
	}

	var symKey [symKeySize]byte
	copy(symKey[:], symRaw)

	plaintext, ok := secretbox.Open(nil, box, &nonce, &symKey)
	if !ok {
		return nil, fmt.Errorf("%w: open box", ErrIntegrity)
	}

	return plaintext, nil
}
