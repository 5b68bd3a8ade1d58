package provider

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// Provider is the boundary to the external asymmetric encryption capability
// that protects the secret store at rest. It knows nothing about files,
// sessions or the IPC protocol; it turns plaintext bytes into an opaque blob
// and back.
//
// Precondition (documented, not verified here): the configured key is one
// the user holds ultimate trust over. The application never generates,
// imports or rotates keys.
//
// Implementations perform no retries; a failed decrypt with the wrong key
// cannot succeed on a second attempt, so failures propagate verbatim.
type Provider interface {
	// Encrypt seals plaintext into an opaque blob that only the holder of
	// the private key can open.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Returns ErrIntegrity if
	// the blob is corrupted or was sealed for a different key.
	Decrypt(blob []byte) ([]byte, error)
}
