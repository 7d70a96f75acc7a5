package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/hasher_mock.go -package=mock

// SecretHasher turns a clear-text secret into a self-describing digest and
// checks a secret against such a digest.
//
// The digest format is the PHC string used by argon2 reference tools:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// with salt and hash in unpadded standard base64. Because the cost
// parameters travel with the digest, Verify keeps working after the
// configured cost changes.
type SecretHasher interface {
	// Hash derives a digest from secret with a fresh random salt.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches encoded. The comparison is
	// constant-time. A malformed digest yields [ErrMalformedHash].
	Verify(secret, encoded string) (bool, error)

	// Dummy returns a valid digest of a random secret. Verifying against it
	// costs the same as a real check, which keeps an unknown login handle
	// indistinguishable by timing from a wrong secret.
	Dummy() string
}
