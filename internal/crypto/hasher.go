// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-sign-desk/internal/config"
)

const (
	saltLen = 16 // 128 bits
	keyLen  = 32 // 256 bits
)

// ErrMalformedHash is returned by Verify when the stored digest cannot be
// parsed.
var ErrMalformedHash = errors.New("malformed argon2id hash")

// argonHasher is the private implementation of [SecretHasher].
type argonHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	dummyOnce sync.Once
	dummy     string
}

// NewSecretHasher constructs a [SecretHasher] with the given Argon2id cost.
// Zero fields fall back to the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewSecretHasher(params config.ArgonParams) SecretHasher {
	h := &argonHasher{
		argonTime:    params.Time,
		argonMemory:  params.Memory,
		argonThreads: params.Threads,
		argonKeyLen:  keyLen,
	}
	if h.argonTime == 0 {
		h.argonTime = 1
	}
	if h.argonMemory == 0 {
		h.argonMemory = 64 * 1024 // 64 MiB
	}
	if h.argonThreads == 0 {
		h.argonThreads = 4
	}
	return h
}

// Hash implements [SecretHasher].
func (h *argonHasher) Hash(secret string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(secret), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.argonMemory,
		h.argonTime,
		h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [SecretHasher]. The digest's own parameters are used.
func (h *argonHasher) Verify(secret, encoded string) (bool, error) {
	p, salt, want, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(secret), salt, p.time, p.memory, p.threads, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// Dummy implements [SecretHasher]. The digest is computed once per hasher.
func (h *argonHasher) Dummy() string {
	h.dummyOnce.Do(func() {
		random := make([]byte, saltLen)
		_, _ = io.ReadFull(rand.Reader, random)

		h.dummy, _ = h.Hash(base64.RawStdEncoding.EncodeToString(random))
	})
	return h.dummy
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	var p argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return p, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return p, nil, nil, fmt.Errorf("%w: zero cost parameter", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedHash
	}

	return p, salt, key, nil
}
