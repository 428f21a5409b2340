package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	defaultArgonTime    uint32 = 3
	defaultArgonMemory  uint32 = 64 * 1024
	defaultArgonThreads uint8  = 2
	defaultArgonKeyLen  uint32 = 32
	argonSaltLen               = 16
)

// PasswordHasher is the opaque hashing collaborator the IAM services depend
// on: Hash(plaintext) -> digest, Compare(plaintext, digest) -> bool.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) (bool, error)
}

// Argon2Hasher hashes passwords with argon2id and encodes them in the PHC
// string format, parameters included, so stored digests survive cost
// changes.
type Argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{
		time:    defaultArgonTime,
		memory:  defaultArgonMemory,
		threads: defaultArgonThreads,
		keyLen:  defaultArgonKeyLen,
	}
}

func (h *Argon2Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	digest := argon2.IDKey([]byte(plaintext), salt, h.time, h.memory, h.threads, h.keyLen)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest)), nil
}

func (h *Argon2Hasher) Compare(plaintext, digest string) (bool, error) {
	memory, timeCost, threads, salt, expected, err := decodeDigest(digest)
	if err != nil {
		return false, err
	}
	expectedLen := len(expected)
	if uint64(expectedLen) > uint64(math.MaxUint32) {
		return false, fmt.Errorf("invalid digest length")
	}
	actual := argon2.IDKey([]byte(plaintext), salt, timeCost, memory, threads, uint32(expectedLen))
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func decodeDigest(encoded string) (memory uint32, timeCost uint32, threads uint8, salt, digest []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid password digest format")
	}
	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid digest params")
	}
	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid digest salt")
	}
	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("invalid digest payload")
	}
	return memory, timeCost, threads, salt, digest, nil
}
