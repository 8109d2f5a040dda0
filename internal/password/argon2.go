// Package password hashes and verifies account passwords with Argon2id.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.PasswordHasher = (*Argon2)(nil)

const (
	minMemoryKiB   uint32 = 8 * 1024
	minTime        uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16
	algorithm             = "argon2id"

	// Upper bounds also apply to parameters read from stored hashes.
	maxMemoryKiB  uint32 = 1024 * 1024
	maxTime       uint32 = 10
	maxSaltLength uint32 = 64
	maxKeyLength  uint32 = 64

	externalPrefix = "external:"
)

// Config holds Argon2id cost parameters.
type Config struct {
	MemoryKiB   uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultConfig returns the production cost parameters.
func DefaultConfig() Config {
	return Config{
		MemoryKiB:   64 * 1024,
		Time:        3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Argon2 implements model.PasswordHasher.
type Argon2 struct {
	config Config
}

// NewArgon2 validates cfg and returns a hasher.
func NewArgon2(cfg Config) (*Argon2, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &Argon2{config: cfg}, nil
}

// Hash derives a PHC-encoded hash with a fresh random salt.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, a.config.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.config.Time, a.config.MemoryKiB, a.config.Parallelism, a.config.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm,
		argon2.Version,
		a.config.MemoryKiB,
		a.config.Time,
		a.config.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key with the parameters embedded in encoded.
// Any malformed input, including external account placeholders, yields false.
func (a *Argon2) Verify(password, encoded string) bool {
	parsed, err := parsePHC(encoded)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(password), parsed.salt, parsed.time, parsed.memory, parsed.parallelism, uint32(len(parsed.key)))

	return subtle.ConstantTimeCompare(key, parsed.key) == 1
}

// ExternalPlaceholder returns the stored hash for accounts that sign in only
// through an external provider. It never verifies against any password.
func ExternalPlaceholder(subject string) string {
	return externalPrefix + subject
}

type phc struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parsePHC(encoded string) (phc, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return phc{}, errors.New("invalid hash format")
	}
	if parts[1] != algorithm {
		return phc{}, errors.New("unsupported algorithm")
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return phc{}, errors.New("unsupported version")
	}

	var out phc
	if err := parseParams(parts[3], &out); err != nil {
		return phc{}, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < int(minSaltLength) || len(salt) > int(maxSaltLength) {
		return phc{}, errors.New("invalid salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) < int(minKeyLength) || len(key) > int(maxKeyLength) {
		return phc{}, errors.New("invalid key")
	}

	out.salt = salt
	out.key = key
	return out, nil
}

func parseParams(part string, out *phc) error {
	pairs := strings.Split(part, ",")
	if len(pairs) != 3 {
		return errors.New("invalid parameters")
	}

	var seen int
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return errors.New("invalid parameter entry")
		}

		switch name {
		case "m":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || uint32(v) < minMemoryKiB || uint32(v) > maxMemoryKiB {
				return errors.New("invalid memory parameter")
			}
			out.memory = uint32(v)
		case "t":
			v, err := strconv.ParseUint(value, 10, 32)
			if err != nil || uint32(v) < minTime || uint32(v) > maxTime {
				return errors.New("invalid time parameter")
			}
			out.time = uint32(v)
		case "p":
			v, err := strconv.ParseUint(value, 10, 8)
			if err != nil || uint8(v) < minParallelism {
				return errors.New("invalid parallelism parameter")
			}
			out.parallelism = uint8(v)
		default:
			return fmt.Errorf("unsupported parameter %q", name)
		}
		seen++
	}

	if out.memory == 0 || out.time == 0 || out.parallelism == 0 || seen != 3 {
		return errors.New("missing parameters")
	}
	return nil
}

func validateConfig(cfg Config) error {
	switch {
	case cfg.MemoryKiB < minMemoryKiB:
		return fmt.Errorf("memory must be >= %d KiB", minMemoryKiB)
	case cfg.MemoryKiB > maxMemoryKiB:
		return fmt.Errorf("memory must be <= %d KiB", maxMemoryKiB)
	case cfg.Time < minTime:
		return fmt.Errorf("time must be >= %d", minTime)
	case cfg.Time > maxTime:
		return fmt.Errorf("time must be <= %d", maxTime)
	case cfg.Parallelism < minParallelism:
		return fmt.Errorf("parallelism must be >= %d", minParallelism)
	case cfg.SaltLength < minSaltLength:
		return fmt.Errorf("salt length must be >= %d", minSaltLength)
	case cfg.SaltLength > maxSaltLength:
		return fmt.Errorf("salt length must be <= %d", maxSaltLength)
	case cfg.KeyLength < minKeyLength:
		return fmt.Errorf("key length must be >= %d", minKeyLength)
	case cfg.KeyLength > maxKeyLength:
		return fmt.Errorf("key length must be <= %d", maxKeyLength)
	}
	return nil
}
