package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2idParams bundle the tunables of the argon2id hash.
type Argon2idParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2idParams are sane interactive-login parameters.
var DefaultArgon2idParams = Argon2idParams{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

var (
	errInvalidHashFormat    = errors.New("invalid argon2id hash format")
	errIncompatibleVersion  = errors.New("incompatible argon2 version")
	ErrPasswordHashMismatch = errors.New("password does not match hash")
)

// PasswordService hashes and verifies passwords with argon2id, encoding
// hashes in the PHC string format.
type PasswordService struct {
	params Argon2idParams
}

// NewPasswordService creates a password service. Zero-valued params fall back
// to the defaults.
func NewPasswordService(params Argon2idParams) *PasswordService {
	if params.Memory == 0 {
		params = DefaultArgon2idParams
	}
	return &PasswordService{params: params}
}

// Hash derives an argon2id hash with a fresh random salt.
func (s *PasswordService) Hash(password string) (string, error) {
	salt := make([]byte, s.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, s.params.Iterations, s.params.Memory, s.params.Parallelism, s.params.KeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, s.params.Memory, s.params.Iterations, s.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify checks password against an encoded hash in constant time.
func (s *PasswordService) Verify(password, encodedHash string) error {
	params, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return err
	}

	otherKey := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, uint32(len(key)))
	if subtle.ConstantTimeCompare(key, otherKey) != 1 {
		return ErrPasswordHashMismatch
	}
	return nil
}

func decodeHash(encodedHash string) (Argon2idParams, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return Argon2idParams{}, nil, nil, errInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2idParams{}, nil, nil, errInvalidHashFormat
	}
	if version != argon2.Version {
		return Argon2idParams{}, nil, nil, errIncompatibleVersion
	}

	var params Argon2idParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return Argon2idParams{}, nil, nil, errInvalidHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Argon2idParams{}, nil, nil, errInvalidHashFormat
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Argon2idParams{}, nil, nil, errInvalidHashFormat
	}

	return params, salt, key, nil
}
