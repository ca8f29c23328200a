package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(DefaultArgon2idParams)

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.NoError(t, svc.Verify("correct horse battery staple", hash))
	assert.ErrorIs(t, svc.Verify("wrong password", hash), ErrPasswordHashMismatch)
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService(DefaultArgon2idParams)

	h1, err := svc.Hash("same password")
	require.NoError(t, err)
	h2, err := svc.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NoError(t, svc.Verify("same password", h1))
	assert.NoError(t, svc.Verify("same password", h2))
}

func TestPasswordService_MalformedHash(t *testing.T) {
	svc := NewPasswordService(DefaultArgon2idParams)

	assert.Error(t, svc.Verify("anything", "not-a-hash"))
	assert.Error(t, svc.Verify("anything", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"))
}

func TestNewPasswordService_ZeroParamsFallBack(t *testing.T) {
	svc := NewPasswordService(Argon2idParams{})

	hash, err := svc.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, svc.Verify("pw", hash))
}
