package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_NormalizesFields(t *testing.T) {
	account, err := NewAccount("  Ana@Example.COM ", Profile{Name: " Ana ", City: "Campinas", Region: "sp"})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", account.Email)
	assert.Equal(t, "Ana", account.Name)
	assert.Equal(t, "SP", account.Region)
	assert.Equal(t, TypeIndividual, account.Type)
	assert.True(t, account.HasLocation())
}

func TestNewAccount_Validation(t *testing.T) {
	_, err := NewAccount("", Profile{Name: "Ana"})
	assert.ErrorIs(t, err, ErrEmptyEmail)

	_, err = NewAccount("not-an-email", Profile{Name: "Ana"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewAccount("ana@example.com", Profile{})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewAccount("ana@example.com", Profile{Name: "Ana", Region: "XX"})
	assert.ErrorIs(t, err, ErrInvalidRegion)

	_, err = NewAccount("ana@example.com", Profile{Name: "Ana", Type: "company"})
	assert.ErrorIs(t, err, ErrInvalidAccountType)
}

func TestIsVerifiedNGO(t *testing.T) {
	ngo, err := NewAccount("ong@example.com", Profile{Name: "Patas", Type: TypeNGO})
	require.NoError(t, err)
	assert.False(t, ngo.IsVerifiedNGO())

	ngo.SetVerified(true)
	assert.True(t, ngo.IsVerifiedNGO())

	person, err := NewAccount("p@example.com", Profile{Name: "Pedro"})
	require.NoError(t, err)
	person.SetVerified(true)
	assert.False(t, person.IsVerifiedNGO())
}

func TestParseAccountType(t *testing.T) {
	parsed, err := ParseAccountType("NGO")
	require.NoError(t, err)
	assert.Equal(t, TypeNGO, parsed)
	assert.Equal(t, "ONG", parsed.Label())

	parsed, err = ParseAccountType("")
	require.NoError(t, err)
	assert.Equal(t, TypeIndividual, parsed)
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
	assert.NoError(t, ValidatePassword("long-enough"))
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.False(t, Session{ExpiresAt: now.Add(time.Second)}.Expired(now))
}
