package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokens_IssueAndParse(t *testing.T) {
	tokens, err := NewTokens("test-secret")
	require.NoError(t, err)

	token, expiresAt, err := tokens.Issue(17, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	accountID, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(17), accountID)
}

func TestTokens_UniquePerIssue(t *testing.T) {
	tokens, err := NewTokens("test-secret")
	require.NoError(t, err)

	first, _, err := tokens.Issue(1, time.Hour)
	require.NoError(t, err)
	second, _, err := tokens.Issue(1, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTokens_RejectsExpired(t *testing.T) {
	tokens, err := NewTokens("test-secret")
	require.NoError(t, err)
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens.WithClock(func() time.Time { return issued })

	token, _, err := tokens.Issue(3, time.Minute)
	require.NoError(t, err)

	tokens.WithClock(func() time.Time { return issued.Add(2 * time.Minute) })
	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokens_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewTokens("one")
	require.NoError(t, err)
	verifier, err := NewTokens("two")
	require.NoError(t, err)

	token, _, err := issuer.Issue(9, time.Hour)
	require.NoError(t, err)
	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokens_RequiresSecret(t *testing.T) {
	_, err := NewTokens("  ")
	assert.Error(t, err)
}

func TestPasswords_HashAndCompare(t *testing.T) {
	passwords := NewPasswords(bcrypt.MinCost)

	hash, err := passwords.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, passwords.Compare(hash, "s3cret-pass"))
	assert.False(t, passwords.Compare(hash, "wrong"))
}
