package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverExists(string) (bool, error) { return false, nil }

func TestGenerateUserID_Format(t *testing.T) {
	id, err := GenerateUserID(neverExists)

	require.NoError(t, err)
	assert.Len(t, id, UserIDLength)
	for _, r := range id {
		assert.Contains(t, userIDAlphabet, string(r))
	}
}

func TestGenerateUserID_Unique(t *testing.T) {
	first, err := GenerateUserID(neverExists)
	require.NoError(t, err)

	second, err := GenerateUserID(neverExists)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateUserID_RetriesOnCollision(t *testing.T) {
	calls := 0
	exists := func(string) (bool, error) {
		calls++
		// First three candidates are taken.
		return calls <= 3, nil
	}

	id, err := GenerateUserID(exists)

	require.NoError(t, err)
	assert.Len(t, id, UserIDLength)
	assert.Equal(t, 4, calls)
}

func TestGenerateUserID_FallsBackToTimestamp(t *testing.T) {
	exists := func(id string) (bool, error) {
		// Every random candidate is taken; only the timestamp form is free.
		return !strings.HasPrefix(id, "U"), nil
	}

	id, err := GenerateUserID(exists)

	require.NoError(t, err)
	assert.Len(t, id, UserIDLength)
	assert.True(t, strings.HasPrefix(id, "U"))
}

func TestGenerateUserID_Exhausted(t *testing.T) {
	everythingTaken := func(string) (bool, error) { return true, nil }

	_, err := GenerateUserID(everythingTaken)

	assert.ErrorIs(t, err, ErrUserIDExhausted)
}
