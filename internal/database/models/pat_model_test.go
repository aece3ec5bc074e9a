package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPAT(t *testing.T) {
	userID := uuid.New()
	pat, token := NewPAT(userID, "ci token", []string{"manage", "reports"})

	t.Run("the plaintext token is never stored", func(t *testing.T) {
		assert.NotEqual(t, token, pat.Token)
		assert.Len(t, token, 64)
	})

	t.Run("the stored hash matches the minted token", func(t *testing.T) {
		assert.Equal(t, pat.HashToken(token), pat.Token)
	})

	t.Run("scopes round trip through the space separated column", func(t *testing.T) {
		assert.Equal(t, "manage reports", pat.Scopes)
		assert.Equal(t, []string{"manage", "reports"}, pat.ScopeList())
	})

	t.Run("two tokens never collide", func(t *testing.T) {
		other, otherToken := NewPAT(userID, "second", []string{"manage"})
		assert.NotEqual(t, token, otherToken)
		assert.NotEqual(t, pat.Token, other.Token)
	})
}
