package aiprovider

import (
	"encoding/json"
	"testing"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderDTOObfuscatesAPIKey(t *testing.T) {
	t.Run("only the first and last four characters survive", func(t *testing.T) {
		dto := toDTO(models.AIProvider{APIKey: "sk-1234567890abcdef"})
		assert.Equal(t, "sk-1************cdef", dto.ObfuscatedAPIKey)
	})

	t.Run("short keys are hidden entirely", func(t *testing.T) {
		dto := toDTO(models.AIProvider{APIKey: "short"})
		assert.Equal(t, "", dto.ObfuscatedAPIKey)
	})

	t.Run("the raw key never reaches the wire", func(t *testing.T) {
		dto := toDTO(models.AIProvider{Name: "openai prod", APIKey: "sk-1234567890abcdef"})

		serialized, err := json.Marshal(dto)
		require.NoError(t, err)
		assert.NotContains(t, string(serialized), "sk-1234567890abcdef")
		assert.Contains(t, string(serialized), "sk-1************cdef")
	})
}
