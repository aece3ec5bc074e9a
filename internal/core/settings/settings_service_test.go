package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMergeConfig(t *testing.T) {
	t.Run("an empty document yields the defaults", func(t *testing.T) {
		config, err := MergeConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("stored keys overlay the defaults, untouched keys survive", func(t *testing.T) {
		raw := datatypes.JSON(`{"passwordPolicy":{"minLength":16},"sessionPolicy":{"requireMfa":true}}`)

		config, err := MergeConfig(raw)

		require.NoError(t, err)
		assert.Equal(t, 16, config.PasswordPolicy.MinLength)
		assert.True(t, config.SessionPolicy.RequireMFA)
		// these were never touched by the tenant
		assert.True(t, config.AccessControl.AuditLoggingEnabled)
		assert.Equal(t, 5, config.Monitoring.FailedLoginThreshold)
	})

	t.Run("a broken document is an error", func(t *testing.T) {
		_, err := MergeConfig(datatypes.JSON(`{"passwordPolicy":`))
		assert.Error(t, err)
	})
}

func TestComputeScore(t *testing.T) {
	t.Run("the weights sum to one hundred", func(t *testing.T) {
		score := ComputeScore(DefaultConfig())
		sum := 0
		for _, check := range score.Checks {
			sum += check.Weight
		}
		assert.Equal(t, 100, sum)
	})

	t.Run("the default configuration is mid field", func(t *testing.T) {
		// rotation 5 + session timeout 10 + audit logging 15 +
		// least privilege 10 + failed login alerts 5
		score := ComputeScore(DefaultConfig())
		assert.Equal(t, 45, score.Score)
	})

	t.Run("a fully hardened configuration scores one hundred", func(t *testing.T) {
		config := DefaultConfig()
		config.PasswordPolicy.MinLength = 14
		config.PasswordPolicy.RequireSymbols = true
		config.SessionPolicy.RequireMFA = true
		config.AccessControl.IPAllowlistEnabled = true
		config.Monitoring.AnomalyDetection = true

		assert.Equal(t, 100, ComputeScore(config).Score)
	})

	t.Run("disabling rotation costs its weight", func(t *testing.T) {
		config := DefaultConfig()
		config.PasswordPolicy.ExpiryDays = 0

		assert.Equal(t, 40, ComputeScore(config).Score)
	})
}
