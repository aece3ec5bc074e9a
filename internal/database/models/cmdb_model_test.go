package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCMDBAssetRiskLevel(t *testing.T) {
	cases := []struct {
		name           string
		vulnerable     int
		internetFacing bool
		expected       Severity
	}{
		{"clean internal asset is low", 0, false, SeverityLow},
		{"few vulnerabilities are medium", 3, false, SeverityMedium},
		{"many vulnerabilities are high", 12, false, SeverityHigh},
		{"dozens of vulnerabilities are critical", 40, false, SeverityCritical},
		{"clean but internet facing is bumped to medium", 0, true, SeverityMedium},
		{"medium internet facing is bumped to high", 5, true, SeverityHigh},
		{"high internet facing is bumped to critical", 20, true, SeverityCritical},
		{"critical cannot be bumped further", 100, true, SeverityCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			asset := CMDBAsset{VulnerabilityCount: tc.vulnerable, InternetFacing: tc.internetFacing}
			assert.Equal(t, tc.expected, asset.RiskLevel())
		})
	}
}
