// Copyright (C) 2025 the conformo authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package settings holds the versioned security configuration of a tenant.
// The stored record may carry a partial config; reads always merge it over
// the defaults so callers see a complete document, and the security score is
// computed here instead of in each client.
package settings

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type PasswordPolicy struct {
	MinLength        int  `json:"minLength"`
	RequireUppercase bool `json:"requireUppercase"`
	RequireNumbers   bool `json:"requireNumbers"`
	RequireSymbols   bool `json:"requireSymbols"`
	ExpiryDays       int  `json:"expiryDays"`
}

type SessionPolicy struct {
	TimeoutMinutes        int  `json:"timeoutMinutes"`
	MaxConcurrentSessions int  `json:"maxConcurrentSessions"`
	RequireMFA            bool `json:"requireMfa"`
}

type AccessControlPolicy struct {
	IPAllowlistEnabled  bool `json:"ipAllowlistEnabled"`
	AuditLoggingEnabled bool `json:"auditLoggingEnabled"`
	LeastPrivilegeRoles bool `json:"leastPrivilegeRoles"`
}

type MonitoringPolicy struct {
	AlertOnFailedLogins  bool `json:"alertOnFailedLogins"`
	FailedLoginThreshold int  `json:"failedLoginThreshold"`
	AnomalyDetection     bool `json:"anomalyDetection"`
}

type SecurityConfig struct {
	PasswordPolicy PasswordPolicy      `json:"passwordPolicy"`
	SessionPolicy  SessionPolicy       `json:"sessionPolicy"`
	AccessControl  AccessControlPolicy `json:"accessControl"`
	Monitoring     MonitoringPolicy    `json:"monitoring"`
}

func DefaultConfig() SecurityConfig {
	return SecurityConfig{
		PasswordPolicy: PasswordPolicy{
			MinLength:        8,
			RequireUppercase: true,
			RequireNumbers:   true,
			RequireSymbols:   false,
			ExpiryDays:       90,
		},
		SessionPolicy: SessionPolicy{
			TimeoutMinutes:        30,
			MaxConcurrentSessions: 3,
			RequireMFA:            false,
		},
		AccessControl: AccessControlPolicy{
			IPAllowlistEnabled:  false,
			AuditLoggingEnabled: true,
			LeastPrivilegeRoles: true,
		},
		Monitoring: MonitoringPolicy{
			AlertOnFailedLogins:  true,
			FailedLoginThreshold: 5,
			AnomalyDetection:     false,
		},
	}
}

// MergeConfig overlays the stored document on top of the defaults. Keys the
// tenant never touched keep their default value.
func MergeConfig(raw datatypes.JSON) (SecurityConfig, error) {
	config := DefaultConfig()
	if len(raw) == 0 {
		return config, nil
	}
	if err := json.Unmarshal(raw, &config); err != nil {
		return config, errors.Wrap(err, "could not parse stored security config")
	}
	return config, nil
}

type ScoreCheck struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Passed bool   `json:"passed"`
}

type Score struct {
	Score  int          `json:"score"`
	Checks []ScoreCheck `json:"checks"`
}

// ComputeScore grades the configuration on a 0-100 scale. Each check carries
// a fixed weight; the weights sum to 100.
func ComputeScore(config SecurityConfig) Score {
	checks := []ScoreCheck{
		{Name: "password_min_length", Weight: 15, Passed: config.PasswordPolicy.MinLength >= 12},
		{Name: "password_complexity", Weight: 10, Passed: config.PasswordPolicy.RequireUppercase && config.PasswordPolicy.RequireNumbers && config.PasswordPolicy.RequireSymbols},
		{Name: "password_rotation", Weight: 5, Passed: config.PasswordPolicy.ExpiryDays > 0 && config.PasswordPolicy.ExpiryDays <= 90},
		{Name: "session_timeout", Weight: 10, Passed: config.SessionPolicy.TimeoutMinutes > 0 && config.SessionPolicy.TimeoutMinutes <= 30},
		{Name: "mfa_required", Weight: 20, Passed: config.SessionPolicy.RequireMFA},
		{Name: "ip_allowlist", Weight: 5, Passed: config.AccessControl.IPAllowlistEnabled},
		{Name: "audit_logging", Weight: 15, Passed: config.AccessControl.AuditLoggingEnabled},
		{Name: "least_privilege", Weight: 10, Passed: config.AccessControl.LeastPrivilegeRoles},
		{Name: "failed_login_alerts", Weight: 5, Passed: config.Monitoring.AlertOnFailedLogins && config.Monitoring.FailedLoginThreshold > 0},
		{Name: "anomaly_detection", Weight: 5, Passed: config.Monitoring.AnomalyDetection},
	}

	score := 0
	for _, check := range checks {
		if check.Passed {
			score += check.Weight
		}
	}

	return Score{Score: score, Checks: checks}
}
