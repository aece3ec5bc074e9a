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

// Package statistics aggregates the cross module dashboard counters. Every
// dashboard reads from this one service, so the numbers on the overview, the
// trend chart and the periodic snapshots can never drift apart.
package statistics

import (
	"encoding/json"
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type statsRepository interface {
	Total(model repositories.Tabler, tenantID uuid.UUID) (int64, error)
	CountWhere(model repositories.Tabler, tenantID uuid.UUID, query string, args ...any) (int64, error)
}

type snapshotRepository interface {
	Create(snapshot *models.StatSnapshot) error
	ListSince(tenantID uuid.UUID, since time.Time) ([]models.StatSnapshot, error)
}

type Dashboard struct {
	Incidents struct {
		Total int64 `json:"total"`
		Open  int64 `json:"open"`
	} `json:"incidents"`
	Compliance struct {
		Total     int64 `json:"total"`
		Compliant int64 `json:"compliant"`
	} `json:"compliance"`
	ActionPlans struct {
		Total      int64 `json:"total"`
		InProgress int64 `json:"inProgress"`
		Completed  int64 `json:"completed"`
	} `json:"actionPlans"`
	Assessments struct {
		Total     int64 `json:"total"`
		Completed int64 `json:"completed"`
	} `json:"assessments"`
	Privacy struct {
		OpenRequests  int64 `json:"openRequests"`
		OpenIncidents int64 `json:"openIncidents"`
	} `json:"privacy"`
	Vendors struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"vendors"`
	Assets struct {
		Total      int64 `json:"total"`
		Vulnerable int64 `json:"vulnerable"`
	} `json:"assets"`
}

type Service struct {
	statsRepository    statsRepository
	snapshotRepository snapshotRepository
}

func NewService(statsRepository statsRepository, snapshotRepository snapshotRepository) *Service {
	return &Service{
		statsRepository:    statsRepository,
		snapshotRepository: snapshotRepository,
	}
}

func (s *Service) Dashboard(tenantID uuid.UUID) (Dashboard, error) {
	var d Dashboard
	var err error

	if d.Incidents.Total, err = s.statsRepository.Total(&models.SecurityIncident{}, tenantID); err != nil {
		return d, err
	}
	if d.Incidents.Open, err = s.statsRepository.CountWhere(&models.SecurityIncident{}, tenantID, "status NOT IN ?", []string{"resolved", "closed"}); err != nil {
		return d, err
	}
	if d.Compliance.Total, err = s.statsRepository.Total(&models.ComplianceRecord{}, tenantID); err != nil {
		return d, err
	}
	if d.Compliance.Compliant, err = s.statsRepository.CountWhere(&models.ComplianceRecord{}, tenantID, "status = ?", "compliant"); err != nil {
		return d, err
	}
	if d.ActionPlans.Total, err = s.statsRepository.Total(&models.ActionPlan{}, tenantID); err != nil {
		return d, err
	}
	if d.ActionPlans.InProgress, err = s.statsRepository.CountWhere(&models.ActionPlan{}, tenantID, "status = ?", "in_progress"); err != nil {
		return d, err
	}
	if d.ActionPlans.Completed, err = s.statsRepository.CountWhere(&models.ActionPlan{}, tenantID, "status = ?", "completed"); err != nil {
		return d, err
	}
	if d.Assessments.Total, err = s.statsRepository.Total(&models.Assessment{}, tenantID); err != nil {
		return d, err
	}
	if d.Assessments.Completed, err = s.statsRepository.CountWhere(&models.Assessment{}, tenantID, "status = ?", "completed"); err != nil {
		return d, err
	}
	if d.Privacy.OpenRequests, err = s.statsRepository.CountWhere(&models.DataSubjectRequest{}, tenantID, "status IN ?", []string{"received", "in_progress"}); err != nil {
		return d, err
	}
	if d.Privacy.OpenIncidents, err = s.statsRepository.CountWhere(&models.PrivacyIncident{}, tenantID, "status NOT IN ?", []string{"resolved", "closed"}); err != nil {
		return d, err
	}
	if d.Vendors.Total, err = s.statsRepository.Total(&models.Vendor{}, tenantID); err != nil {
		return d, err
	}
	if d.Vendors.Active, err = s.statsRepository.CountWhere(&models.Vendor{}, tenantID, "status = ?", "active"); err != nil {
		return d, err
	}
	if d.Assets.Total, err = s.statsRepository.Total(&models.CMDBAsset{}, tenantID); err != nil {
		return d, err
	}
	if d.Assets.Vulnerable, err = s.statsRepository.CountWhere(&models.CMDBAsset{}, tenantID, "vulnerability_count > 0"); err != nil {
		return d, err
	}

	return d, nil
}

// Snapshot captures the current dashboard counters for trend display. The
// daemon calls this per tenant on a fixed interval.
func (s *Service) Snapshot(tenantID uuid.UUID) error {
	dashboard, err := s.Dashboard(tenantID)
	if err != nil {
		return errors.Wrap(err, "could not collect dashboard stats")
	}

	raw, err := json.Marshal(dashboard)
	if err != nil {
		return errors.Wrap(err, "could not encode dashboard stats")
	}

	snapshot := models.StatSnapshot{
		TenantID:   tenantID,
		CapturedAt: time.Now(),
		Stats:      datatypes.JSON(raw),
	}
	return errors.Wrap(s.snapshotRepository.Create(&snapshot), "could not store stat snapshot")
}

func (s *Service) Trend(tenantID uuid.UUID, since time.Time) ([]models.StatSnapshot, error) {
	return s.snapshotRepository.ListSince(tenantID, since)
}
