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

// Package seed provisions a demo tenant with sample data across every
// module. Inserts are best effort: a failing row is recorded and skipped,
// never aborting the batch. Running the seeder twice duplicates the sample
// rows since none of them carry a natural key.
package seed

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core/tenant"
	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/monitoring"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Options struct {
	TenantName    string
	AdminEmail    string
	AdminPassword string
	AdminFullName string
}

type Summary struct {
	TenantSlug string
	Created    int
	Failed     int
	Errors     []string
}

type Service struct {
	db           *gorm.DB
	rbacProvider accesscontrol.RBACProvider
}

func NewService(db *gorm.DB, rbacProvider accesscontrol.RBACProvider) *Service {
	return &Service{db: db, rbacProvider: rbacProvider}
}

// Seed creates the demo tenant, its admin profile and sample rows for every
// module. The tenant and admin must succeed; everything after is best effort.
func (s *Service) Seed(opts Options) (Summary, error) {
	summary := Summary{}

	if opts.TenantName == "" || opts.AdminEmail == "" || opts.AdminPassword == "" {
		return summary, errors.New("tenant name, admin email and admin password are required")
	}

	demoTenant := models.Tenant{
		Name:        opts.TenantName,
		Slug:        slug.Make(opts.TenantName),
		Description: "Seeded demo tenant",
	}
	if err := s.db.Create(&demoTenant).Error; err != nil {
		return summary, errors.Wrap(err, "could not create tenant")
	}
	summary.TenantSlug = demoTenant.Slug

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return summary, errors.Wrap(err, "could not hash admin password")
	}

	fullName := opts.AdminFullName
	if fullName == "" {
		fullName = "Demo Admin"
	}
	admin := models.Profile{
		TenantID:     demoTenant.ID,
		Email:        opts.AdminEmail,
		FullName:     fullName,
		JobTitle:     "DPO",
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return summary, errors.Wrap(err, "could not create admin profile")
	}

	rbac := s.rbacProvider.GetDomainRBAC(demoTenant.ID.String())
	if err := tenant.BootstrapRBAC(rbac, admin.ID.String()); err != nil {
		return summary, errors.Wrap(err, "could not bootstrap tenant roles")
	}

	for _, row := range sampleRows(demoTenant.ID) {
		if err := s.db.Create(row).Error; err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%T: %v", row, err))
			monitoring.SeedRowsTotal.WithLabelValues("failed").Inc()
			slog.Warn("could not seed row", "err", err, "row", fmt.Sprintf("%T", row))
			continue
		}
		summary.Created++
		monitoring.SeedRowsTotal.WithLabelValues("created").Inc()
	}

	return summary, nil
}

func scoped(tenantID uuid.UUID) models.TenantModel {
	return models.TenantModel{
		Model:    models.Model{ID: uuid.New()},
		TenantID: tenantID,
	}
}

// sampleRows builds one small data set per module. Rows reference each other
// through UUIDs generated here, so the set stays internally consistent even
// across repeated runs.
func sampleRows(tenantID uuid.UUID) []any {
	now := time.Now()
	in30 := now.AddDate(0, 0, 30)
	lastMonth := now.AddDate(0, -1, 0)

	legalBasis := models.LegalBasis{
		TenantModel: scoped(tenantID),
		Name:        "Customer contracts",
		LegalGround: "contract_execution",
		Description: "Processing required to fulfil customer contracts",
		Status:      models.LegalBasisStatusActive,
	}

	plan := models.ActionPlan{
		TenantModel: scoped(tenantID),
		Title:       "Encrypt personal data at rest",
		Description: "Roll out disk encryption on all database hosts",
		Status:      models.ActionPlanStatusInProgress,
		GutGravity:  5,
		GutUrgency:  4,
		GutTendency: 3,
		DueDate:     &in30,
	}

	report := models.AuditReport{
		TenantModel: scoped(tenantID),
		Title:       "Annual LGPD compliance audit",
		AuditType:   models.AuditTypeInternal,
		Status:      models.AuditStatusInProgress,
		Scope:       "Privacy controls and data handling processes",
		StartDate:   &lastMonth,
	}

	initiative := models.StrategicInitiative{
		TenantModel: scoped(tenantID),
		Title:       "Privacy program maturity",
		Owner:       "DPO office",
		Status:      models.InitiativeStatusActive,
		StartsOn:    &lastMonth,
		EndsOn:      &in30,
	}

	domain := models.AssessmentDomain{
		TenantModel: scoped(tenantID),
		Framework:   "LGPD",
		Name:        "Governance",
		Weight:      2,
	}
	control := models.AssessmentControl{
		TenantModel: scoped(tenantID),
		DomainID:    domain.ID,
		Code:        "GOV-01",
		Name:        "Privacy policy",
		Description: "A published and maintained privacy policy exists",
	}
	assessment := models.Assessment{
		TenantModel: scoped(tenantID),
		Framework:   "LGPD",
		Title:       "LGPD baseline assessment",
		Status:      models.AssessmentStatusInProgress,
		StartedAt:   &lastMonth,
	}

	vendor := models.Vendor{
		TenantModel:  scoped(tenantID),
		Name:         "CloudHost Ltda",
		Category:     "Infrastructure",
		RiskTier:     models.RiskTierHigh,
		ContactEmail: "security@cloudhost.example",
		Status:       "active",
	}

	return []any{
		&legalBasis,
		&models.DataInventoryItem{
			TenantModel:     scoped(tenantID),
			SystemName:      "CRM",
			DataCategory:    "contact_data",
			Sensitivity:     models.DataSensitivityConfidential,
			DataOrigin:      "customer signup",
			RetentionPeriod: "5 years",
			Responsible:     "Sales Ops",
		},
		&models.Consent{
			TenantModel:  scoped(tenantID),
			LegalBasisID: &legalBasis.ID,
			SubjectEmail: "maria@example.com",
			Purpose:      "marketing communication",
			Status:       models.ConsentStatusGranted,
			GrantedAt:    &lastMonth,
		},
		&models.DataSubjectRequest{
			TenantModel:    scoped(tenantID),
			RequesterEmail: "joao@example.com",
			RequestType:    models.DSRTypeAccess,
			Status:         models.DSRStatusReceived,
			Description:    "Copy of all stored personal data",
			DueDate:        now.AddDate(0, 0, 15),
		},
		&models.PrivacyIncident{
			TenantModel: scoped(tenantID),
			Title:       "Misdirected email with customer list",
			Severity:    models.SeverityMedium,
			Status:      models.PrivacyIncidentStatusOpen,
			OccurredAt:  &lastMonth,
			DPONotified: true,
		},
		&models.ProcessingActivity{
			TenantModel:     scoped(tenantID),
			LegalBasisID:    &legalBasis.ID,
			Name:            "Customer billing",
			Purpose:         "invoice and payment processing",
			RetentionPeriod: "10 years",
		},
		&models.ComplianceRecord{
			TenantModel: scoped(tenantID),
			Framework:   "LGPD",
			ControlID:   "Art-46",
			Description: "Security measures for personal data",
			Status:      models.ComplianceStatusPartiallyCompliant,
			Responsible: "CISO",
		},
		&models.SecurityIncident{
			TenantModel:  scoped(tenantID),
			Title:        "Phishing campaign against finance team",
			IncidentType: models.IncidentTypePhishing,
			Severity:     models.SeverityHigh,
			Status:       models.IncidentStatusInvestigating,
			DetectedAt:   &lastMonth,
			ReportedBy:   "SOC",
		},
		&report,
		&models.WorkingPaperTemplate{
			TenantModel: scoped(tenantID),
			Name:        "Access control checklist",
			Description: "Standard tests for access management audits",
			Checklist:   datatypes.JSON([]byte(`["Review admin accounts","Check joiner/leaver process","Sample password policy"]`)),
		},
		&models.WorkingPaper{
			TenantModel:   scoped(tenantID),
			AuditReportID: report.ID,
			Title:         "Access review evidence",
			Status:        models.WorkingPaperStatusDraft,
		},
		&models.ActionPlanCategory{
			TenantModel: scoped(tenantID),
			Name:        "Technical measures",
			Description: "Plans changing systems or infrastructure",
		},
		&plan,
		&models.ActionPlanActivity{
			TenantModel:  scoped(tenantID),
			ActionPlanID: plan.ID,
			Title:        "Enable encryption on primary database",
			Responsible:  "Platform team",
			Status:       models.ActivityStatusInProgress,
			Deadline:     &in30,
		},
		&domain,
		&control,
		&assessment,
		&models.AssessmentQuestion{
			TenantModel: scoped(tenantID),
			ControlID:   &control.ID,
			Text:        "How mature is the privacy policy process?",
			Kind:        models.AnswerKindScale,
			Weight:      1,
		},
		&vendor,
		&models.VendorRiskAction{
			TenantModel: scoped(tenantID),
			VendorID:    vendor.ID,
			Title:       "Request SOC 2 report",
			ActionType:  models.RiskActionTypePreventive,
			DueDate:     &in30,
			Responsible: "Vendor management",
		},
		&models.CMDBAsset{
			TenantModel:        scoped(tenantID),
			Name:               "db-prod-01",
			AssetType:          models.CMDBAssetTypeServer,
			Status:             models.CMDBAssetStatusActive,
			IPAddress:          "10.0.12.4",
			OperatingSystem:    "Debian 12",
			OwningTeam:         "Platform",
			VulnerabilityCount: 3,
		},
		&initiative,
		&models.ScheduleActivity{
			TenantModel:  scoped(tenantID),
			InitiativeID: initiative.ID,
			Title:        "Quarterly privacy training",
			PeriodStart:  &now,
			PeriodEnd:    &in30,
			Status:       models.ActivityStatusPending,
		},
	}
}
