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

package api

import (
	"go.uber.org/fx"

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/actionplan"
	"github.com/conformo/conformo/internal/core/aiprovider"
	"github.com/conformo/conformo/internal/core/assessment"
	"github.com/conformo/conformo/internal/core/audit"
	"github.com/conformo/conformo/internal/core/cmdb"
	"github.com/conformo/conformo/internal/core/compliance"
	"github.com/conformo/conformo/internal/core/incident"
	"github.com/conformo/conformo/internal/core/pat"
	"github.com/conformo/conformo/internal/core/privacy"
	"github.com/conformo/conformo/internal/core/profile"
	"github.com/conformo/conformo/internal/core/schedule"
	"github.com/conformo/conformo/internal/core/settings"
	"github.com/conformo/conformo/internal/core/statistics"
	"github.com/conformo/conformo/internal/core/tenant"
	"github.com/conformo/conformo/internal/core/vendor"
	"github.com/conformo/conformo/internal/database/repositories"
)

// ServiceModule provides the domain services controllers and daemons share.
var ServiceModule = fx.Options(
	fx.Provide(func(statsRepository *repositories.StatisticsRepository, snapshotRepository *repositories.SnapshotRepository) *statistics.Service {
		return statistics.NewService(statsRepository, snapshotRepository)
	}),
	fx.Provide(func(statsRepository *repositories.StatisticsRepository) *privacy.MetricsService {
		return privacy.NewMetricsService(statsRepository)
	}),
	fx.Provide(func(statsRepository *repositories.StatisticsRepository) *incident.MetricsService {
		return incident.NewMetricsService(statsRepository)
	}),
)

// ControllerModule provides every HTTP controller. Constructors that accept
// their repositories as interfaces get a small closure to pick the concrete
// implementation out of the graph.
var ControllerModule = fx.Options(
	fx.Provide(func(repository *repositories.TenantRepository, profileRepository *repositories.ProfileRepository, rbacProvider accesscontrol.RBACProvider) *tenant.HTTPController {
		return tenant.NewHTTPController(repository, profileRepository, rbacProvider)
	}),
	fx.Provide(func(profileRepository *repositories.ProfileRepository, tenantRepository *repositories.TenantRepository, patRepository *repositories.PATRepository, rbacProvider accesscontrol.RBACProvider) *profile.HTTPController {
		return profile.NewHTTPController(profileRepository, tenantRepository, patRepository, rbacProvider)
	}),
	fx.Provide(func(repository *repositories.PATRepository) *pat.HTTPController {
		return pat.NewHTTPController(repository)
	}),
	fx.Provide(func(settingsRepository *repositories.SecuritySettingsRepository) *settings.HTTPController {
		return settings.NewHTTPController(settingsRepository)
	}),
	fx.Provide(func(db core.DB, statsRepository *repositories.StatisticsRepository) *compliance.HTTPController {
		return compliance.NewHTTPController(db, statsRepository)
	}),
	fx.Provide(func(db core.DB, statsRepository *repositories.StatisticsRepository) *cmdb.HTTPController {
		return cmdb.NewHTTPController(db, statsRepository)
	}),
	fx.Provide(privacy.NewHTTPController),
	fx.Provide(incident.NewHTTPController),
	fx.Provide(audit.NewHTTPController),
	fx.Provide(actionplan.NewHTTPController),
	fx.Provide(assessment.NewHTTPController),
	fx.Provide(vendor.NewHTTPController),
	fx.Provide(aiprovider.NewHTTPController),
	fx.Provide(schedule.NewHTTPController),
	fx.Provide(statistics.NewHTTPController),
)
