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

package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewPatRouter),
	fx.Provide(NewTenantRouter),
	fx.Provide(NewPrivacyRouter),
	fx.Provide(NewComplianceRouter),
	fx.Provide(NewIncidentRouter),
	fx.Provide(NewAuditRouter),
	fx.Provide(NewActionPlanRouter),
	fx.Provide(NewAssessmentRouter),
	fx.Provide(NewVendorRouter),
	fx.Provide(NewCMDBRouter),
	fx.Provide(NewAIProviderRouter),
	fx.Provide(NewSettingsRouter),
	fx.Provide(NewScheduleRouter),
)
