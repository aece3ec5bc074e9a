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

package main

import (
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/conformo/conformo/cmd/conformo/api"
	"github.com/conformo/conformo/daemons"
	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/database"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/conformo/conformo/router"

	_ "github.com/lib/pq"
)

func main() {
	core.LoadConfig() // nolint: errcheck
	core.InitLogger()

	db, err := core.DatabaseFactory()
	if err != nil {
		slog.Error("failed to setup database connection", "err", err)
		os.Exit(1)
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			os.Exit(1)
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(api.NewServer),
		repositories.Module,
		accesscontrol.AccessControlModule,
		api.ServiceModule,
		api.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// invoke all routers so they register their routes
		fx.Invoke(func(APIV1Router router.APIV1Router) {}),
		fx.Invoke(func(SessionRouter router.SessionRouter) {}),
		fx.Invoke(func(PatRouter router.PatRouter) {}),
		fx.Invoke(func(TenantRouter router.TenantRouter) {}),
		fx.Invoke(func(PrivacyRouter router.PrivacyRouter) {}),
		fx.Invoke(func(ComplianceRouter router.ComplianceRouter) {}),
		fx.Invoke(func(IncidentRouter router.IncidentRouter) {}),
		fx.Invoke(func(AuditRouter router.AuditRouter) {}),
		fx.Invoke(func(ActionPlanRouter router.ActionPlanRouter) {}),
		fx.Invoke(func(AssessmentRouter router.AssessmentRouter) {}),
		fx.Invoke(func(VendorRouter router.VendorRouter) {}),
		fx.Invoke(func(CMDBRouter router.CMDBRouter) {}),
		fx.Invoke(func(AIProviderRouter router.AIProviderRouter) {}),
		fx.Invoke(func(SettingsRouter router.SettingsRouter) {}),
		fx.Invoke(func(ScheduleRouter router.ScheduleRouter) {}),
		fx.Invoke(func(runner *daemons.DaemonRunner) {}),
		fx.Invoke(func(server api.Server) {}),
	).Run()
}
