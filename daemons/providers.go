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

package daemons

import (
	"context"

	"go.uber.org/fx"

	"github.com/conformo/conformo/internal/core/statistics"
	"github.com/conformo/conformo/internal/database/repositories"
)

// Module wires the statistics snapshot daemon into the app lifecycle.
var Module = fx.Module("daemons",
	fx.Provide(func(lc fx.Lifecycle, statisticsService *statistics.Service, tenantRepository *repositories.TenantRepository) *DaemonRunner {
		runner := NewDaemonRunner(statisticsService, tenantRepository)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go runner.Start()
				return nil
			},
		})
		return runner
	}),
)
