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

package commands

import (
	"log/slog"

	"github.com/conformo/conformo/daemons"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/statistics"
	"github.com/conformo/conformo/internal/database/repositories"
	"github.com/spf13/cobra"
)

func NewStatsCommand() *cobra.Command {
	stats := cobra.Command{
		Use:   "stats",
		Short: "Statistics snapshots",
	}

	stats.AddCommand(&cobra.Command{
		Use:   "snapshot",
		Short: "Capture a stat snapshot for every tenant right now",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			core.LoadConfig() // nolint
			db, err := core.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			statisticsService := statistics.NewService(
				repositories.NewStatisticsRepository(db),
				repositories.NewSnapshotRepository(db),
			)
			daemons.NewDaemonRunner(statisticsService, repositories.NewTenantRepository(db)).SnapshotAllTenants()
		},
	})

	return &stats
}
