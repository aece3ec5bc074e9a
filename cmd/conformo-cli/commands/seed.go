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

	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
	"github.com/conformo/conformo/internal/core/seed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSeedCommand provisions a demo tenant with sample rows. Credentials come
// from flags or the SEED_* environment, never from the binary.
func NewSeedCommand() *cobra.Command {
	seedCmd := cobra.Command{
		Use:   "seed",
		Short: "Provision a demo tenant with sample data",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			core.LoadConfig() // nolint
			db, err := core.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			rbacProvider, err := accesscontrol.NewCasbinRBACProvider(db)
			if err != nil {
				slog.Error("could not build rbac provider", "err", err)
				return
			}

			summary, err := seed.NewService(db, rbacProvider).Seed(seed.Options{
				TenantName:    viper.GetString("seed.tenant-name"),
				AdminEmail:    viper.GetString("seed.admin-email"),
				AdminPassword: viper.GetString("seed.admin-password"),
				AdminFullName: viper.GetString("seed.admin-name"),
			})
			if err != nil {
				slog.Error("seeding failed", "err", err)
				return
			}

			for _, rowErr := range summary.Errors {
				slog.Warn("row skipped", "err", rowErr)
			}
			slog.Info("seeding finished", "tenant", summary.TenantSlug, "created", summary.Created, "failed", summary.Failed)
		},
	}

	seedCmd.Flags().String("tenant-name", "Acme Demo", "name of the demo tenant")
	seedCmd.Flags().String("admin-email", "", "email of the admin profile (required)")
	seedCmd.Flags().String("admin-password", "", "password of the admin profile (required)")
	seedCmd.Flags().String("admin-name", "", "full name of the admin profile")

	viper.BindPFlag("seed.tenant-name", seedCmd.Flags().Lookup("tenant-name")) // nolint: errcheck
	viper.BindPFlag("seed.admin-email", seedCmd.Flags().Lookup("admin-email")) // nolint: errcheck
	viper.BindPFlag("seed.admin-password", seedCmd.Flags().Lookup("admin-password")) // nolint: errcheck
	viper.BindPFlag("seed.admin-name", seedCmd.Flags().Lookup("admin-name")) // nolint: errcheck
	viper.BindEnv("seed.admin-email", "SEED_ADMIN_EMAIL")       // nolint: errcheck
	viper.BindEnv("seed.admin-password", "SEED_ADMIN_PASSWORD") // nolint: errcheck

	return &seedCmd
}
