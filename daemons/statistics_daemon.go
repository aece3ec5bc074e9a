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

// Package daemons hosts the background loops of the api process.
package daemons

import (
	"log/slog"
	"os"
	"time"

	"github.com/conformo/conformo/internal/database/models"
	"github.com/conformo/conformo/internal/monitoring"
	"github.com/google/uuid"
)

type snapshotService interface {
	Snapshot(tenantID uuid.UUID) error
}

type tenantLister interface {
	All() ([]models.Tenant, error)
}

// DaemonRunner encapsulates daemon dependencies and lifecycle.
type DaemonRunner struct {
	statisticsService snapshotService
	tenantRepository  tenantLister
	interval          time.Duration
}

func NewDaemonRunner(statisticsService snapshotService, tenantRepository tenantLister) *DaemonRunner {
	interval := 6 * time.Hour
	if v := os.Getenv("STAT_SNAPSHOT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}
	return &DaemonRunner{
		statisticsService: statisticsService,
		tenantRepository:  tenantRepository,
		interval:          interval,
	}
}

// Start launches the snapshot loop. It never returns; run it in a goroutine.
func (runner *DaemonRunner) Start() {
	slog.Info("starting statistics snapshot daemon", "interval", runner.interval)
	for {
		runner.SnapshotAllTenants()
		time.Sleep(runner.interval)
	}
}

// SnapshotAllTenants captures the dashboard counters of every tenant. A
// failing tenant is logged and skipped, the loop never aborts the batch.
func (runner *DaemonRunner) SnapshotAllTenants() {
	start := time.Now()
	defer func() {
		monitoring.StatSnapshotDuration.Observe(time.Since(start).Seconds())
		monitoring.StatSnapshotRunsTotal.Inc()
	}()

	tenants, err := runner.tenantRepository.All()
	if err != nil {
		slog.Error("could not list tenants for stat snapshot", "err", err)
		return
	}

	for _, tenant := range tenants {
		if err := runner.statisticsService.Snapshot(tenant.ID); err != nil {
			slog.Error("could not snapshot tenant stats", "err", err, "tenant", tenant.Slug)
			continue
		}
		slog.Debug("captured stat snapshot", "tenant", tenant.Slug)
	}
}
