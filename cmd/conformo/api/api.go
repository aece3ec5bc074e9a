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
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/conformo/conformo/internal/echohttp"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Server wraps the echo instance so routers can hang their groups off it.
type Server struct {
	Echo *echo.Echo
}

// NewServer builds the HTTP server and ties its lifetime to the fx app.
// Routes are registered by the router constructors before OnStart fires.
func NewServer(lc fx.Lifecycle) Server {
	server := echohttp.Server()
	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			routes := server.Routes()
			sort.Slice(routes, func(i, j int) bool {
				return routes[i].Path < routes[j].Path
			})
			for _, route := range routes {
				if route.Method != "echo_route_not_found" {
					slog.Info(route.Path, "method", route.Method)
				}
			}
			go func() {
				if err := server.Start(":8080"); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("failed to start server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})

	return Server{Echo: server}
}
