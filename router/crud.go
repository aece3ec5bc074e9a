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

import (
	"github.com/conformo/conformo/internal/accesscontrol"
	"github.com/conformo/conformo/internal/core"
)

// resourceController is the route surface every plain collection controller
// exposes.
type resourceController interface {
	List(c core.Context) error
	Read(c core.Context) error
	Create(c core.Context) error
	Patch(c core.Context) error
	Delete(c core.Context) error
}

func registerCRUD(g core.Server, path, idParam string, ctl resourceController, obj accesscontrol.Object) {
	g.GET("/"+path+"/", ctl.List, core.AccessControlMiddleware(obj, accesscontrol.ActionRead))
	g.POST("/"+path+"/", ctl.Create, core.AccessControlMiddleware(obj, accesscontrol.ActionCreate))
	g.GET("/"+path+"/:"+idParam+"/", ctl.Read, core.AccessControlMiddleware(obj, accesscontrol.ActionRead))
	g.PATCH("/"+path+"/:"+idParam+"/", ctl.Patch, core.AccessControlMiddleware(obj, accesscontrol.ActionUpdate))
	g.DELETE("/"+path+"/:"+idParam+"/", ctl.Delete, core.AccessControlMiddleware(obj, accesscontrol.ActionDelete))
}
