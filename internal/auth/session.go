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

package auth

type Session struct {
	userID string
	scopes []string
}

// NoSession marks an unauthenticated request. It is stored in the context so
// downstream middleware can decide whether the route is public.
var NoSession = Session{}

func NewSession(userID string, scopes []string) Session {
	return Session{userID: userID, scopes: scopes}
}

func (s Session) GetUserID() string {
	return s.userID
}

func (s Session) GetScopes() []string {
	return s.scopes
}
