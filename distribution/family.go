// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package distribution

import "strings"

// Family identifies one member of the closed set of supported
// distribution families. Its string form is the display name.
type Family string

// Supported distribution families.
const (
	UniformID   Family = "Uniform"
	GaussianID  Family = "Gaussian"
	GammaID     Family = "Gamma"
	LogNormalID Family = "LogNormal"
)

// families lists the supported families in display order.
var families = []Family{UniformID, GaussianID, GammaID, LogNormalID}

// Families returns all supported families in display order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// ParseFamily looks up a family by name, ignoring case.
func ParseFamily(name string) (Family, bool) {
	name = strings.TrimSpace(name)
	for _, f := range families {
		if strings.EqualFold(string(f), name) {
			return f, true
		}
	}
	return "", false
}

func (f Family) String() string {
	return string(f)
}
