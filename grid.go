/*
Copyright © 2019 the RadConv authors.
This file is part of RadConv.

RadConv is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

RadConv is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with RadConv.  If not, see <http://www.gnu.org/licenses/>.
*/

package radconv

import "gonum.org/v1/gonum/floats"

// LayerThickness returns the thickness [m] of each model layer given
// the layer midpoint altitudes z [m]. The lowest layer extends down to
// the surface, so its thickness is the altitude of the first midpoint.
func LayerThickness(z []float64) []float64 {
	dz := make([]float64, len(z))
	dz[0] = z[0]
	for k := 1; k < len(z); k++ {
		dz[k] = z[k] - z[k-1]
	}
	return dz
}

// gridTol is the tolerance for deciding that two altitude grids are
// the same grid.
const gridTol = 1.e-8

// sameGrid reports whether z1 and z2 are equal to within floating
// point tolerance.
func sameGrid(z1, z2 []float64) bool {
	if len(z1) != len(z2) {
		return false
	}
	for i, v := range z1 {
		if !floats.EqualWithinAbsOrRel(v, z2[i], gridTol, gridTol) {
			return false
		}
	}
	return true
}

// checkGrids returns an IncompatibleGridError if z1 and z2 are not the
// same altitude grid.
func checkGrids(z1, z2 []float64) error {
	if !sameGrid(z1, z2) {
		return &IncompatibleGridError{Len1: len(z1), Len2: len(z2)}
	}
	return nil
}
