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

import "fmt"

// ShapeError reports a cloud parameter array whose dimensions do not
// match the model grid and band counts.
type ShapeError struct {
	Got  []int
	Want []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("radconv: cloud parameter has shape %v, want %v", e.Got, e.Want)
}

// InputTypeError reports a cloud parameter input of an unsupported
// kind.
type InputTypeError struct {
	Value interface{}
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("radconv: cloud parameter must be a number, a []float64, or a tagged field; got %T", e.Value)
}

// IncompatibleGridError reports an attempt to combine two clouds that
// are not defined on the same altitude grid.
type IncompatibleGridError struct {
	Len1, Len2 int
}

func (e *IncompatibleGridError) Error() string {
	return fmt.Sprintf("radconv: incompatible altitude grids (lengths %d and %d)", e.Len1, e.Len2)
}

// IncompatibleCloudsError reports an attempt to combine two cloud
// variants for which no combination rule is defined.
type IncompatibleCloudsError struct {
	Kind1, Kind2 string
}

func (e *IncompatibleCloudsError) Error() string {
	return fmt.Sprintf("radconv: no combination rule for clouds of kind %s and %s", e.Kind1, e.Kind2)
}
