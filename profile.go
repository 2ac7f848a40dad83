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

import "github.com/ctessum/sparse"

// Profile is a cloud property sampled at every model level, tagged
// with its physical units.
type Profile struct {
	Values []float64
	Units  string
}

// BandProfile is a cloud property sampled at every model level and
// resolved per spectral band, tagged with its physical units. Data has
// shape [numlevels, numbands].
type BandProfile struct {
	Data  *sparse.DenseArray
	Units string
}

// NewProfile converts value into a per-level Profile with the given
// units. value may be a number (broadcast across all levels), a
// []float64 with one entry per model level, or an existing *Profile.
// Arrays of the wrong length fail with a ShapeError; any other input
// kind fails with an InputTypeError.
func NewProfile(value interface{}, units string, numlevels int) (*Profile, error) {
	switch v := value.(type) {
	case *Profile:
		if len(v.Values) != numlevels {
			return nil, &ShapeError{Got: []int{len(v.Values)}, Want: []int{numlevels}}
		}
		return v, nil
	case []float64:
		if len(v) != numlevels {
			return nil, &ShapeError{Got: []int{len(v)}, Want: []int{numlevels}}
		}
		return &Profile{Values: append([]float64(nil), v...), Units: units}, nil
	case float64:
		return constantProfile(v, units, numlevels), nil
	case int:
		return constantProfile(float64(v), units, numlevels), nil
	}
	return nil, &InputTypeError{Value: value}
}

// NewBandProfile converts value into a per-level, per-band BandProfile
// with the given units. A number is broadcast across all levels and
// bands; a []float64 with one entry per model level is broadcast
// across all bands; a *sparse.DenseArray or existing *BandProfile of
// shape [numlevels, numbands] is accepted as is. Shape mismatches fail
// with a ShapeError; any other input kind fails with an
// InputTypeError.
func NewBandProfile(value interface{}, units string, numlevels, numbands int) (*BandProfile, error) {
	switch v := value.(type) {
	case *BandProfile:
		if err := checkBandShape(v.Data, numlevels, numbands); err != nil {
			return nil, err
		}
		return v, nil
	case *sparse.DenseArray:
		if err := checkBandShape(v, numlevels, numbands); err != nil {
			return nil, err
		}
		return &BandProfile{Data: v, Units: units}, nil
	case []float64:
		if len(v) != numlevels {
			return nil, &ShapeError{Got: []int{len(v)}, Want: []int{numlevels, numbands}}
		}
		d := sparse.ZerosDense(numlevels, numbands)
		for k, val := range v {
			for j := 0; j < numbands; j++ {
				d.Set(val, k, j)
			}
		}
		return &BandProfile{Data: d, Units: units}, nil
	case float64:
		return constantBandProfile(v, units, numlevels, numbands), nil
	case int:
		return constantBandProfile(float64(v), units, numlevels, numbands), nil
	}
	return nil, &InputTypeError{Value: value}
}

func checkBandShape(d *sparse.DenseArray, numlevels, numbands int) error {
	if len(d.Shape) != 2 || d.Shape[0] != numlevels || d.Shape[1] != numbands {
		return &ShapeError{Got: d.Shape, Want: []int{numlevels, numbands}}
	}
	return nil
}

func constantProfile(v float64, units string, numlevels int) *Profile {
	vals := make([]float64, numlevels)
	for k := range vals {
		vals[k] = v
	}
	return &Profile{Values: vals, Units: units}
}

func constantBandProfile(v float64, units string, numlevels, numbands int) *BandProfile {
	d := sparse.ZerosDense(numlevels, numbands)
	for i := range d.Elements {
		d.Elements[i] = v
	}
	return &BandProfile{Data: d, Units: units}
}

// Copy returns a deep copy of the profile.
func (p *Profile) Copy() *Profile {
	return &Profile{Values: append([]float64(nil), p.Values...), Units: p.Units}
}

// Copy returns a deep copy of the band profile.
func (p *BandProfile) Copy() *BandProfile {
	return &BandProfile{Data: p.Data.Copy(), Units: p.Units}
}
