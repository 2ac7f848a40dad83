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

import (
	"math"
	"sort"

	"github.com/ctessum/sparse"
)

// interpolator maps signed distance from a normalization altitude to
// cloud property values, one sample column per spectral band (a single
// column for per-level properties). It is built once from a property's
// initial shape and lets the property be resampled onto new altitude
// grids while preserving its vertical shape and thickness, optionally
// re-centered at a new normalization altitude.
type interpolator struct {
	x    []float64   // z - norm at construction, ascending
	cols [][]float64 // sampled values, one slice per column
	norm float64     // normalization altitude currently in use [m]
}

// newInterpolator builds an interpolator for the given value columns
// sampled at altitudes z and anchored at the normalization altitude
// norm.
func newInterpolator(z []float64, norm float64, cols [][]float64) *interpolator {
	x := make([]float64, len(z))
	for i, zz := range z {
		x[i] = zz - norm
	}
	saved := make([][]float64, len(cols))
	for j, col := range cols {
		saved[j] = append([]float64(nil), col...)
	}
	if len(x) > 1 && x[len(x)-1] < x[0] {
		// Descending grid; store samples in ascending order.
		reverse(x)
		for _, col := range saved {
			reverse(col)
		}
	}
	return &interpolator{x: x, cols: saved, norm: norm}
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// interpValue evaluates the piecewise-linear function through (x, y)
// at xq, extrapolating linearly beyond both ends of the sampled range.
func interpValue(x, y []float64, xq float64) float64 {
	n := len(x)
	if n == 1 {
		return y[0]
	}
	i := sort.SearchFloat64s(x, xq) - 1
	if i < 0 {
		i = 0
	} else if i > n-2 {
		i = n - 2
	}
	t := (xq - x[i]) / (x[i+1] - x[i])
	return y[i] + t*(y[i+1]-y[i])
}

// resolveNorm returns the normalization altitude to use for a shift.
// A NaN normNew means no new anchor is available, in which case the
// last-used anchor is kept; otherwise normNew becomes the anchor.
func (f *interpolator) resolveNorm(normNew float64) float64 {
	if math.IsNaN(normNew) {
		return f.norm
	}
	f.norm = normNew
	return normNew
}

// shiftProfile resamples the stored property onto the altitude grid z,
// re-centered at normNew (NaN keeps the current anchor).
func (f *interpolator) shiftProfile(z []float64, normNew float64, units string) *Profile {
	norm := f.resolveNorm(normNew)
	vals := make([]float64, len(z))
	for k, zz := range z {
		vals[k] = interpValue(f.x, f.cols[0], zz-norm)
	}
	return &Profile{Values: vals, Units: units}
}

// shiftBandProfile resamples the stored per-band property onto the
// altitude grid z, re-centered at normNew (NaN keeps the current
// anchor).
func (f *interpolator) shiftBandProfile(z []float64, normNew float64, units string) *BandProfile {
	norm := f.resolveNorm(normNew)
	d := sparse.ZerosDense(len(z), len(f.cols))
	for j, col := range f.cols {
		for k, zz := range z {
			d.Set(interpValue(f.x, col, zz-norm), k, j)
		}
	}
	return &BandProfile{Data: d, Units: units}
}

// profileInterpolator builds an interpolator for a per-level property.
func profileInterpolator(p *Profile, z []float64, norm float64) *interpolator {
	return newInterpolator(z, norm, [][]float64{p.Values})
}

// bandInterpolator builds an interpolator for a per-band property,
// with one column per spectral band.
func bandInterpolator(p *BandProfile, z []float64, norm float64) *interpolator {
	nb := p.Data.Shape[1]
	cols := make([][]float64, nb)
	for j := 0; j < nb; j++ {
		col := make([]float64, len(z))
		for k := range z {
			col[k] = p.Data.Get(k, j)
		}
		cols[j] = col
	}
	return newInterpolator(z, norm, cols)
}

// perMeter converts a per-band optical thickness into optical
// thickness per meter of layer depth. The per-meter quantity is what
// is conserved when the model grid changes.
func perMeter(tau *BandProfile, dz []float64) *BandProfile {
	nb := tau.Data.Shape[1]
	d := sparse.ZerosDense(len(dz), nb)
	for k, depth := range dz {
		for j := 0; j < nb; j++ {
			d.Set(tau.Data.Get(k, j)/depth, k, j)
		}
	}
	return &BandProfile{Data: d, Units: "m^-1"}
}

// scaleOpticalThickness recovers a per-band optical thickness from its
// per-meter form and the current layer thicknesses. Because the
// per-meter quantity is fixed, the total column optical depth is
// unchanged by re-gridding; only its distribution over layers changes.
func scaleOpticalThickness(tauPerMeter *BandProfile, dz []float64) *BandProfile {
	nb := tauPerMeter.Data.Shape[1]
	d := sparse.ZerosDense(len(dz), nb)
	for k, depth := range dz {
		for j := 0; j < nb; j++ {
			d.Set(depth*tauPerMeter.Data.Get(k, j), k, j)
		}
	}
	return &BandProfile{Data: d, Units: "dimensionless"}
}

// CloudMass returns the cloud condensate mass [kg m^-2] on each model
// level given the cloud area fraction, the layer thicknesses dz [m],
// and the in-cloud condensate density [g m^-3].
func CloudMass(fraction, dz []float64, density float64) *Profile {
	mass := make([]float64, len(fraction))
	for k, f := range fraction {
		mass[k] = f * density * 1.e-3 * dz[k]
	}
	return &Profile{Values: mass, Units: "kg m^-2"}
}
