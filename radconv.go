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

// Package radconv implements cloud and surface boundary-condition
// components for a single-column radiative-convective equilibrium
// model. Clouds are represented by vertical profiles of microphysical
// and optical properties that follow the host atmosphere's altitude
// grid from step to step; several cloud parameterizations are provided
// along with an ensemble type that superposes them into one effective
// cloud for the radiation scheme.
package radconv

import "github.com/sirupsen/logrus"

// Spectral resolution of the RRTMG radiation scheme the cloud fields
// are prepared for.
const (
	NumShortwaveBands = 14
	NumLongwaveBands  = 16
)

// logger logs diagnostic information during model integration.
// Hosts may replace it to redirect output.
var logger = logrus.StandardLogger()

// SetLogger replaces the logger used by this package.
func SetLogger(l *logrus.Logger) { logger = l }

// Atmosphere provides the host atmosphere state that clouds read
// during their per-step updates.
type Atmosphere interface {
	// Altitude returns the current layer midpoint altitudes [m].
	// The returned slice must be monotonic and keep the same length
	// for the lifetime of the model.
	Altitude() []float64
}

// Convection provides the convective-top diagnostic used by clouds
// that track the convective top.
type Convection interface {
	// ConvectiveTopHeight returns the diagnosed convective top
	// altitude [m], or NaN if no convective top is available.
	ConvectiveTopHeight() float64
}

// ColumnAtmosphere is a minimal Atmosphere implementation holding a
// fixed altitude grid.
type ColumnAtmosphere struct {
	Z []float64 // layer midpoint altitudes [m]
}

// Altitude returns the layer midpoint altitudes.
func (a *ColumnAtmosphere) Altitude() []float64 { return a.Z }

// ColumnConvection is a minimal Convection implementation holding a
// diagnosed convective top.
type ColumnConvection struct {
	TopHeight float64 // convective top altitude [m]; NaN if unavailable
}

// ConvectiveTopHeight returns the diagnosed convective top altitude.
func (c *ColumnConvection) ConvectiveTopHeight() float64 { return c.TopHeight }

// handle handles errors that indicate programming mistakes.
func handle(err error) {
	if err != nil {
		panic(err)
	}
}
