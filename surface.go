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
	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
)

// Default surface parameters. The default albedo is a decent choice
// for clear-sky simulation in the tropics.
const (
	DefaultAlbedo             = 0.2
	DefaultSurfaceTemperature = 288.  // K
	DefaultHeatCapacity       = 1000. // J kg^-1 K^-1
	DefaultSoilDensity        = 1000. // kg m^-3
	DefaultSlabThickness      = 100.  // m
)

const secondsPerDay = 24 * 60 * 60

// wattsPerSquareMeter is the dimension signature of a radiative flux
// (W m^-2 = kg s^-3).
var wattsPerSquareMeter = unit.Dimensions{
	unit.MassDim: 1,
	unit.TimeDim: -3,
}

// Surface is a surface boundary-condition model. It is adjusted once
// per simulation step from the radiative fluxes at the surface.
type Surface interface {
	// Adjust updates the surface state according to the given
	// radiative fluxes [W m^-2] over a timestep given in days.
	Adjust(swDown, swUp, lwDown, lwUp *unit.Unit, timestep float64)

	// Temperature returns the surface temperature [K].
	Temperature() float64
	// Height returns the surface height [m].
	Height() float64
	// Albedo returns the surface albedo.
	Albedo() float64

	// Pressure returns the surface pressure [Pa]. It is zero until
	// the host initializes it before the first iteration so that it
	// is consistent with the atmosphere used.
	Pressure() float64
	// SetPressure sets the surface pressure [Pa].
	SetPressure(p float64)
}

// surfaceState holds the state common to all surface models.
type surfaceState struct {
	albedo      float64
	height      float64
	temperature float64
	pressure    float64
}

func (s *surfaceState) Temperature() float64 { return s.temperature }
func (s *surfaceState) Height() float64 { return s.height }
func (s *surfaceState) Albedo() float64 { return s.albedo }
func (s *surfaceState) Pressure() float64 { return s.pressure }
func (s *surfaceState) SetPressure(p float64) { s.pressure = p }

// netFlux returns the net downward radiative flux [W m^-2] implied by
// the four surface flux components, checking their dimensions.
func netFlux(swDown, swUp, lwDown, lwUp *unit.Unit) float64 {
	net := unit.Add(unit.Sub(swDown, swUp), unit.Sub(lwDown, lwUp))
	handle(net.Check(wattsPerSquareMeter))
	return net.Value()
}

// SurfaceFixedTemperature is a surface model with fixed temperature.
type SurfaceFixedTemperature struct {
	surfaceState
}

// NewSurfaceFixedTemperature creates a surface whose temperature [K]
// never changes.
func NewSurfaceFixedTemperature(albedo, temperature, height float64) *SurfaceFixedTemperature {
	return &SurfaceFixedTemperature{surfaceState{
		albedo:      albedo,
		height:      height,
		temperature: temperature,
	}}
}

// Adjust does not adjust anything for fixed temperature surfaces.
func (s *SurfaceFixedTemperature) Adjust(_, _, _, _ *unit.Unit, _ float64) {}

// SurfaceHeatCapacity is a surface model with adjustable temperature:
// a slab of material with heat capacity cp [J kg^-1 K^-1], density rho
// [kg m^-3] and thickness dz [m] warmed and cooled by the net
// radiative flux at the surface.
type SurfaceHeatCapacity struct {
	surfaceState
	cp, rho, dz float64
}

// NewSurfaceHeatCapacity creates a heat-capacity surface model.
func NewSurfaceHeatCapacity(albedo, temperature, height, cp, rho, dz float64) *SurfaceHeatCapacity {
	return &SurfaceHeatCapacity{
		surfaceState: surfaceState{
			albedo:      albedo,
			height:      height,
			temperature: temperature,
		},
		cp:  cp,
		rho: rho,
		dz:  dz,
	}
}

// Adjust increases the surface temperature according to the net
// radiative flux at the surface over the timestep [days].
func (s *SurfaceHeatCapacity) Adjust(swDown, swUp, lwDown, lwUp *unit.Unit, timestep float64) {
	net := netFlux(swDown, swUp, lwDown, lwUp)
	s.temperature += timestep * secondsPerDay * net / (s.cp * s.rho * s.dz)
	logger.WithFields(logrus.Fields{
		"netflux":     net,
		"temperature": s.temperature,
	}).Debug("surface energy balance")
}

// SurfaceHeatSink is a heat-capacity surface model with a constant
// heat sink, as if heat were transported out of the modeled column
// (e.g. out of the tropics).
type SurfaceHeatSink struct {
	SurfaceHeatCapacity
	heatFlux float64 // heat transported out of the column [W m^-2]
}

// NewSurfaceHeatSink creates a heat-capacity surface model from which
// heatFlux [W m^-2] is constantly removed.
func NewSurfaceHeatSink(albedo, temperature, height, cp, rho, dz, heatFlux float64) *SurfaceHeatSink {
	return &SurfaceHeatSink{
		SurfaceHeatCapacity: *NewSurfaceHeatCapacity(albedo, temperature, height, cp, rho, dz),
		heatFlux:            heatFlux,
	}
}

// Adjust increases the surface temperature according to the net
// radiative flux at the surface minus the heat sink, over the timestep
// [days].
func (s *SurfaceHeatSink) Adjust(swDown, swUp, lwDown, lwUp *unit.Unit, timestep float64) {
	net := netFlux(swDown, swUp, lwDown, lwUp) - s.heatFlux
	s.temperature += timestep * secondsPerDay * net / (s.cp * s.rho * s.dz)
	logger.WithFields(logrus.Fields{
		"netflux":     net,
		"temperature": s.temperature,
	}).Debug("surface energy balance")
}

// SurfaceFromAtmosphere derives the surface temperature [K] and height
// [m] implied by the lowest two atmosphere layers: the surface height
// is extrapolated below the lowest layer midpoint, and the surface
// temperature follows the given lapse rate [K m^-1] from the
// lowest-layer temperature. This prevents temperature jumps after the
// first iteration, when the convective adjustment is applied.
func SurfaceFromAtmosphere(z, temperature []float64, lapse float64) (t, height float64) {
	zSfc := z[0] + 0.5*(z[0]-z[1])
	tSfc := temperature[0] + lapse*(z[0]-zSfc)
	return tSfc, zSfc
}
