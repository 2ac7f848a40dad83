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
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Config describes the model setup for the cloud and surface
// boundary-condition components. Zero-valued parameters select the
// defaults listed on the individual fields.
type Config struct {
	Cloud   CloudConfig
	Surface SurfaceConfig
}

// CloudConfig describes which cloud parameterization to use and its
// parameters. Only the parameters relevant to the configured kind are
// read.
type CloudConfig struct {
	// Kind is one of "clearsky", "physical", "directinput", "high"
	// or "low". An empty kind means clear sky.
	Kind string

	// Physical and direct-input cloud parameters.
	CloudFraction      float64
	MassIce            float64 // [kg m^-2]
	MassWater          float64 // [kg m^-2]
	IceParticleSize    float64 // [micrometers]; default 20
	DropletRadius      float64 // [micrometers]; default 10
	LWOpticalThickness float64
	SWOpticalThickness float64

	// High and low cloud geometry.
	CloudTop             float64 // [m]; default 12000 (high), 2000 (low)
	Depth                float64 // [m]; default 500 (high), 1500 (low)
	CloudFractionInCloud float64 // default 1
	IceDensity           float64 // [g m^-3]; default 0.5
	WaterDensity         float64 // [g m^-3]; default 0.5
}

// SurfaceConfig describes which surface model to use and its
// parameters.
type SurfaceConfig struct {
	// Kind is one of "fixed", "heatcapacity" or "heatsink". An
	// empty kind means a fixed-temperature surface.
	Kind string

	Albedo      float64 // default 0.2
	Temperature float64 // [K]; default 288
	Height      float64 // [m]
	// Slab parameters for the heat-capacity models.
	HeatCapacity float64 // cp [J kg^-1 K^-1]; default 1000
	SoilDensity  float64 // rho [kg m^-3]; default 1000
	Thickness    float64 // dz [m]; default 100
	HeatFlux     float64 // heat sink [W m^-2]
}

// LoadConfig reads a TOML model-setup configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	c := new(Config)
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, fmt.Errorf("radconv: parsing configuration: %v", err)
	}
	return c, nil
}

// pick returns v, or def if v is zero.
func pick(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// Cloud constructs the configured cloud on the altitude grid z.
func (c *CloudConfig) Cloud(z []float64) (Cloud, error) {
	switch c.Kind {
	case "clearsky", "":
		return NewClearSky(z), nil
	case "physical":
		cld, err := NewPhysicalCloud(z, c.CloudFraction, c.MassWater, c.MassIce,
			pick(c.IceParticleSize, defaultIceParticleSize),
			pick(c.DropletRadius, defaultDropletRadius))
		if err != nil {
			return nil, err
		}
		return cld, nil
	case "directinput":
		cld, err := NewDirectInputCloud(z, c.CloudFraction,
			c.LWOpticalThickness, c.SWOpticalThickness, nil, nil, nil)
		if err != nil {
			return nil, err
		}
		return cld, nil
	case "high":
		return NewHighCloud(z, pick(c.CloudTop, 12000), pick(c.Depth, 500),
			pick(c.CloudFractionInCloud, 1), pick(c.IceDensity, 0.5),
			pick(c.IceParticleSize, defaultIceParticleSize)), nil
	case "low":
		return NewLowCloud(z, pick(c.CloudTop, 2000), pick(c.Depth, 1500),
			pick(c.CloudFractionInCloud, 1), pick(c.WaterDensity, 0.5),
			pick(c.DropletRadius, defaultDropletRadius)), nil
	}
	return nil, fmt.Errorf("radconv: unknown cloud kind %q", c.Kind)
}

// Surface constructs the configured surface model.
func (c *SurfaceConfig) Surface() (Surface, error) {
	albedo := pick(c.Albedo, DefaultAlbedo)
	temperature := pick(c.Temperature, DefaultSurfaceTemperature)
	cp := pick(c.HeatCapacity, DefaultHeatCapacity)
	rho := pick(c.SoilDensity, DefaultSoilDensity)
	dz := pick(c.Thickness, DefaultSlabThickness)
	switch c.Kind {
	case "fixed", "":
		return NewSurfaceFixedTemperature(albedo, temperature, c.Height), nil
	case "heatcapacity":
		return NewSurfaceHeatCapacity(albedo, temperature, c.Height, cp, rho, dz), nil
	case "heatsink":
		return NewSurfaceHeatSink(albedo, temperature, c.Height, cp, rho, dz, c.HeatFlux), nil
	}
	return nil, fmt.Errorf("radconv: unknown surface kind %q", c.Kind)
}
