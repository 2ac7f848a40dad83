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

import "math"

// stepFraction returns a cloud fraction profile that equals inCloud
// for levels strictly between cloudTop-depth and cloudTop, and zero
// elsewhere.
func stepFraction(z []float64, cloudTop, depth, inCloud float64) []float64 {
	fraction := make([]float64, len(z))
	for k, zz := range z {
		if zz < cloudTop && zz > cloudTop-depth {
			fraction[k] = inCloud
		}
	}
	return fraction
}

// HighCloud is an ice cloud of fixed vertical extent attached to the
// convective top: each step its fraction profile is shifted so the
// cloud follows the diagnosed convective-top altitude, and its ice
// mass is recomputed from the shifted fraction.
type HighCloud struct {
	props      *CloudProperties
	iceDensity float64 // in-cloud ice density [g m^-3]
	fFraction  *interpolator
}

// NewHighCloud creates an ice cloud spanning the levels between
// cloudTop-depth and cloudTop [m]. cloudTop should be the convective
// top altitude. cloudFractionInCloud is the cloud area fraction inside
// the cloud, iceDensity is the in-cloud ice density [g m^-3], and
// iceParticleSize is the cloud ice particle size [micrometers].
func NewHighCloud(z []float64, cloudTop, depth, cloudFractionInCloud, iceDensity, iceParticleSize float64) *HighCloud {
	fraction := stepFraction(z, cloudTop, depth, cloudFractionInCloud)
	dz := LayerThickness(z)

	props := defaultProperties(z)
	props.CloudFraction = &Profile{Values: fraction, Units: "dimensionless"}
	props.MassIce = CloudMass(fraction, dz, iceDensity)
	props.IceParticleSize = constantProfile(iceParticleSize, "micrometers", len(z))

	c := &HighCloud{props: props, iceDensity: iceDensity}
	c.fFraction = profileInterpolator(props.CloudFraction, z, cloudTop)
	return c
}

// Properties returns the cloud fields for the radiation scheme.
func (c *HighCloud) Properties() *CloudProperties { return c.props }

// UpdateCloudProfile keeps the cloud attached to the convective top:
// the fraction profile is resampled onto the atmosphere's current grid
// anchored at the diagnosed convective-top altitude (keeping the
// previous anchor if none is available), and the ice mass is
// recomputed from the updated fraction and layer thicknesses.
func (c *HighCloud) UpdateCloudProfile(atmos Atmosphere, conv Convection) error {
	z := atmos.Altitude()
	dz := LayerThickness(z)
	top := math.NaN()
	if conv != nil {
		top = conv.ConvectiveTopHeight()
	}
	c.props.Z = append([]float64(nil), z...)
	c.props.CloudFraction = c.fFraction.shiftProfile(z, top, "dimensionless")
	c.props.MassIce = CloudMass(c.props.CloudFraction.Values, dz, c.iceDensity)
	return nil
}

// Combine superposes the cloud with another physical-family cloud.
func (c *HighCloud) Combine(other Cloud) (Cloud, error) { return physicalCombine(c, other) }

// LowCloud is a liquid water cloud of fixed vertical extent in the
// planetary boundary layer. Unlike HighCloud it never tracks a moving
// feature: its anchor is fixed at altitude zero, so each step it is
// simply resampled onto the current grid.
type LowCloud struct {
	props        *CloudProperties
	waterDensity float64 // in-cloud liquid water density [g m^-3]
	fFraction    *interpolator
}

// NewLowCloud creates a liquid water cloud spanning the levels between
// cloudTop-depth and cloudTop [m]. cloudFractionInCloud is the cloud
// area fraction inside the cloud, waterDensity is the in-cloud liquid
// water density [g m^-3], and dropletRadius is the cloud water droplet
// radius [micrometers].
func NewLowCloud(z []float64, cloudTop, depth, cloudFractionInCloud, waterDensity, dropletRadius float64) *LowCloud {
	fraction := stepFraction(z, cloudTop, depth, cloudFractionInCloud)
	dz := LayerThickness(z)

	props := defaultProperties(z)
	props.CloudFraction = &Profile{Values: fraction, Units: "dimensionless"}
	props.MassWater = CloudMass(fraction, dz, waterDensity)
	props.DropletRadius = constantProfile(dropletRadius, "micrometers", len(z))

	c := &LowCloud{props: props, waterDensity: waterDensity}
	c.fFraction = profileInterpolator(props.CloudFraction, z, 0)
	return c
}

// Properties returns the cloud fields for the radiation scheme.
func (c *LowCloud) Properties() *CloudProperties { return c.props }

// UpdateCloudProfile keeps the cloud fixed with height: the fraction
// profile is resampled onto the atmosphere's current grid at the fixed
// anchor, and the liquid water mass is recomputed from the updated
// fraction and layer thicknesses.
func (c *LowCloud) UpdateCloudProfile(atmos Atmosphere, _ Convection) error {
	z := atmos.Altitude()
	dz := LayerThickness(z)
	c.props.Z = append([]float64(nil), z...)
	c.props.CloudFraction = c.fFraction.shiftProfile(z, 0, "dimensionless")
	c.props.MassWater = CloudMass(c.props.CloudFraction.Values, dz, c.waterDensity)
	return nil
}

// Combine superposes the cloud with another physical-family cloud.
func (c *LowCloud) Combine(other Cloud) (Cloud, error) { return physicalCombine(c, other) }
