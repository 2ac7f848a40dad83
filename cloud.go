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

// Default in-cloud property values, matching what the RRTMG radiation
// scheme expects for unspecified clouds.
const (
	defaultIceParticleSize        = 20   // micrometers
	defaultDropletRadius          = 10   // micrometers
	defaultForwardScattering      = 0    // dimensionless
	defaultAsymmetryParameter     = 0.85 // dimensionless
	defaultSingleScatteringAlbedo = 0.9  // dimensionless
)

// CloudProperties is the full set of cloud fields read by the
// radiation scheme after each update. All per-level fields have one
// entry per element of Z; per-band fields additionally resolve 14
// shortwave or 16 longwave spectral bands.
type CloudProperties struct {
	// Z is the altitude grid snapshot [m] the fields are defined on.
	Z []float64

	CloudFraction   *Profile // cloud area fraction [dimensionless]
	MassIce         *Profile // cloud ice mass [kg m^-2]
	MassWater       *Profile // cloud liquid water mass [kg m^-2]
	IceParticleSize *Profile // [micrometers]
	DropletRadius   *Profile // [micrometers]

	LWOpticalThickness        *BandProfile // longwave, 16 bands
	SWOpticalThickness        *BandProfile // shortwave, 14 bands
	ForwardScatteringFraction *BandProfile // shortwave, 14 bands
	AsymmetryParameter        *BandProfile // shortwave, 14 bands
	SingleScatteringAlbedo    *BandProfile // shortwave, 14 bands
}

// defaultProperties returns a property set describing no cloud at all
// on the altitude grid z.
func defaultProperties(z []float64) *CloudProperties {
	n := len(z)
	return &CloudProperties{
		Z:               append([]float64(nil), z...),
		CloudFraction:   constantProfile(0, "dimensionless", n),
		MassIce:         constantProfile(0, "kg m^-2", n),
		MassWater:       constantProfile(0, "kg m^-2", n),
		IceParticleSize: constantProfile(defaultIceParticleSize, "micrometers", n),
		DropletRadius:   constantProfile(defaultDropletRadius, "micrometers", n),

		LWOpticalThickness:        constantBandProfile(0, "dimensionless", n, NumLongwaveBands),
		SWOpticalThickness:        constantBandProfile(0, "dimensionless", n, NumShortwaveBands),
		ForwardScatteringFraction: constantBandProfile(defaultForwardScattering, "dimensionless", n, NumShortwaveBands),
		AsymmetryParameter:        constantBandProfile(defaultAsymmetryParameter, "dimensionless", n, NumShortwaveBands),
		SingleScatteringAlbedo:    constantBandProfile(defaultSingleScatteringAlbedo, "dimensionless", n, NumShortwaveBands),
	}
}

// Cloud is a cloud parameterization. The variants are ClearSky,
// PhysicalCloud, DirectInputCloud, HighCloud, LowCloud and
// CloudEnsemble.
type Cloud interface {
	// Properties returns the current cloud fields for the radiation
	// scheme. Callers must not mutate the returned fields.
	Properties() *CloudProperties

	// UpdateCloudProfile adjusts the cloud to the atmosphere's
	// current altitude grid and, for clouds that track the
	// convective top, to the current convective-top diagnostic.
	// It is safe to call every simulation step.
	UpdateCloudProfile(atmos Atmosphere, conv Convection) error

	// Combine superposes this cloud with another cloud sharing the
	// same altitude grid. Combinations are only defined within a
	// family of variants: ClearSky, PhysicalCloud, HighCloud and
	// LowCloud combine through their physical properties, while
	// DirectInputCloud combines only with other DirectInputClouds.
	Combine(other Cloud) (Cloud, error)
}

// cloudKind names a cloud variant for error reporting.
func cloudKind(c Cloud) string {
	switch c.(type) {
	case *ClearSky:
		return "ClearSky"
	case *PhysicalCloud:
		return "PhysicalCloud"
	case *DirectInputCloud:
		return "DirectInputCloud"
	case *HighCloud:
		return "HighCloud"
	case *LowCloud:
		return "LowCloud"
	case *CloudEnsemble:
		return "CloudEnsemble"
	}
	return "unknown cloud"
}

// combinePhysical superposes two physical-property field sets: the
// combined cloud fraction is the per-level maximum clamped to [0, 1],
// water and ice masses add, and the smaller particle sizes win, in
// accordance with an increase of cloud optical depth.
func combinePhysical(a, b *CloudProperties) (Cloud, error) {
	if err := checkGrids(a.Z, b.Z); err != nil {
		return nil, err
	}
	n := len(a.Z)
	fraction := make([]float64, n)
	massIce := make([]float64, n)
	massWater := make([]float64, n)
	iceSize := make([]float64, n)
	droplet := make([]float64, n)
	for k := 0; k < n; k++ {
		f := math.Max(a.CloudFraction.Values[k], b.CloudFraction.Values[k])
		fraction[k] = math.Min(math.Max(f, 0), 1)
		massIce[k] = a.MassIce.Values[k] + b.MassIce.Values[k]
		massWater[k] = a.MassWater.Values[k] + b.MassWater.Values[k]
		iceSize[k] = math.Min(a.IceParticleSize.Values[k], b.IceParticleSize.Values[k])
		droplet[k] = math.Min(a.DropletRadius.Values[k], b.DropletRadius.Values[k])
	}
	props := defaultProperties(a.Z)
	props.CloudFraction = &Profile{Values: fraction, Units: "dimensionless"}
	props.MassIce = &Profile{Values: massIce, Units: "kg m^-2"}
	props.MassWater = &Profile{Values: massWater, Units: "kg m^-2"}
	props.IceParticleSize = &Profile{Values: iceSize, Units: "micrometers"}
	props.DropletRadius = &Profile{Values: droplet, Units: "micrometers"}
	return &PhysicalCloud{props: props}, nil
}

// physicalCombine applies the physical-property combination rule if
// other belongs to the physical family, and rejects the combination
// otherwise.
func physicalCombine(c, other Cloud) (Cloud, error) {
	switch other.(type) {
	case *ClearSky, *PhysicalCloud, *HighCloud, *LowCloud:
		return combinePhysical(c.Properties(), other.Properties())
	}
	return nil, &IncompatibleCloudsError{Kind1: cloudKind(c), Kind2: cloudKind(other)}
}

// ClearSky is the zero cloud: every field keeps its no-cloud default
// and updates are no-ops.
type ClearSky struct {
	props *CloudProperties
}

// NewClearSky returns a cloud-free sky on the altitude grid z.
func NewClearSky(z []float64) *ClearSky {
	return &ClearSky{props: defaultProperties(z)}
}

// Properties returns the cloud fields for the radiation scheme.
func (c *ClearSky) Properties() *CloudProperties { return c.props }

// UpdateCloudProfile does nothing; a clear sky has no profile to keep
// up to date.
func (c *ClearSky) UpdateCloudProfile(Atmosphere, Convection) error { return nil }

// Combine superposes the clear sky with another physical-family
// cloud. A clear sky is the identity element of the combination.
func (c *ClearSky) Combine(other Cloud) (Cloud, error) { return physicalCombine(c, other) }

// PhysicalCloud is a cloud defined by physical properties: cloud ice
// and liquid water mass per model level and particle sizes. To be used
// with the radiation scheme's liquid-and-ice cloud optics.
type PhysicalCloud struct {
	props *CloudProperties
}

// NewPhysicalCloud creates a cloud from its physical properties. Each
// of cloudFraction [dimensionless], massWater and massIce [kg m^-2],
// and iceParticleSize and dropletRadius [micrometers] may be a number,
// a []float64 with one value per model level, or a *Profile.
func NewPhysicalCloud(z []float64, cloudFraction, massWater, massIce, iceParticleSize, dropletRadius interface{}) (*PhysicalCloud, error) {
	n := len(z)
	props := defaultProperties(z)
	var err error
	if props.CloudFraction, err = NewProfile(cloudFraction, "dimensionless", n); err != nil {
		return nil, err
	}
	if props.MassWater, err = NewProfile(massWater, "kg m^-2", n); err != nil {
		return nil, err
	}
	if props.MassIce, err = NewProfile(massIce, "kg m^-2", n); err != nil {
		return nil, err
	}
	if props.IceParticleSize, err = NewProfile(iceParticleSize, "micrometers", n); err != nil {
		return nil, err
	}
	if props.DropletRadius, err = NewProfile(dropletRadius, "micrometers", n); err != nil {
		return nil, err
	}
	return &PhysicalCloud{props: props}, nil
}

// Properties returns the cloud fields for the radiation scheme.
func (c *PhysicalCloud) Properties() *CloudProperties { return c.props }

// UpdateCloudProfile does nothing; the cloud is held fixed in
// mass-per-level terms.
func (c *PhysicalCloud) UpdateCloudProfile(Atmosphere, Convection) error { return nil }

// Combine superposes two clouds in a layer through their physical
// properties.
func (c *PhysicalCloud) Combine(other Cloud) (Cloud, error) { return physicalCombine(c, other) }
