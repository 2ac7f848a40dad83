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

// DirectInputCloud is a cloud defined directly by its per-band optical
// properties. To be used with the radiation scheme's direct-input
// cloud optics.
//
// The cloud stores its optical thickness per meter of layer depth,
// derived once at construction. Re-gridding rescales the optical
// thickness from that per-meter form, so the total column optical
// depth is conserved however the grid changes.
type DirectInputCloud struct {
	props      *CloudProperties
	lwPerMeter *BandProfile
	swPerMeter *BandProfile

	fFraction *interpolator
	fSW       *interpolator
	fLW       *interpolator
}

// NewDirectInputCloud creates a cloud from per-band optical
// properties. cloudFraction may be a number, []float64 or *Profile;
// lwOpticalThickness and swOpticalThickness may be numbers, []float64
// with one value per model level, *sparse.DenseArray of shape
// [numlevels, numbands], or *BandProfile. Nil
// forwardScatteringFraction, asymmetryParameter and
// singleScatteringAlbedo select the defaults of 0, 0.85 and 0.9.
func NewDirectInputCloud(z []float64, cloudFraction, lwOpticalThickness, swOpticalThickness,
	forwardScatteringFraction, asymmetryParameter, singleScatteringAlbedo interface{}) (*DirectInputCloud, error) {
	n := len(z)
	props := defaultProperties(z)
	var err error
	if props.CloudFraction, err = NewProfile(cloudFraction, "dimensionless", n); err != nil {
		return nil, err
	}
	if props.LWOpticalThickness, err = NewBandProfile(lwOpticalThickness, "dimensionless", n, NumLongwaveBands); err != nil {
		return nil, err
	}
	if props.SWOpticalThickness, err = NewBandProfile(swOpticalThickness, "dimensionless", n, NumShortwaveBands); err != nil {
		return nil, err
	}
	if forwardScatteringFraction != nil {
		if props.ForwardScatteringFraction, err = NewBandProfile(forwardScatteringFraction, "dimensionless", n, NumShortwaveBands); err != nil {
			return nil, err
		}
	}
	if asymmetryParameter != nil {
		if props.AsymmetryParameter, err = NewBandProfile(asymmetryParameter, "dimensionless", n, NumShortwaveBands); err != nil {
			return nil, err
		}
	}
	if singleScatteringAlbedo != nil {
		if props.SingleScatteringAlbedo, err = NewBandProfile(singleScatteringAlbedo, "dimensionless", n, NumShortwaveBands); err != nil {
			return nil, err
		}
	}

	dz := LayerThickness(z)
	c := &DirectInputCloud{props: props}
	c.lwPerMeter = perMeter(props.LWOpticalThickness, dz)
	c.swPerMeter = perMeter(props.SWOpticalThickness, dz)
	c.fFraction = profileInterpolator(props.CloudFraction, z, 0)
	c.fSW = bandInterpolator(c.swPerMeter, z, 0)
	c.fLW = bandInterpolator(c.lwPerMeter, z, 0)
	return c, nil
}

// Properties returns the cloud fields for the radiation scheme.
func (c *DirectInputCloud) Properties() *CloudProperties { return c.props }

// UpdateCloudProfile keeps the cloud profile fixed with height:
// the cloud fraction and per-meter optical thicknesses are resampled
// onto the atmosphere's current grid at the original anchor, then the
// optical thicknesses are rescaled by the new layer thicknesses so
// that the column totals are unchanged.
func (c *DirectInputCloud) UpdateCloudProfile(atmos Atmosphere, _ Convection) error {
	z := atmos.Altitude()
	dz := LayerThickness(z)
	c.props.Z = append([]float64(nil), z...)

	c.props.CloudFraction = c.fFraction.shiftProfile(z, 0, "dimensionless")
	c.swPerMeter = c.fSW.shiftBandProfile(z, 0, "m^-1")
	c.lwPerMeter = c.fLW.shiftBandProfile(z, 0, "m^-1")

	c.props.SWOpticalThickness = scaleOpticalThickness(c.swPerMeter, dz)
	c.props.LWOpticalThickness = scaleOpticalThickness(c.lwPerMeter, dz)
	return nil
}

// Combine superposes two direct-input clouds in a layer: the combined
// cloud fraction is the per-level maximum clamped to [0, 1] and the
// per-band optical thicknesses add. The secondary scattering
// parameters cannot be meaningfully combined and are reset to their
// defaults (forward scattering fraction 0, asymmetry parameter 0.85,
// single scattering albedo 0.9).
func (c *DirectInputCloud) Combine(other Cloud) (Cloud, error) {
	o, ok := other.(*DirectInputCloud)
	if !ok {
		return nil, &IncompatibleCloudsError{Kind1: cloudKind(c), Kind2: cloudKind(other)}
	}
	if err := checkGrids(c.props.Z, o.props.Z); err != nil {
		return nil, err
	}
	n := len(c.props.Z)
	fraction := make([]float64, n)
	for k := 0; k < n; k++ {
		f := math.Max(c.props.CloudFraction.Values[k], o.props.CloudFraction.Values[k])
		fraction[k] = math.Min(math.Max(f, 0), 1)
	}
	lw := c.props.LWOpticalThickness.Data.Copy()
	lw.AddDense(o.props.LWOpticalThickness.Data)
	sw := c.props.SWOpticalThickness.Data.Copy()
	sw.AddDense(o.props.SWOpticalThickness.Data)

	sum, err := NewDirectInputCloud(c.props.Z,
		&Profile{Values: fraction, Units: "dimensionless"},
		lw, sw, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return sum, nil
}
