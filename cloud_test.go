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
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestHighCloudStepFunction(t *testing.T) {
	z := linspace(0, 20000, 200)
	dz := LayerThickness(z)
	c := NewHighCloud(z, 12000, 500, 1, 0.5, 20)
	p := c.Properties()

	for k, zz := range z {
		wantFraction := 0.
		if zz > 11500 && zz < 12000 {
			wantFraction = 1
		}
		if p.CloudFraction.Values[k] != wantFraction {
			t.Errorf("level %d (z=%g): want fraction %g, got %g",
				k, zz, wantFraction, p.CloudFraction.Values[k])
		}
		wantMass := wantFraction * 0.5 * 1.e-3 * dz[k]
		if !floats.EqualWithinAbsOrRel(p.MassIce.Values[k], wantMass, 1.e-12, 1.e-12) {
			t.Errorf("level %d (z=%g): want ice mass %g, got %g",
				k, zz, wantMass, p.MassIce.Values[k])
		}
	}
}

func TestHighCloudTracksConvectiveTop(t *testing.T) {
	z := linspace(50, 20000, 200)
	c := NewHighCloud(z, 12000, 500, 1, 0.5, 20)
	atmos := &ColumnAtmosphere{Z: z}

	if err := c.UpdateCloudProfile(atmos, &ColumnConvection{TopHeight: 13000}); err != nil {
		t.Fatal(err)
	}
	p := c.Properties()
	dz := LayerThickness(z)
	for k, zz := range z {
		// Levels well inside the lifted cloud are fully cloudy,
		// levels well outside are clear. Edge levels may be
		// fractional after interpolation.
		if zz > 12500+dz[k] && zz < 13000-dz[k] {
			if !floats.EqualWithinAbsOrRel(p.CloudFraction.Values[k], 1, 1.e-9, 1.e-9) {
				t.Errorf("level %d (z=%g): want fraction 1 inside lifted cloud, got %g",
					k, zz, p.CloudFraction.Values[k])
			}
		}
		if zz < 12500-dz[k] || zz > 13000+dz[k] {
			if !floats.EqualWithinAbsOrRel(p.CloudFraction.Values[k], 0, 1.e-9, 1.e-9) {
				t.Errorf("level %d (z=%g): want fraction 0 outside lifted cloud, got %g",
					k, zz, p.CloudFraction.Values[k])
			}
		}
		wantMass := p.CloudFraction.Values[k] * 0.5 * 1.e-3 * dz[k]
		if !floats.EqualWithinAbsOrRel(p.MassIce.Values[k], wantMass, 1.e-12, 1.e-12) {
			t.Errorf("level %d: ice mass inconsistent with fraction; want %g, got %g",
				k, wantMass, p.MassIce.Values[k])
		}
	}

	// With no diagnosed convective top the cloud stays where it is.
	before := append([]float64(nil), p.CloudFraction.Values...)
	if err := c.UpdateCloudProfile(atmos, &ColumnConvection{TopHeight: math.NaN()}); err != nil {
		t.Fatal(err)
	}
	for k := range z {
		if c.Properties().CloudFraction.Values[k] != before[k] {
			t.Fatalf("level %d: missing convective top should keep the cloud in place", k)
		}
	}
}

func TestLowCloudUnchangedGrid(t *testing.T) {
	z := linspace(50, 20000, 200)
	c := NewLowCloud(z, 2000, 1500, 1, 0.5, 10)

	p := c.Properties()
	wantFraction := append([]float64(nil), p.CloudFraction.Values...)
	wantMass := append([]float64(nil), p.MassWater.Values...)

	if err := c.UpdateCloudProfile(&ColumnAtmosphere{Z: z}, nil); err != nil {
		t.Fatal(err)
	}
	for k := range z {
		if !floats.EqualWithinAbsOrRel(p.CloudFraction.Values[k], wantFraction[k], 1.e-12, 1.e-12) {
			t.Errorf("level %d: fraction changed on unchanged grid; want %g, got %g",
				k, wantFraction[k], p.CloudFraction.Values[k])
		}
		if !floats.EqualWithinAbsOrRel(p.MassWater.Values[k], wantMass[k], 1.e-12, 1.e-12) {
			t.Errorf("level %d: water mass changed on unchanged grid; want %g, got %g",
				k, wantMass[k], p.MassWater.Values[k])
		}
	}
}

func TestPhysicalCloudCombine(t *testing.T) {
	z := linspace(50, 20000, 200)
	a, err := NewPhysicalCloud(z, 0.3, 0., 2., 20., 10.)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPhysicalCloud(z, 0.5, 0., 3., 20., 10.)
	if err != nil {
		t.Fatal(err)
	}

	sum, err := a.Combine(b)
	if err != nil {
		t.Fatal(err)
	}
	p := sum.Properties()
	for k := range z {
		if p.CloudFraction.Values[k] != 0.5 {
			t.Fatalf("level %d: want fraction 0.5 (max), got %g", k, p.CloudFraction.Values[k])
		}
		if p.MassIce.Values[k] != 5 {
			t.Fatalf("level %d: want ice mass 5 (sum), got %g", k, p.MassIce.Values[k])
		}
	}

	// Combination is commutative.
	rev, err := b.Combine(a)
	if err != nil {
		t.Fatal(err)
	}
	q := rev.Properties()
	for k := range z {
		if p.CloudFraction.Values[k] != q.CloudFraction.Values[k] ||
			p.MassIce.Values[k] != q.MassIce.Values[k] ||
			p.MassWater.Values[k] != q.MassWater.Values[k] ||
			p.IceParticleSize.Values[k] != q.IceParticleSize.Values[k] ||
			p.DropletRadius.Values[k] != q.DropletRadius.Values[k] {
			t.Fatalf("level %d: a+b differs from b+a", k)
		}
	}
}

func TestClearSkyIsIdentityForMass(t *testing.T) {
	z := linspace(50, 20000, 200)
	a, err := NewPhysicalCloud(z, 0.3, 1.5, 2., 20., 10.)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := a.Combine(NewClearSky(z))
	if err != nil {
		t.Fatal(err)
	}
	p := sum.Properties()
	for k := range z {
		if p.MassIce.Values[k] != 2 || p.MassWater.Values[k] != 1.5 {
			t.Fatalf("level %d: combining with a clear sky should not change mass fields", k)
		}
	}
}

func TestCombineGridMismatch(t *testing.T) {
	a, err := NewPhysicalCloud(linspace(50, 20000, 200), 0.3, 0., 2., 20., 10.)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPhysicalCloud(linspace(50, 20000, 150), 0.5, 0., 3., 20., 10.)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = a.Combine(b); err == nil {
		t.Fatal("want IncompatibleGridError, got nil")
	} else if _, ok := err.(*IncompatibleGridError); !ok {
		t.Fatalf("want IncompatibleGridError, got %T: %v", err, err)
	}
}

func TestCombineMixedFamilies(t *testing.T) {
	z := linspace(50, 20000, 200)
	a, err := NewPhysicalCloud(z, 0.3, 0., 2., 20., 10.)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewDirectInputCloud(z, 0.5, 1., 1., nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = a.Combine(b); err == nil {
		t.Fatal("want IncompatibleCloudsError, got nil")
	} else if _, ok := err.(*IncompatibleCloudsError); !ok {
		t.Fatalf("want IncompatibleCloudsError, got %T: %v", err, err)
	}
	if _, err = b.Combine(a); err == nil {
		t.Fatal("want IncompatibleCloudsError, got nil")
	} else if _, ok := err.(*IncompatibleCloudsError); !ok {
		t.Fatalf("want IncompatibleCloudsError, got %T: %v", err, err)
	}
}
