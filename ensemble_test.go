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
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestCloudEnsembleOrderIndependence(t *testing.T) {
	z := linspace(50, 20000, 200)
	high := NewHighCloud(z, 12000, 500, 1, 0.5, 20)
	low := NewLowCloud(z, 2000, 1500, 0.6, 0.5, 10)
	phys, err := NewPhysicalCloud(z, 0.2, 0.1, 0.2, 25., 12.)
	if err != nil {
		t.Fatal(err)
	}

	e1, err := NewCloudEnsemble(high, low, phys)
	if err != nil {
		t.Fatal(err)
	}
	e2, err := NewCloudEnsemble(phys, high, low)
	if err != nil {
		t.Fatal(err)
	}

	p1, p2 := e1.Properties(), e2.Properties()
	for k := range z {
		if !floats.EqualWithinAbsOrRel(p1.CloudFraction.Values[k], p2.CloudFraction.Values[k], 1.e-12, 1.e-12) ||
			!floats.EqualWithinAbsOrRel(p1.MassIce.Values[k], p2.MassIce.Values[k], 1.e-12, 1.e-12) ||
			!floats.EqualWithinAbsOrRel(p1.MassWater.Values[k], p2.MassWater.Values[k], 1.e-12, 1.e-12) ||
			!floats.EqualWithinAbsOrRel(p1.IceParticleSize.Values[k], p2.IceParticleSize.Values[k], 1.e-12, 1.e-12) ||
			!floats.EqualWithinAbsOrRel(p1.DropletRadius.Values[k], p2.DropletRadius.Values[k], 1.e-12, 1.e-12) {
			t.Fatalf("level %d: superposition depends on member order", k)
		}
	}
}

func TestCloudEnsembleUpdate(t *testing.T) {
	z := linspace(50, 20000, 200)
	high := NewHighCloud(z, 12000, 500, 1, 0.5, 20)
	low := NewLowCloud(z, 2000, 1500, 1, 0.5, 10)
	e, err := NewCloudEnsemble(high, low)
	if err != nil {
		t.Fatal(err)
	}

	atmos := &ColumnAtmosphere{Z: z}
	conv := &ColumnConvection{TopHeight: 12500}
	if err := e.UpdateCloudProfile(atmos, conv); err != nil {
		t.Fatal(err)
	}

	// The superposition must equal the members folded through their
	// combination rule.
	want, err := high.Combine(low)
	if err != nil {
		t.Fatal(err)
	}
	wp, gp := want.Properties(), e.Properties()
	for k := range z {
		if !floats.EqualWithinAbsOrRel(gp.CloudFraction.Values[k], wp.CloudFraction.Values[k], 1.e-12, 1.e-12) ||
			!floats.EqualWithinAbsOrRel(gp.MassIce.Values[k], wp.MassIce.Values[k], 1.e-12, 1.e-12) ||
			!floats.EqualWithinAbsOrRel(gp.MassWater.Values[k], wp.MassWater.Values[k], 1.e-12, 1.e-12) {
			t.Fatalf("level %d: superposition differs from folded combination", k)
		}
	}

	// The ice cloud in the ensemble followed the convective top.
	top := 0.
	for k, f := range gp.CloudFraction.Values {
		if f > 0.5 && z[k] > top {
			top = z[k]
		}
	}
	if top < 12000 || top > 12600 {
		t.Errorf("want the superposed ice cloud near the convective top at 12500 m, got top %g", top)
	}
}

func TestCloudEnsembleMixedFamilies(t *testing.T) {
	z := linspace(50, 20000, 200)
	phys, err := NewPhysicalCloud(z, 0.2, 0.1, 0.2, 25., 12.)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := NewDirectInputCloud(z, 0.5, 1., 1., nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewCloudEnsemble(phys, direct); err == nil {
		t.Fatal("want IncompatibleCloudsError for mixed families, got nil")
	} else if _, ok := err.(*IncompatibleCloudsError); !ok {
		t.Fatalf("want IncompatibleCloudsError, got %T: %v", err, err)
	}
}

func TestCloudEnsembleMismatchedGrids(t *testing.T) {
	a := NewHighCloud(linspace(50, 20000, 200), 12000, 500, 1, 0.5, 20)
	b := NewLowCloud(linspace(50, 20000, 150), 2000, 1500, 1, 0.5, 10)
	if _, err := NewCloudEnsemble(a, b); err == nil {
		t.Fatal("want IncompatibleGridError for mismatched grids, got nil")
	} else if _, ok := err.(*IncompatibleGridError); !ok {
		t.Fatalf("want IncompatibleGridError, got %T: %v", err, err)
	}
}

func TestCloudEnsembleEmpty(t *testing.T) {
	if _, err := NewCloudEnsemble(); err == nil {
		t.Fatal("want error for empty ensemble, got nil")
	}
}
