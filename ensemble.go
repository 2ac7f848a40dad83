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

import "fmt"

// CloudEnsemble combines an arbitrary number of member clouds into one
// superposed effective cloud. After construction it is handled like
// any other Cloud: updating the ensemble updates every member and then
// recomputes the superposition, and Properties returns the superposed
// fields.
//
// The superposition is a pure reduction of the members through their
// Combine rules; because the per-property reductions (max, sum, min)
// are commutative and associative, the member order does not affect
// the result. All members must share one altitude grid and belong to
// one combination family.
//
// Overlapping clouds are handled very simply; see Combine on the
// member types for the per-property rules.
type CloudEnsemble struct {
	clouds        []Cloud
	superposition Cloud
}

// NewCloudEnsemble creates an ensemble of the given member clouds and
// computes their initial superposition.
func NewCloudEnsemble(clouds ...Cloud) (*CloudEnsemble, error) {
	if len(clouds) == 0 {
		return nil, fmt.Errorf("radconv: a cloud ensemble needs at least one member cloud")
	}
	e := &CloudEnsemble{clouds: clouds}
	if err := e.superpose(); err != nil {
		return nil, err
	}
	return e, nil
}

// superpose recomputes the superposed cloud by folding the members
// through their Combine rules.
func (e *CloudEnsemble) superpose() error {
	super := e.clouds[0]
	for _, c := range e.clouds[1:] {
		var err error
		if super, err = super.Combine(c); err != nil {
			return err
		}
	}
	e.superposition = super
	return nil
}

// Clouds returns the member clouds.
func (e *CloudEnsemble) Clouds() []Cloud { return e.clouds }

// Superposition returns the cached superposed cloud. It is
// re-derivable purely from the members' current fields and is
// recomputed on every update.
func (e *CloudEnsemble) Superposition() Cloud { return e.superposition }

// Properties returns the superposed cloud fields for the radiation
// scheme.
func (e *CloudEnsemble) Properties() *CloudProperties { return e.superposition.Properties() }

// UpdateCloudProfile updates every member cloud in order, then
// recomputes the superposition.
func (e *CloudEnsemble) UpdateCloudProfile(atmos Atmosphere, conv Convection) error {
	for _, c := range e.clouds {
		if err := c.UpdateCloudProfile(atmos, conv); err != nil {
			return err
		}
	}
	return e.superpose()
}

// Combine superposes the ensemble's effective cloud with another
// cloud.
func (e *CloudEnsemble) Combine(other Cloud) (Cloud, error) {
	return e.superposition.Combine(other)
}
