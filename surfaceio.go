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
	"os"

	"github.com/ctessum/cdf"
)

// WriteSurface writes a time series of surface temperature [K] and
// height [m] snapshots to f in NetCDF format, one entry per time step.
func WriteSurface(f *os.File, temperature, height []float64) error {
	if len(temperature) != len(height) {
		return fmt.Errorf("radconv: surface snapshot series lengths differ: %d temperatures, %d heights",
			len(temperature), len(height))
	}
	h := cdf.NewHeader([]string{"time"}, []int{len(temperature)})
	h.AddVariable("temperature", []string{"time"}, []float64{0})
	h.AddAttribute("temperature", "units", "K")
	h.AddVariable("height", []string{"time"}, []float64{0})
	h.AddAttribute("height", "units", "m")
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("radconv: creating surface netcdf header: %v", err)
	}
	ff, err := cdf.Create(f, h)
	if err != nil {
		return fmt.Errorf("radconv: creating surface netcdf file: %v", err)
	}
	w := ff.Writer("temperature", []int{0}, []int{len(temperature)})
	if _, err := w.Write(temperature); err != nil {
		return fmt.Errorf("radconv: writing surface temperature: %v", err)
	}
	w = ff.Writer("height", []int{0}, []int{len(height)})
	if _, err := w.Write(height); err != nil {
		return fmt.Errorf("radconv: writing surface height: %v", err)
	}
	return nil
}

// ReadSurface reads the surface temperature [K] and height [m] from a
// NetCDF snapshot file at the given time index. A negative timestep
// counts from the end of the series, so -1 reads the last snapshot.
func ReadSurface(r cdf.ReaderWriterAt, timestep int) (temperature, height float64, err error) {
	f, err := cdf.Open(r)
	if err != nil {
		return 0, 0, fmt.Errorf("radconv: opening surface netcdf file: %v", err)
	}
	if temperature, err = readTimeValue(f, "temperature", timestep); err != nil {
		return 0, 0, err
	}
	if height, err = readTimeValue(f, "height", timestep); err != nil {
		return 0, 0, err
	}
	return temperature, height, nil
}

// readTimeValue reads variable name out of netcdf file f at the given
// time index.
func readTimeValue(f *cdf.File, name string, timestep int) (float64, error) {
	dims := f.Header.Lengths(name)
	if len(dims) == 0 {
		return 0, fmt.Errorf("radconv: surface netcdf file: variable %v not in file", name)
	}
	n := dims[0]
	if timestep < 0 {
		timestep += n
	}
	if timestep < 0 || timestep >= n {
		return 0, fmt.Errorf("radconv: surface netcdf file: time index %d out of range for variable %v (%d steps)",
			timestep, name, n)
	}
	r := f.Reader(name, []int{timestep}, []int{timestep + 1})
	buf := r.Zero(1)
	if _, err := r.Read(buf); err != nil {
		return 0, fmt.Errorf("radconv: reading surface netcdf variable %v: %v", name, err)
	}
	switch v := buf.(type) {
	case []float64:
		return v[0], nil
	case []float32:
		return float64(v[0]), nil
	}
	return 0, fmt.Errorf("radconv: surface netcdf variable %v has unsupported type %T", name, buf)
}
