/*
 * geometry.go, part of gomol.
 *
 * Copyright 2024 The gomol developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mol

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Geometry holds one molecular structure: a free-form title, the atomic
//number of each atom and their cartesian coordinates. Coords has one
//row per atom, in the same order as Nums, and its values are in Bohr.
//A Geometry with no atoms has an empty Nums and a nil Coords.
//Readers and writers never modify a Geometry after construction.
type Geometry struct {
	Title  string
	Nums   []int
	Coords *mat.Dense
}

//NewGeometry builds a Geometry from its parts, after checking that nums
//and coords agree: coords must have 3 columns and as many rows as nums
//has elements, or be nil when nums is empty.
func NewGeometry(title string, nums []int, coords *mat.Dense) (*Geometry, error) {
	g := &Geometry{Title: title, Nums: nums, Coords: coords}
	if err := g.Corrupted(); err != nil {
		return nil, err
	}
	return g, nil
}

//Len returns the number of atoms in the geometry.
func (G *Geometry) Len() int {
	return len(G.Nums)
}

//Corrupted checks whether the geometry is corrupted, i.e. the
//coordinates don't match the number of atoms. It also checks
//that the coordinate matrix has 3 columns.
func (G *Geometry) Corrupted() error {
	if G.Coords == nil {
		if len(G.Nums) != 0 {
			return fmt.Errorf("inconsistent coordinates/atoms: atoms %d, coords: nil", len(G.Nums))
		}
		return nil
	}
	r, c := G.Coords.Dims()
	if r != len(G.Nums) || c != 3 {
		return fmt.Errorf("inconsistent coordinates/atoms: atoms %d, coords: %dx%d", len(G.Nums), r, c)
	}
	return nil
}

//Copy returns a deep copy of the geometry.
func (G *Geometry) Copy() *Geometry {
	g := &Geometry{Title: G.Title}
	g.Nums = make([]int, len(G.Nums))
	copy(g.Nums, G.Nums)
	if G.Coords != nil {
		g.Coords = mat.DenseCopyOf(G.Coords)
	}
	return g
}

//Coord returns the coordinates for the atom i, in Bohr.
//Panics if i is out of range.
func (G *Geometry) Coord(i int) (x, y, z float64) {
	if i >= G.Len() {
		panic("Geometry: requested coordinate out of bounds")
	}
	return G.Coords.At(i, 0), G.Coords.At(i, 1), G.Coords.At(i, 2)
}

//Symbol returns the element symbol of atom i. Panics if i is out of
//range; returns the empty string if the atomic number is not in the
//periodic table.
func (G *Geometry) Symbol(i int) string {
	if i >= G.Len() {
		panic("Geometry: requested atom out of bounds")
	}
	return NumberToSymbol(G.Nums[i])
}

//Masses returns a slice with the mass of each atom in the geometry,
//and an error if any of the masses is not tabulated.
func (G *Geometry) Masses() ([]float64, error) {
	masses := make([]float64, G.Len())
	for i, num := range G.Nums {
		m := Mass(NumberToSymbol(num))
		if m == 0 {
			return nil, fmt.Errorf("no mass tabulated for atom %d (atomic number %d)", i, num)
		}
		masses[i] = m
	}
	return masses, nil
}
