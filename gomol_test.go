/*
 * gomol_test.go, part of gomol.
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
 */

package mol

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSymbolLookup(Te *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"H", 1}, {"he", 2}, {"FE", 26}, {"Uuu", 0}, {"", 0}, {"Og", 118},
	}
	for _, c := range cases {
		num, ok := SymbolToNumber(c.in)
		if c.want == 0 {
			if ok {
				Te.Errorf("%q should not name an element, got %d", c.in, num)
			}
			continue
		}
		if !ok || num != c.want {
			Te.Errorf("SymbolToNumber(%q) = %d, %v; want %d", c.in, num, ok, c.want)
		}
	}
}

func TestSymbolTableInverse(Te *testing.T) {
	//the two tables must mirror each other exactly
	for sym, num := range symbolNumber {
		if NumberToSymbol(num) != sym {
			Te.Errorf("number %d maps back to %q, want %q", num, NumberToSymbol(num), sym)
		}
	}
	if NumberToSymbol(0) != "" || NumberToSymbol(119) != "" {
		Te.Error("out-of-table numbers should map to the empty string")
	}
}

func TestMass(Te *testing.T) {
	if m := Mass("C"); m != 12.01 {
		Te.Errorf("Mass(C) = %v", m)
	}
	if m := Mass("fe"); m != 55.84 {
		Te.Errorf("Mass(fe) = %v", m)
	}
	if m := Mass("Og"); m != 0 {
		Te.Errorf("untabulated mass should be 0, got %v", m)
	}
}

func TestNewGeometry(Te *testing.T) {
	coords := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 0, 0})
	g, err := NewGeometry("h2", []int{1, 1}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 2 {
		Te.Errorf("Len() = %d", g.Len())
	}
	if g.Symbol(1) != "H" {
		Te.Errorf("Symbol(1) = %q", g.Symbol(1))
	}
	//mismatched parts must be rejected
	if _, err := NewGeometry("bad", []int{1}, coords); err == nil {
		Te.Error("row mismatch accepted")
	}
	if _, err := NewGeometry("bad", []int{1, 1}, nil); err == nil {
		Te.Error("nil coordinates accepted for a non-empty geometry")
	}
	if _, err := NewGeometry("", nil, nil); err != nil {
		Te.Error("empty geometry rejected:", err)
	}
}

func TestGeometryCopy(Te *testing.T) {
	coords := mat.NewDense(1, 3, []float64{1, 2, 3})
	g, err := NewGeometry("one", []int{6}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	c := g.Copy()
	c.Nums[0] = 7
	c.Coords.Set(0, 0, -1)
	if g.Nums[0] != 6 || g.Coords.At(0, 0) != 1 {
		Te.Error("Copy shares state with the original")
	}
}

func TestMasses(Te *testing.T) {
	g := &Geometry{Nums: []int{8, 1, 1}, Coords: mat.NewDense(3, 3, make([]float64, 9))}
	masses, err := g.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	total := 0.0
	for _, m := range masses {
		total += m
	}
	if total != 16.00+1.0+1.0 {
		Te.Errorf("water mass = %v", total)
	}
	g.Nums[0] = 118 //no mass tabulated
	if _, err := g.Masses(); err == nil {
		Te.Error("missing mass not reported")
	}
}
