/*
 * xyz_test.go, part of gomol.
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

package xyz

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	mol "github.com/molsimtools/gomol"
	"gonum.org/v1/gonum/mat"
)

const water = `3
water
O   0.0000000000   0.0000000000   0.0000000000
H   0.9584000000   0.0000000000   0.0000000000
H  -0.2396000000   0.9281000000   0.0000000000
`

func lit(s string) *mol.LineReader {
	return mol.NewLineReader(strings.NewReader(s), "test.xyz")
}

func TestLoadOne(Te *testing.T) {
	g, err := LoadOne(lit(water))
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("read geometry:", g.Title, g.Nums)
	if g.Title != "water" {
		Te.Errorf("wrong title %q", g.Title)
	}
	if g.Len() != 3 {
		Te.Fatalf("wrong number of atoms: %d", g.Len())
	}
	for i, want := range []int{8, 1, 1} {
		if g.Nums[i] != want {
			Te.Errorf("atom %d: got atomic number %d, want %d", i, g.Nums[i], want)
		}
	}
	//coordinates must come out in Bohr
	want := 0.9584 * mol.A2Bohr
	if x, _, _ := g.Coord(1); math.Abs(x-want) > 1e-12 {
		Te.Errorf("atom 1 x: got %v, want %v", x, want)
	}
}

func TestSymbolNumberDuality(Te *testing.T) {
	bySymbol := "1\n\nC 0.0 0.0 0.0\n"
	byNumber := "1\n\n6 0.0 0.0 0.0\n"
	for _, src := range []string{bySymbol, byNumber} {
		g, err := LoadOne(lit(src))
		if err != nil {
			Te.Fatal(err)
		}
		if g.Nums[0] != 6 {
			Te.Errorf("got atomic number %d, want 6", g.Nums[0])
		}
	}
}

func TestEmptyFrame(Te *testing.T) {
	//an empty frame consumes exactly 2 lines, so the helium frame
	//right after it must still be readable.
	src := "0\nnothing here\n1\nhelium\nHe 0.0 0.0 0.0\n"
	l := lit(src)
	g, err := LoadOne(l)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 0 || g.Title != "nothing here" {
		Te.Errorf("bad empty frame: %d atoms, title %q", g.Len(), g.Title)
	}
	if g.Coords != nil {
		Te.Error("empty frame should have nil coordinates")
	}
	g, err = LoadOne(l)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Len() != 1 || g.Nums[0] != 2 {
		Te.Errorf("frame after the empty one misread: %v", g.Nums)
	}
}

func TestTrajRead(Te *testing.T) {
	two := water + "1\nlone hydrogen\nH 0.0 0.0 0.0\n"
	traj := NewReader(lit(two))
	read := 0
	for {
		g, err := traj.Next()
		if err != nil {
			if _, ok := err.(mol.LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		read++
		fmt.Println("frame", read, "title", g.Title)
	}
	if read != 2 {
		Te.Errorf("read %d frames, want 2", read)
	}
	if traj.Readable() {
		Te.Error("trajectory still readable after its last frame")
	}
	//a spent reader stays spent
	if _, err := traj.Next(); err == nil {
		Te.Error("Next on a spent reader did not fail")
	}
}

func TestErrorLocality(Te *testing.T) {
	//atom line 4 misses its z coordinate
	src := "2\nbroken\nH 0.0 0.0 0.0\nH 1.0 0.0\n"
	_, err := LoadOne(lit(src))
	if err == nil {
		Te.Fatal("short atom line not detected")
	}
	fmt.Println("got expected error:", err)
	if !strings.Contains(err.Error(), "line 4") {
		Te.Errorf("error does not point at line 4: %v", err)
	}
	if _, ok := err.(mol.LastFrameError); ok {
		Te.Error("malformed input reported as normal termination")
	}
}

func TestExhaustionBoundary(Te *testing.T) {
	//no input at all: a frame boundary, so this is normal termination
	_, err := LoadOne(lit(""))
	if err == nil {
		Te.Fatal("no error on empty input")
	}
	if _, ok := err.(mol.LastFrameError); !ok {
		Te.Errorf("empty input should signal the last frame, got: %v", err)
	}
	//input ends mid-frame: that is a broken file, not termination
	for _, src := range []string{"2\n", "2\ntruncated\nH 0.0 0.0 0.0\n", "nonsense\n"} {
		_, err := LoadOne(lit(src))
		if err == nil {
			Te.Fatalf("no error on %q", src)
		}
		if _, ok := err.(mol.LastFrameError); ok {
			Te.Errorf("%q misreported as normal termination", src)
		}
	}
}

func TestUnitConversion(Te *testing.T) {
	g, err := LoadOne(lit("1\n\nH 1.0000000000 0.0000000000 0.0000000000\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if x, _, _ := g.Coord(0); x != 1.0*mol.A2Bohr {
		Te.Errorf("got x = %v, want the Angstrom conversion factor %v", x, mol.A2Bohr)
	}
	//and back: one Bohr-side factor must dump as exactly 1.0 Angstrom
	g = &mol.Geometry{Nums: []int{1}, Coords: mat.NewDense(1, 3, []float64{mol.A2Bohr, 0, 0})}
	var buf bytes.Buffer
	if err := DumpOne(&buf, g); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), " 1.0000000000 ") {
		Te.Errorf("dumped frame lacks the unit x coordinate:\n%s", buf.String())
	}
}

func TestDumpFormat(Te *testing.T) {
	coords := mat.NewDense(1, 3, []float64{1.0 * mol.A2Bohr, 2.0 * mol.A2Bohr, -3.0 * mol.A2Bohr})
	g, err := mol.NewGeometry("", []int{6}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpOne(&buf, g); err != nil {
		Te.Fatal(err)
	}
	want := "1\n" + DefaultTitle + "\n" +
		"C     1.0000000000    2.0000000000   -3.0000000000\n"
	if buf.String() != want {
		Te.Errorf("dump mismatch:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRoundTrip(Te *testing.T) {
	coords := mat.NewDense(3, 3, []float64{
		0.0, 0.0, 0.123456789,
		1.8113468358, 0.0, -4.56,
		-0.4527754970, 1.7540911046, 100.0,
	})
	in, err := mol.NewGeometry("round trip", []int{8, 1, 1}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpOne(&buf, in); err != nil {
		Te.Fatal(err)
	}
	out, err := LoadOne(mol.NewLineReader(&buf, "buffer"))
	if err != nil {
		Te.Fatal(err)
	}
	if out.Title != in.Title {
		Te.Errorf("title not preserved: %q vs %q", out.Title, in.Title)
	}
	for i := range in.Nums {
		if in.Nums[i] != out.Nums[i] {
			Te.Errorf("atom %d: atomic number %d became %d", i, in.Nums[i], out.Nums[i])
		}
		for j := 0; j < 3; j++ {
			//the text format keeps 10 decimals in Angstrom
			if math.Abs(in.Coords.At(i, j)-out.Coords.At(i, j)) > 1e-8 {
				Te.Errorf("coordinate %d,%d drifted: %v vs %v", i, j, in.Coords.At(i, j), out.Coords.At(i, j))
			}
		}
	}
	//the degenerate case survives too
	buf.Reset()
	empty := &mol.Geometry{Title: "empty"}
	if err := DumpOne(&buf, empty); err != nil {
		Te.Fatal(err)
	}
	out, err = LoadOne(mol.NewLineReader(&buf, "buffer"))
	if err != nil {
		Te.Fatal(err)
	}
	if out.Len() != 0 || out.Title != "empty" {
		Te.Errorf("empty geometry did not round trip: %d atoms, title %q", out.Len(), out.Title)
	}
}

func TestDumpMany(Te *testing.T) {
	a := &mol.Geometry{Title: "a", Nums: []int{2}, Coords: mat.NewDense(1, 3, []float64{0, 0, 0})}
	b := &mol.Geometry{Title: "b"}
	var buf bytes.Buffer
	if err := DumpMany(&buf, []*mol.Geometry{a, b}); err != nil {
		Te.Fatal(err)
	}
	traj := NewReader(mol.NewLineReader(&buf, "buffer"))
	titles := []string{}
	for {
		g, err := traj.Next()
		if err != nil {
			if _, ok := err.(mol.LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		titles = append(titles, g.Title)
	}
	if len(titles) != 2 || titles[0] != "a" || titles[1] != "b" {
		Te.Errorf("frames out of order or missing: %v", titles)
	}
}

func TestDumpCorrupted(Te *testing.T) {
	//two atomic numbers, one coordinate row
	g := &mol.Geometry{Nums: []int{1, 1}, Coords: mat.NewDense(1, 3, []float64{0, 0, 0})}
	var buf bytes.Buffer
	if err := DumpOne(&buf, g); err == nil {
		Te.Error("mismatched geometry written without complaint")
	}
	if buf.Len() != 0 {
		Te.Error("partial frame written for a corrupted geometry")
	}
}

func TestCopy(Te *testing.T) {
	two := water + water
	traj := NewReader(lit(two))
	var buf bytes.Buffer
	n, err := Copy(&buf, traj)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 2 {
		Te.Errorf("copied %d frames, want 2", n)
	}
	back := NewReader(mol.NewLineReader(&buf, "buffer"))
	for i := 0; i < 2; i++ {
		if _, err := back.Next(); err != nil {
			Te.Fatalf("copied trajectory unreadable at frame %d: %v", i, err)
		}
	}
}
