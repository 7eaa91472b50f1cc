/*
 * doc.go, part of gomol.
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

/*Package mol is the root package of the gomol library. It provides the geometry
record used to hold a molecular structure in memory, the element data tables,
unit-conversion constants, a position-tracking line reader for text formats, and
the error and trajectory interfaces implemented by the format subpackages.


	**gomol Capabilities**


    Reads/writes XYZ geometry and trajectory files, including gzip- and
	zstd-compressed ones (see the xyz subpackage).

    Iterates over multi-frame trajectories lazily, one frame at a time,
	so arbitrarily long trajectories can be processed without loading
	them whole into memory.

    Maps element symbols to atomic numbers and back, for the whole
	periodic table, and provides atomic masses for the common elements.

    Converts coordinates between Angstrom (the on-disk unit of most
	geometry formats) and Bohr, the unit used in memory.


Coordinates are kept in a gonum *mat.Dense with one row per atom, so anything
built on gonum can operate on them directly. Within the library it is understood
that a "vector" is a row of that matrix, i.e. the cartesian coordinates of one
atom, in Bohr.*/
package mol
