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

//Package xyz reads and writes the XYZ molecular geometry format.

/******************** Format ***********************************************

One frame of an XYZ file is:

	<N>
	<title, free form, possibly empty>
	<symbol-or-number> <x> <y> <z>       (N times)

The first line holds the number of atoms. The element designator of an
atom line is normally a symbol ("He"), but a bare atomic number ("2") is
also accepted. Coordinates are in Angstrom on disk; this package converts
them to Bohr on loading and back on dumping.

A trajectory is the plain concatenation of frames, with no separator and
no frame count anywhere, so the only way to know how many frames a file
holds is to read it to the end. The readers here are accordingly lazy:
one frame per call, until the last-frame signal.

Extended XYZ dialects (comment columns, lattice headers and such) are out
of scope and will be rejected or misread; only the plain format above is
supported.

***************************************************************************/

package xyz
