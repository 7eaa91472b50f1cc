/*
 * interfaces.go, part of gomol.
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

// Traj is the interface for sequential readers of multi-frame geometry
// files. Unlike binary MD formats, text formats such as XYZ carry a full
// topology in every frame, so Next yields whole Geometry records rather
// than filling a preallocated coordinate matrix. A Traj is single-pass:
// once Next has signaled the last frame, the reader is spent.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next returns the next frame of the trajectory. At the end of the
	//trajectory it returns a nil Geometry and an error implementing
	//LastFrameError.
	Next() (*Geometry, error)
}

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate adds information when the error is passed up. Each call also returns the current decoration slice. If passed an empty string, it just returns the current value without adding anything.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function, any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
