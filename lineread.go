/*
 * lineread.go, part of gomol.
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
	"bufio"
	"io"
	"strings"
)

//LineReader supplies sequential lines from a text source while keeping
//track of the current position, so format readers can report where in
//the input an error was found. It does not own the underlying reader:
//opening and closing it is up to the caller.
type LineReader struct {
	buf  *bufio.Reader
	name string
	line int
}

//NewLineReader returns a LineReader over r. The name, usually a file
//name, is only used to build error messages and may be empty.
func NewLineReader(r io.Reader, name string) *LineReader {
	return &LineReader{buf: bufio.NewReader(r), name: name}
}

//Next returns the next line of the source, without its line ending.
//It returns io.EOF only when no data at all remains; a final line
//without a trailing newline still counts as a line. Any error other
//than io.EOF comes from the underlying reader unchanged.
func (L *LineReader) Next() (string, error) {
	line, err := L.buf.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
		//the source's last line just has no newline
	}
	L.line++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

//LineNum returns the 1-based number of the last line returned by Next,
//or 0 if nothing has been read yet.
func (L *LineReader) LineNum() int {
	return L.line
}

//Name returns the name given to NewLineReader.
func (L *LineReader) Name() string {
	return L.name
}
