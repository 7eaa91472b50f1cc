package xyz

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	mol "github.com/molsimtools/gomol"
)

//Open and Create pick a compressor from the file name, so a trajectory
//can be stored as plain text or recompressed just by renaming:
//.gz means gzip, .zst or .zstd means z-standard, anything else is
//plain text.

//This will cause an additional indirection, but each frame read takes
//enough time to make that delay irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func() //The things I have to do xD
	*zstd.Decoder
}

//Close closes the decoder. It can not be used after this call
func (z zstdql) Close() error {
	z.closeql()
	return nil
}

//File is an on-disk XYZ trajectory opened for reading. Its frames are
//read through the embedded Reader.
type File struct {
	*Reader
	f *os.File
	z io.ReadCloser //nil when the file is plain text
}

//Open opens the named XYZ file for reading, transparently decompressing
//it if the name ends in .gz, .zst or .zstd.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var z io.ReadCloser
	var r io.Reader = bufio.NewReader(f)
	switch {
	case strings.HasSuffix(name, ".gz"):
		z, err = gzip.NewReader(r)
		if err != nil {
			f.Close()
			return nil, Error{"can't read gzip header: " + err.Error(), name, []string{"Open"}, true}
		}
		r = z
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		d, err := zstd.NewReader(r)
		if err != nil {
			f.Close()
			return nil, Error{"can't open zstd stream: " + err.Error(), name, []string{"Open"}, true}
		}
		z = zstdql{d.Close, d}
		r = z
	}
	return &File{Reader: NewReader(mol.NewLineReader(r, name)), f: f, z: z}, nil
}

//Close closes the file and marks it as unreadable.
func (F *File) Close() error {
	if F == nil || !F.readable {
		return nil
	}
	F.readable = false
	if F.z != nil {
		F.z.Close()
	}
	return F.f.Close()
}

//Writer is an on-disk XYZ trajectory opened for writing.
type Writer struct {
	f         *os.File
	z         io.WriteCloser //nil when the file is plain text
	b         *bufio.Writer
	writeable bool
}

//Create creates (or truncates) the named XYZ file for writing,
//compressing it if the name ends in .gz, .zst or .zstd.
func Create(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var z io.WriteCloser
	var w io.Writer = f
	switch {
	case strings.HasSuffix(name, ".gz"):
		z = gzip.NewWriter(f)
		w = z
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		z, err = zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, Error{"can't open zstd stream: " + err.Error(), name, []string{"Create"}, true}
		}
		w = z
	}
	return &Writer{f: f, z: z, b: bufio.NewWriter(w), writeable: true}, nil
}

//WNext writes g as the next frame of the trajectory.
func (W *Writer) WNext(g *mol.Geometry) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.f.Name(), []string{"WNext"}, true}
	}
	if g == nil {
		return Error{NilGeometry, W.f.Name(), []string{"WNext"}, true}
	}
	return DumpOne(W.b, g)
}

//Close flushes and closes the file. The Writer can not be used after
//this call.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	if err := W.b.Flush(); err != nil {
		W.f.Close()
		return err
	}
	if W.z != nil {
		if err := W.z.Close(); err != nil {
			W.f.Close()
			return err
		}
	}
	return W.f.Close()
}

//ReadFile loads every frame of the named XYZ file into memory. For long
//trajectories prefer Open and frame-by-frame reading.
func ReadFile(name string) ([]*mol.Geometry, error) {
	F, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer F.Close()
	var gs []*mol.Geometry
	for {
		g, err := F.Next()
		if err != nil {
			if _, ok := err.(mol.LastFrameError); ok {
				return gs, nil
			}
			return nil, err
		}
		gs = append(gs, g)
	}
}

//WriteFile writes the given geometries to the named file as an XYZ
//trajectory, compressing per the file name as in Create.
func WriteFile(name string, gs []*mol.Geometry) error {
	W, err := Create(name)
	if err != nil {
		return err
	}
	for _, g := range gs {
		if err := W.WNext(g); err != nil {
			W.Close()
			return err
		}
	}
	return W.Close()
}
