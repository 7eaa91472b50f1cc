package xyz

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	mol "github.com/molsimtools/gomol"
	"gonum.org/v1/gonum/mat"
)

//DefaultTitle is written as the title line when dumping a geometry
//whose title is empty.
const DefaultTitle = "Created with gomol"

//LoadOne reads one frame from lit and returns it as a Geometry, with
//coordinates converted from Angstrom to Bohr. If lit is exhausted
//before the frame starts, the returned error implements
//mol.LastFrameError; running out of input anywhere after the atom-count
//line is a hard error instead, as are a malformed count, an atom line
//with fewer than 4 fields, an element designator that is neither a
//known symbol nor an integer, and a non-numeric coordinate. Hard errors
//carry the line number where they were found.
func LoadOne(lit *mol.LineReader) (*mol.Geometry, error) {
	line, err := lit.Next()
	if err != nil {
		if err == io.EOF {
			//nothing bad happened, there is just no frame left to read
			return nil, newlastFrameError(lit.Name(), "LoadOne")
		}
		return nil, Error{err.Error(), lit.Name(), []string{"LoadOne"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, Error{fmt.Sprintf("line %d: can't read atom number from %q", lit.LineNum(), line), lit.Name(), []string{"LoadOne"}, true}
	}
	title, err := lit.Next()
	if err != nil {
		return nil, Error{fmt.Sprintf("line %d: frame truncated: missing title line", lit.LineNum()+1), lit.Name(), []string{"LoadOne"}, true}
	}
	title = strings.TrimSpace(title)
	nums := make([]int, natoms)
	var data []float64
	if natoms > 0 {
		data = make([]float64, natoms*3)
	}
	for i := 0; i < natoms; i++ {
		line, err := lit.Next()
		if err != nil {
			return nil, Error{fmt.Sprintf("line %d: frame truncated: %d of %d atom lines read", lit.LineNum()+1, i, natoms), lit.Name(), []string{"LoadOne"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{fmt.Sprintf("line %d: ill formed atom line %q: 4 fields expected", lit.LineNum(), line), lit.Name(), []string{"LoadOne"}, true}
		}
		if num, ok := mol.SymbolToNumber(fields[0]); ok {
			nums[i] = num
		} else {
			nums[i], err = strconv.Atoi(fields[0])
			if err != nil {
				return nil, Error{fmt.Sprintf("line %d: unknown element %q: %s", lit.LineNum(), fields[0], err.Error()), lit.Name(), []string{"LoadOne"}, true}
			}
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("line %d: can't parse coordinate %d (%q): %s", lit.LineNum(), j, fields[j+1], err.Error()), lit.Name(), []string{"LoadOne"}, true}
			}
			data[i*3+j] = v * mol.A2Bohr
		}
	}
	var coords *mat.Dense
	if natoms > 0 {
		coords = mat.NewDense(natoms, 3, data)
	}
	return &mol.Geometry{Title: title, Nums: nums, Coords: coords}, nil
}

//Reader reads the frames of a (possibly multi-frame) XYZ source
//sequentially. It implements mol.Traj.
type Reader struct {
	lit      *mol.LineReader
	readable bool
}

//NewReader returns a Reader over lit. The Reader takes over lit: mixing
//calls to the Reader with direct reads from lit leaves both of them in
//the middle of a frame.
func NewReader(lit *mol.LineReader) *Reader {
	return &Reader{lit: lit, readable: true}
}

//Readable returns true if the Reader may still hold frames, i.e. Next
//can be called on it.
func (R *Reader) Readable() bool {
	return R.readable
}

//Next returns the next frame of the trajectory. At the end of the
//trajectory it returns an error implementing mol.LastFrameError and
//marks the Reader as spent; Reader is single-pass, there is no rewind.
func (R *Reader) Next() (*mol.Geometry, error) {
	if !R.readable {
		return nil, Error{TrajUnIniRead, R.lit.Name(), []string{"Next"}, true}
	}
	g, err := LoadOne(R.lit)
	if err != nil {
		R.readable = false
		if _, ok := err.(mol.LastFrameError); ok {
			return nil, err
		}
		return nil, errDecorate(err, "Next")
	}
	return g, nil
}

//DumpOne writes g to w as one XYZ frame: the atom count, the title (or
//DefaultTitle if the title is empty) and one line per atom with the
//element symbol and the coordinates converted back to Angstrom. It
//refuses a geometry whose atomic-number and coordinate counts disagree.
//Write failures of w are returned unchanged. DumpOne does not flush or
//close w; the sink belongs to the caller.
func DumpOne(w io.Writer, g *mol.Geometry) error {
	if err := g.Corrupted(); err != nil {
		return Error{err.Error(), "", []string{"DumpOne"}, true}
	}
	if _, err := fmt.Fprintf(w, "%d\n", g.Len()); err != nil {
		return err
	}
	title := g.Title
	if title == "" {
		title = DefaultTitle
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	for i, num := range g.Nums {
		x := g.Coords.At(i, 0) / mol.A2Bohr
		y := g.Coords.At(i, 1) / mol.A2Bohr
		z := g.Coords.At(i, 2) / mol.A2Bohr
		if _, err := fmt.Fprintf(w, "%-2s %15.10f %15.10f %15.10f\n", mol.NumberToSymbol(num), x, y, z); err != nil {
			return err
		}
	}
	return nil
}

//DumpMany writes the given geometries to w as consecutive XYZ frames,
//in order, stopping at the first failure.
func DumpMany(w io.Writer, gs []*mol.Geometry) error {
	for _, g := range gs {
		if err := DumpOne(w, g); err != nil {
			return err
		}
	}
	return nil
}

//Copy drains traj into w, one XYZ frame per trajectory frame, and
//returns the number of frames written. Frames already consumed from
//traj before the call are not recovered.
func Copy(w io.Writer, traj mol.Traj) (int, error) {
	n := 0
	for {
		g, err := traj.Next()
		if err != nil {
			if _, ok := err.(mol.LastFrameError); ok {
				return n, nil
			}
			return n, err
		}
		if err := DumpOne(w, g); err != nil {
			return n, err
		}
		n++
	}
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements mol.Error and decorates the error with the caller's name before returning it.
//if used with a non-mol.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(mol.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for XYZ errors. It fulfills mol.Error and mol.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "xyz") associated to the error
func (err Error) Format() string { return "xyz" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	NilGeometry    = "Given nil geometry"
)

//lastFrameError implements mol.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "xyz" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
