package main

import (
	"fmt"
	"strings"

	mol "github.com/molsimtools/gomol"
	"github.com/molsimtools/gomol/xyz"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	traceAtom int
	traceAxis string
)

var traceCmd = &cobra.Command{
	Use:   "trace IN OUT.png",
	Short: "Plot one coordinate of one atom along a trajectory",
	Long: `Trace follows the atom chosen with -a through every frame of IN and
plots its x, y or z coordinate (flag -c), in Angstrom, against the frame
number. The image format follows the extension of OUT (png, pdf, svg...).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		axes := map[string]int{"x": 0, "y": 1, "z": 2}
		col, ok := axes[strings.ToLower(traceAxis)]
		if !ok {
			errorExit("xyztool: invalid axis %q: must be x, y or z", traceAxis)
		}
		rtraj, err := xyz.Open(args[0])
		if err != nil {
			errorExit("xyztool: %v", err)
		}
		defer rtraj.Close()
		pts := make(plotter.XYs, 0, 128)
		for i := 0; ; i++ {
			g, err := rtraj.Next()
			if err != nil {
				if _, ok := err.(mol.LastFrameError); ok {
					break
				}
				errorExit("xyztool: %v", err)
			}
			if traceAtom < 0 || traceAtom >= g.Len() {
				errorExit("xyztool: atom %d out of range in frame %d (%d atoms)", traceAtom, i, g.Len())
			}
			pts = append(pts, plotter.XY{X: float64(i), Y: g.Coords.At(traceAtom, col) * mol.Bohr2A})
		}
		if len(pts) == 0 {
			errorExit("xyztool: %s has no frames", args[0])
		}
		p := plot.New()
		p.Title.Text = fmt.Sprintf("atom %d, %s coordinate", traceAtom, strings.ToLower(traceAxis))
		p.X.Label.Text = "frame"
		p.Y.Label.Text = "coordinate (Angstrom)"
		p.Add(plotter.NewGrid())
		line, err := plotter.NewLine(pts)
		if err != nil {
			errorExit("xyztool: %v", err)
		}
		p.Add(line)
		if err := p.Save(14*vg.Centimeter, 9*vg.Centimeter, args[1]); err != nil {
			errorExit("xyztool: %v", err)
		}
	},
}

func init() {
	traceCmd.Flags().IntVarP(&traceAtom, "atom", "a", 0, "atom to follow, counting from 0")
	traceCmd.Flags().StringVarP(&traceAxis, "axis", "c", "z", "coordinate to plot: x, y or z")
	rootCmd.AddCommand(traceCmd)
}
