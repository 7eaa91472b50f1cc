package main

import (
	"os"

	mol "github.com/molsimtools/gomol"
	"github.com/molsimtools/gomol/xyz"
	"github.com/spf13/cobra"
)

var frameNum int

var frameCmd = &cobra.Command{
	Use:   "frame IN [OUT]",
	Short: "Extract a single frame from a trajectory",
	Long: `Frame writes one frame of IN, chosen with -n (counting from 0), to OUT,
or to standard output if OUT is not given.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		rtraj, err := xyz.Open(args[0])
		if err != nil {
			errorExit("xyztool: %v", err)
		}
		defer rtraj.Close()
		var g *mol.Geometry
		for i := 0; i <= frameNum; i++ {
			g, err = rtraj.Next()
			if err != nil {
				if _, ok := err.(mol.LastFrameError); ok {
					errorExit("xyztool: %s has only %d frame(s)", args[0], i)
				}
				errorExit("xyztool: %v", err)
			}
		}
		if len(args) == 2 {
			if err := xyz.WriteFile(args[1], []*mol.Geometry{g}); err != nil {
				errorExit("xyztool: %v", err)
			}
			return
		}
		if err := xyz.DumpOne(os.Stdout, g); err != nil {
			errorExit("xyztool: %v", err)
		}
	},
}

func init() {
	frameCmd.Flags().IntVarP(&frameNum, "num", "n", 0, "frame to extract, counting from 0")
	rootCmd.AddCommand(frameCmd)
}
