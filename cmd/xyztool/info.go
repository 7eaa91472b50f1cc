package main

import (
	"fmt"

	mol "github.com/molsimtools/gomol"
	"github.com/molsimtools/gomol/xyz"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE...",
	Short: "Print frame and atom counts for XYZ files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			rtraj, err := xyz.Open(name)
			if err != nil {
				errorExit("xyztool: %v", err)
			}
			frames := 0
			var first *mol.Geometry
			for {
				g, err := rtraj.Next()
				if err != nil {
					if _, ok := err.(mol.LastFrameError); ok {
						break
					}
					errorExit("xyztool: %v", err)
				}
				if first == nil {
					first = g
				}
				frames++
			}
			rtraj.Close()
			if first == nil {
				fmt.Printf("%s: no frames\n", name)
				continue
			}
			fmt.Printf("%s: %d frame(s), %d atoms, title %q\n", name, frames, first.Len(), first.Title)
			if masses, err := first.Masses(); err == nil {
				total := 0.0
				for _, m := range masses {
					total += m
				}
				fmt.Printf("  molecular mass of the first frame: %.2f\n", total)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
