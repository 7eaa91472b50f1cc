package main

import (
	"fmt"

	mol "github.com/molsimtools/gomol"
	"github.com/molsimtools/gomol/xyz"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert IN OUT",
	Short: "Re-encode an XYZ trajectory; compression follows the file names",
	Long: `Convert reads the frames of IN one by one and writes them to OUT, so it
works on trajectories of any length. Either file may be plain text or
compressed; the extensions decide (.gz for gzip, .zst/.zstd for zstd).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rtraj, err := xyz.Open(args[0])
		if err != nil {
			errorExit("xyztool: %v", err)
		}
		defer rtraj.Close()
		wtraj, err := xyz.Create(args[1])
		if err != nil {
			errorExit("xyztool: %v", err)
		}
		frames := 0
		for {
			g, err := rtraj.Next()
			if err != nil {
				if _, ok := err.(mol.LastFrameError); ok {
					break
				}
				errorExit("xyztool: %v", err)
			}
			if err := wtraj.WNext(g); err != nil {
				errorExit("xyztool: %v", err)
			}
			frames++
		}
		if err := wtraj.Close(); err != nil {
			errorExit("xyztool: %v", err)
		}
		fmt.Printf("%d frame(s) written to %s\n", frames, args[1])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
