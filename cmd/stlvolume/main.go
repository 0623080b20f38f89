package main

import (
	"fmt"
	"os"

	"github.com/mcanet/stlvolume/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stlvolume",
	Short: "Calculate volume, surface area and print mass of STL models",
	Long: `stlvolume is a command-line tool for estimating how much material a
3D print will consume. It reads STL files (ASCII and binary, auto-detected
from content), computes the enclosed volume, surface area and bounding box,
and estimates the printed mass for a chosen material and infill fraction.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
