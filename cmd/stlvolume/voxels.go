package main

import (
	"fmt"
	"os"

	"github.com/mcanet/stlvolume/pkg/analysis"
	"github.com/mcanet/stlvolume/pkg/binvox"
	"github.com/spf13/cobra"
)

var voxelsUnit string

var voxelsCmd = &cobra.Command{
	Use:   "voxels [file]",
	Short: "Count occupied voxels in a binvox file",
	Long: `Read a binvox voxel grid and report the occupied voxel count and the
volume they cover. Grid coordinates are assumed to be millimeters.`,
	Args: cobra.ExactArgs(1),
	Run:  runVoxels,
}

func init() {
	rootCmd.AddCommand(voxelsCmd)

	voxelsCmd.Flags().StringVarP(&voxelsUnit, "unit", "u", "cm", "Unit for results (cm or inch)")
}

func runVoxels(cmd *cobra.Command, args []string) {
	filename := args[0]

	unit, err := analysis.ParseUnit(voxelsUnit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	grid, err := binvox.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing binvox file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Voxel Grid")
	fmt.Println("==========")
	fmt.Printf("Dimensions: %d x %d x %d\n", grid.NX, grid.NY, grid.NZ)
	fmt.Printf("Voxel edge: %.4f mm\n", grid.VoxelEdge())
	fmt.Printf("Occupied voxels: %d\n", grid.Occupied)
	fmt.Printf("Volume: %.4f %s³\n", unit.VolumeFromMM3(grid.Volume()), unit)
}
