package main

import (
	"fmt"
	"os"

	"github.com/mcanet/stlvolume/pkg/materials"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var materialsOutput string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available 3D printing materials",
	Long:  "Show the built-in material catalog with densities in grams per cubic centimeter.",
	Run:   runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().StringVarP(&materialsOutput, "output", "o", "table", "Output format (table or json)")
}

func runMaterials(cmd *cobra.Command, args []string) {
	catalog := materials.Default()

	if materialsOutput == "json" {
		printJSON(catalog.All())
		return
	}

	fmt.Println("Available 3D Printing Materials")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Density (g/cm³)"})
	for _, m := range catalog.All() {
		table.Append([]string{
			fmt.Sprintf("%d", m.ID),
			m.Name,
			fmt.Sprintf("%.3f", m.Density),
		})
	}
	table.Render()
}
