package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcanet/stlvolume/pkg/analysis"
	"github.com/mcanet/stlvolume/pkg/mass"
	"github.com/mcanet/stlvolume/pkg/materials"
	"github.com/mcanet/stlvolume/pkg/stl"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	analyzeMaterial string
	analyzeInfill   float64
	analyzeSolid    bool
	analyzeAll      bool
	analyzeUnit     string
	analyzeCalc     string
	analyzeOutput   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze an STL file and estimate its print mass",
	Long: `Compute the bounding box, surface area, enclosed volume and estimated
mass of an STL model. Mass is derived from the chosen material's density and
the infill fraction; STL coordinates are assumed to be millimeters.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeMaterial, "material", "m", "PLA", "Material ID or name for mass estimation")
	analyzeCmd.Flags().Float64VarP(&analyzeInfill, "infill", "i", 1.0, "Infill fraction in (0, 1]")
	analyzeCmd.Flags().BoolVar(&analyzeSolid, "solid", false, "Also show the mass at 100% infill for comparison")
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all-materials", false, "Estimate mass for every material in the catalog")
	analyzeCmd.Flags().StringVarP(&analyzeUnit, "unit", "u", "cm", "Unit for results (cm or inch)")
	analyzeCmd.Flags().StringVar(&analyzeCalc, "calculation", "all", "Restrict the displayed results (volume, area or all)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "table", "Output format (table or json)")

	analyzeCmd.MarkFlagsMutuallyExclusive("solid", "all-materials")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	filename := args[0]

	unit, err := analysis.ParseUnit(analyzeUnit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if analyzeCalc != "all" && analyzeCalc != "volume" && analyzeCalc != "area" {
		fmt.Fprintf(os.Stderr, "Error: unknown calculation %q: valid values are volume, area, all\n", analyzeCalc)
		os.Exit(1)
	}

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	report := analysis.Analyze(model, unit)
	report.File = filepath.Base(filename)
	if info, err := os.Stat(filename); err == nil {
		report.FileSizeBytes = info.Size()
	}
	if model.TrailingBytes > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d trailing bytes after the last triangle record were ignored", model.TrailingBytes))
	}

	// Mass always works in cubic centimeters regardless of the display unit.
	volumeCM3 := analysis.Centimeter.VolumeFromMM3(analysis.Volume(model))
	if analyzeCalc != "area" {
		estimator := mass.NewEstimator(materials.Default())
		report.MassEstimates, err = estimateMass(estimator, volumeCM3)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if analyzeOutput == "json" {
		printJSON(report)
		return
	}
	printReportTables(report)
}

func estimateMass(estimator *mass.Estimator, volumeCM3 float64) ([]mass.Estimate, error) {
	switch {
	case analyzeAll:
		return estimator.EstimateAll(volumeCM3, analyzeInfill)
	case analyzeSolid:
		atInfill, solid, err := estimator.EstimateWithSolid(volumeCM3, analyzeMaterial, analyzeInfill)
		if err != nil {
			return nil, err
		}
		return []mass.Estimate{atInfill, solid}, nil
	default:
		estimate, err := estimator.Estimate(volumeCM3, analyzeMaterial, analyzeInfill)
		if err != nil {
			return nil, err
		}
		return []mass.Estimate{estimate}, nil
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func printReportTables(report *analysis.Report) {
	fmt.Printf("Model Analysis: %s\n", report.File)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"File Size", fmt.Sprintf("%.2f KB", float64(report.FileSizeBytes)/1024.0)})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", report.TriangleCount)})
	if report.BoundingBox != nil {
		table.Append([]string{fmt.Sprintf("Bounding Box (%s)", report.Unit),
			fmt.Sprintf("W: %.2f, D: %.2f, H: %.2f",
				report.BoundingBox.Width, report.BoundingBox.Depth, report.BoundingBox.Height)})
	} else {
		table.Append([]string{"Bounding Box", "n/a (empty mesh)"})
	}
	if analyzeCalc != "volume" {
		table.Append([]string{"Surface Area", fmt.Sprintf("%.4f %s²", report.SurfaceArea, report.Unit)})
	}
	if analyzeCalc != "area" {
		table.Append([]string{"Volume", fmt.Sprintf("%.4f %s³", report.Volume, report.Unit)})
	}
	table.Render()

	if len(report.MassEstimates) > 0 {
		fmt.Println("\nMass Estimates")
		massTable := tablewriter.NewWriter(os.Stdout)
		massTable.SetHeader([]string{"ID", "Material", "Density (g/cm³)", "Infill", "Mass (g)"})
		for _, e := range report.MassEstimates {
			massTable.Append([]string{
				fmt.Sprintf("%d", e.Material.ID),
				e.Material.Name,
				fmt.Sprintf("%.3f", e.Material.Density),
				fmt.Sprintf("%.0f%%", e.InfillFraction*100),
				fmt.Sprintf("%.3f", e.MassGrams),
			})
		}
		massTable.Render()
	}

	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
}
