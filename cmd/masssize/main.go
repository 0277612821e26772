package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"masssize/adapters/export"
	"masssize/adapters/fits"
	"masssize/adapters/render"
	"masssize/domain/catalog"
	"masssize/internal/analysis"
	"masssize/internal/config"
	"masssize/internal/inspect"
	"masssize/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "masssize",
		Short: "Galaxy stellar mass-size relation analysis for the NASA-Sloan Atlas",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// optional; environment alone is a valid configuration source
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newInspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var catalogPath, outDir, exportPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full mass-size analysis and write the diagnostic figures",
		Long: `Load the NSA catalog, apply quality and physical-size cuts, convert
angular sizes to kpc under a flat LCDM cosmology, fit the mass-size
relation (full sample and split by morphology) and write two figures.

Example: masssize analyze --catalog data/nsa_v1_0_1.fits --out-dir results`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if catalogPath != "" {
				cfg.Catalog.Path = catalogPath
			}
			if outDir != "" {
				cfg.Output.Dir = outDir
			}
			if exportPath != "" {
				cfg.Output.ExportPath = exportPath
			}

			log := logging.New(verbose)
			pipeline := analysis.New(
				*cfg,
				fits.NewSource(log),
				render.NewPNG(cfg.Output.DPI, log),
				export.NewExcel(log),
				log,
				os.Stdout,
			)
			_, err = pipeline.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the NSA FITS catalog (overrides NSA_CATALOG)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for the output figures")
	cmd.Flags().StringVar(&exportPath, "export", "", "optional xlsx summary path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func newInspectCmd() *cobra.Command {
	var catalogPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print catalog structure, column names and sanity checks without running the analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if catalogPath != "" {
				cfg.Catalog.Path = catalogPath
			}

			log := logging.New(verbose)
			cat, err := fits.NewSource(log).Load(cmd.Context(), cfg.Catalog.Path)
			if err != nil {
				return err
			}

			fmt.Printf("Number of galaxies in NSA catalog: %d\n", cat.Len())
			inspect.Columns(os.Stdout, cat.ColumnNames())
			for _, name := range []string{catalog.ColMass, catalog.ColSize} {
				s := catalog.Summarize(cat.MustColumn(name))
				fmt.Printf("\n=== %s sanity check ===\nMin: %g\nMax: %g\nMedian: %g\n", name, s.Min, s.Max, s.Median)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the NSA FITS catalog (overrides NSA_CATALOG)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}
