package analysis

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"masssize/domain/catalog"
	"masssize/domain/cosmology"
	"masssize/domain/morphology"
	"masssize/domain/relation"
	"masssize/internal/config"
	"masssize/internal/errors"
	"masssize/internal/inspect"
	"masssize/ports"
)

// Pipeline runs the mass-size analysis end to end: catalog load, column
// inspection, quality cuts, unit conversion, size cut, morphology split,
// relation fits and figure rendering. All stages are pure forward
// transformations; only the renderer and exporter write anything.
type Pipeline struct {
	cfg      config.Config
	source   ports.CatalogSource
	renderer ports.Renderer
	exporter ports.Exporter // optional; nil disables export
	log      zerolog.Logger
	out      io.Writer // human-readable diagnostics
}

// New wires a pipeline from its ports
func New(cfg config.Config, source ports.CatalogSource, renderer ports.Renderer, exporter ports.Exporter, log zerolog.Logger, out io.Writer) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		source:   source,
		renderer: renderer,
		exporter: exporter,
		log:      log,
		out:      out,
	}
}

// Run executes the full analysis and returns its report
func (p *Pipeline) Run(ctx context.Context) (*ports.Report, error) {
	started := time.Now()
	report := &ports.Report{
		RunID:       uuid.NewString(),
		CatalogPath: p.cfg.Catalog.Path,
		GeneratedAt: started,
	}
	p.log.Info().Str("run_id", report.RunID).Str("catalog", p.cfg.Catalog.Path).Msg("analysis started")

	// Stage 1: load
	cat, err := p.source.Load(ctx, p.cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	report.TotalRows = cat.Len()
	fmt.Fprintf(p.out, "Number of galaxies in NSA catalog: %d\n", cat.Len())

	// Stage 2: column inspection (informational only)
	inspect.Columns(p.out, cat.ColumnNames())

	mass := cat.MustColumn(catalog.ColMass)
	size := cat.MustColumn(catalog.ColSize)
	flag := cat.MustColumn(catalog.ColFlag)
	sersicN := cat.MustColumn(catalog.ColSersicN)
	z := cat.MustColumn(catalog.ColZ)

	// Pre-cut sanity checks
	report.MassSummary = catalog.Summarize(mass)
	report.SizeSummary = catalog.Summarize(size)
	printSummary(p.out, "SERSIC_MASS", report.MassSummary)
	printSummary(p.out, "SERSIC_TH50", report.SizeSummary)

	// Stage 3: quality cuts
	good := catalog.QualityMask(flag, mass, size, p.cfg.Catalog.QualityFlag)
	report.QualityRows = good.Count()
	fmt.Fprintf(p.out, "\nNumber of galaxies before cuts: %d\n", cat.Len())
	fmt.Fprintf(p.out, "Number of galaxies after quality cuts: %d\n", report.QualityRows)

	goodMass := good.Apply(mass)
	goodSize := good.Apply(size)
	goodN := good.Apply(sersicN)
	goodZ := good.Apply(z)

	logM := make([]float64, len(goodMass))
	for i, m := range goodMass {
		logM[i] = math.Log10(m)
	}

	// Stage 4: physical conversions
	cosmo := cosmology.New(p.cfg.Cosmology.H0, p.cfg.Cosmology.OmegaM)
	sizeKpc, err := cosmo.SizesKpc(goodSize, goodZ)
	if err != nil {
		return nil, errors.Wrap(err, "unit conversion failed")
	}

	// Stage 5: minimum physical size cut
	sizeCut := catalog.GreaterThan(sizeKpc, p.cfg.Cuts.MinSizeKpc)
	logMClean := sizeCut.Apply(logM)
	sizeKpcClean := sizeCut.Apply(sizeKpc)
	nClean := sizeCut.Apply(goodN)
	report.SizeCutRows = len(logMClean)
	fmt.Fprintf(p.out, "\nAfter size cut (Re > %g kpc):\nNumber of galaxies: %d\n",
		p.cfg.Cuts.MinSizeKpc, report.SizeCutRows)

	// Stage 6: morphology split
	split := morphology.Classify(nClean, p.cfg.Cuts.MorphologyThreshold)
	report.DiskCount = split.Disk.Count()
	report.SpheroidCount = split.Spheroid.Count()
	report.Unclassified = split.Unclassified
	fmt.Fprintf(p.out, "\nMorphology split:\n")
	fmt.Fprintf(p.out, "Disk-like galaxies (n < %g): %d\n", p.cfg.Cuts.MorphologyThreshold, report.DiskCount)
	fmt.Fprintf(p.out, "Spheroid-like galaxies (n >= %g): %d\n", p.cfg.Cuts.MorphologyThreshold, report.SpheroidCount)
	fmt.Fprintf(p.out, "Unclassified (non-finite Sersic index): %d\n", report.Unclassified)

	// Stage 7: relation fits at a shared pivot
	logRe := make([]float64, len(sizeKpcClean))
	for i, s := range sizeKpcClean {
		logRe[i] = math.Log10(s)
	}

	pivot := p.cfg.Cuts.MassPivot
	report.FitAll, err = relation.FitOLS(logMClean, logRe, pivot)
	if err != nil {
		return nil, errors.Wrap(err, "full-sample fit failed")
	}
	report.ScatterDex = relation.Scatter(logMClean, logRe, report.FitAll)

	report.FitDisk, err = relation.FitOLS(split.Disk.Apply(logMClean), split.Disk.Apply(logRe), pivot)
	if err != nil {
		return nil, errors.Wrap(err, "disk fit failed")
	}
	report.FitSpheroid, err = relation.FitOLS(split.Spheroid.Apply(logMClean), split.Spheroid.Apply(logRe), pivot)
	if err != nil {
		return nil, errors.Wrap(err, "spheroid fit failed")
	}

	printFits(p.out, report, pivot)

	// Stage 8: figures; the two writes are independent side effects
	all := ports.Series{Label: "Galaxies", LogM: logMClean, SizeKpc: sizeKpcClean, Fit: report.FitAll}
	disk := ports.Series{
		Label:   fmt.Sprintf("Disk-like (n < %g)", p.cfg.Cuts.MorphologyThreshold),
		LogM:    split.Disk.Apply(logMClean),
		SizeKpc: split.Disk.Apply(sizeKpcClean),
		Fit:     report.FitDisk,
	}
	spheroid := ports.Series{
		Label:   fmt.Sprintf("Spheroid-like (n >= %g)", p.cfg.Cuts.MorphologyThreshold),
		LogM:    split.Spheroid.Apply(logMClean),
		SizeKpc: split.Spheroid.Apply(sizeKpcClean),
		Fit:     report.FitSpheroid,
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.renderer.RenderRelation(p.cfg.Output.RelationPath(), all)
	})
	g.Go(func() error {
		return p.renderer.RenderMorphology(p.cfg.Output.MorphologyPath(), disk, spheroid)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.exporter != nil && p.cfg.Output.ExportPath != "" {
		if err := p.exporter.Export(p.cfg.Output.ExportPath, report); err != nil {
			return nil, err
		}
	}

	p.log.Info().
		Str("run_id", report.RunID).
		Dur("elapsed", time.Since(started)).
		Msg("analysis complete")
	fmt.Fprintln(p.out, "\nAnalysis complete.")
	return report, nil
}

func printSummary(w io.Writer, name string, s catalog.Summary) {
	fmt.Fprintf(w, "\n=== %s sanity check ===\n", name)
	fmt.Fprintf(w, "Min: %g\n", s.Min)
	fmt.Fprintf(w, "Max: %g\n", s.Max)
	fmt.Fprintf(w, "Median: %g\n", s.Median)
}

func printFits(w io.Writer, r *ports.Report, pivot float64) {
	fmt.Fprintf(w, "\nMass-size relation fit:\n")
	fmt.Fprintf(w, "Slope alpha = %.3f\n", r.FitAll.Alpha)
	fmt.Fprintf(w, "Intercept beta = %.3f  (at logM = %g)\n", r.FitAll.Beta, pivot)
	fmt.Fprintf(w, "Scatter (dex in log Re): %.3f\n", r.ScatterDex)

	fmt.Fprintf(w, "\nMass-size relation by morphology:\n")
	fmt.Fprintf(w, "Disk-like: alpha = %.3f, beta = %.3f\n", r.FitDisk.Alpha, r.FitDisk.Beta)
	fmt.Fprintf(w, "Spheroid-like: alpha = %.3f, beta = %.3f\n", r.FitSpheroid.Alpha, r.FitSpheroid.Beta)
}
