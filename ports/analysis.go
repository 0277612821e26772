package ports

import (
	"context"
	"time"

	"masssize/domain/catalog"
	"masssize/domain/relation"
)

// CatalogSource loads a galaxy catalog from a backing store
type CatalogSource interface {
	Load(ctx context.Context, path string) (*catalog.Catalog, error)
}

// Series is one scatter population plus its fitted relation
type Series struct {
	Label   string
	LogM    []float64
	SizeKpc []float64
	Fit     relation.Fit
}

// Renderer produces the diagnostic figures
type Renderer interface {
	// RenderRelation draws the unsplit sample with its fit line
	RenderRelation(path string, sample Series) error
	// RenderMorphology draws the disk and spheroid populations with a
	// fit line each
	RenderMorphology(path string, disk, spheroid Series) error
}

// Exporter writes a machine-consumable summary of an analysis run
type Exporter interface {
	Export(path string, report *Report) error
}

// Report captures everything a single analysis run produced
type Report struct {
	RunID       string
	CatalogPath string
	GeneratedAt time.Time

	// Stage counts
	TotalRows    int
	QualityRows  int
	SizeCutRows  int
	DiskCount    int
	SpheroidCount int
	Unclassified int // finite-mass rows whose Sérsic index is non-finite

	// Pre-cut sanity checks
	MassSummary catalog.Summary
	SizeSummary catalog.Summary

	// Fits
	FitAll      relation.Fit
	FitDisk     relation.Fit
	FitSpheroid relation.Fit
	ScatterDex  float64 // residual scatter of the full-sample fit
}
