package config

import (
	"os"
	"path/filepath"
	"strconv"

	"masssize/internal/errors"
)

// Config represents the complete analysis configuration.
// Every threshold the pipeline uses lives here as a named field so tests
// can vary them independently instead of reaching for inline literals.
type Config struct {
	Catalog   CatalogConfig
	Cosmology CosmologyConfig
	Cuts      CutConfig
	Output    OutputConfig
}

// CatalogConfig holds input catalog settings
type CatalogConfig struct {
	Path        string
	QualityFlag float64 // SERSIC_OK value that marks a valid profile fit
}

// CosmologyConfig holds the flat ΛCDM parameters used for unit conversion
type CosmologyConfig struct {
	H0     float64 // Hubble constant, km/s/Mpc
	OmegaM float64 // matter density fraction
}

// CutConfig holds the sample selection thresholds
type CutConfig struct {
	MinSizeKpc          float64 // minimum physical half-light radius
	MorphologyThreshold float64 // Sérsic index split between disk and spheroid
	MassPivot           float64 // pivot log-mass shared by all fits
}

// OutputConfig holds figure and export destinations
type OutputConfig struct {
	Dir            string
	RelationPlot   string
	MorphologyPlot string
	DPI            int
	ExportPath     string // optional xlsx summary; empty disables export
}

// RelationPath returns the full path of the unsplit relation figure
func (o OutputConfig) RelationPath() string {
	return filepath.Join(o.Dir, o.RelationPlot)
}

// MorphologyPath returns the full path of the morphology-split figure
func (o OutputConfig) MorphologyPath() string {
	return filepath.Join(o.Dir, o.MorphologyPlot)
}

// Default returns the reference analysis configuration
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			Path:        filepath.Join("data", "nsa_v1_0_1.fits"),
			QualityFlag: 1,
		},
		Cosmology: CosmologyConfig{
			H0:     70,
			OmegaM: 0.3,
		},
		Cuts: CutConfig{
			MinSizeKpc:          0.5,
			MorphologyThreshold: 2.5,
			MassPivot:           10.0,
		},
		Output: OutputConfig{
			Dir:            ".",
			RelationPlot:   "mass_size_relation_fit.png",
			MorphologyPlot: "mass_size_relation_morphology.png",
			DPI:            300,
		},
	}
}

// Load builds the configuration from defaults plus environment overrides
// and validates it
func Load() (*Config, error) {
	cfg := Default()

	cfg.Catalog.Path = getEnvOrDefault("NSA_CATALOG", cfg.Catalog.Path)
	cfg.Cosmology.H0 = getEnvFloatOrDefault("MASSSIZE_H0", cfg.Cosmology.H0)
	cfg.Cosmology.OmegaM = getEnvFloatOrDefault("MASSSIZE_OMEGA_M", cfg.Cosmology.OmegaM)
	cfg.Cuts.MinSizeKpc = getEnvFloatOrDefault("MASSSIZE_MIN_SIZE_KPC", cfg.Cuts.MinSizeKpc)
	cfg.Cuts.MorphologyThreshold = getEnvFloatOrDefault("MASSSIZE_SERSIC_SPLIT", cfg.Cuts.MorphologyThreshold)
	cfg.Cuts.MassPivot = getEnvFloatOrDefault("MASSSIZE_MASS_PIVOT", cfg.Cuts.MassPivot)
	cfg.Output.Dir = getEnvOrDefault("MASSSIZE_OUT_DIR", cfg.Output.Dir)
	cfg.Output.DPI = getEnvIntOrDefault("MASSSIZE_DPI", cfg.Output.DPI)
	cfg.Output.ExportPath = getEnvOrDefault("MASSSIZE_EXPORT", cfg.Output.ExportPath)

	if err := validateConfig(&cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Catalog.Path == "" {
		return errors.ConfigInvalid("catalog path is required")
	}
	if cfg.Cosmology.H0 <= 0 {
		return errors.ConfigInvalid("H0 must be positive")
	}
	if cfg.Cosmology.OmegaM < 0 || cfg.Cosmology.OmegaM > 1 {
		return errors.ConfigInvalid("OmegaM must be within [0, 1]")
	}
	if cfg.Cuts.MinSizeKpc < 0 {
		return errors.ConfigInvalid("minimum size cut cannot be negative")
	}
	if cfg.Output.DPI <= 0 {
		return errors.ConfigInvalid("DPI must be positive")
	}
	if cfg.Output.RelationPlot == "" || cfg.Output.MorphologyPlot == "" {
		return errors.ConfigInvalid("figure filenames are required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
