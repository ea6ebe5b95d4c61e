package config

import "errors"

// AnalysisConfig holds the configurable business constants of the
// analysis and layout pipeline. The geometry constants are part of the
// renderer contract and identical across environments; the caps exist so
// hosted environments can bound work per request.
type AnalysisConfig struct {
	// Layout geometry
	RingRadiusFactor    float64
	CurveOffset         float64
	DefaultCanvasWidth  float64
	DefaultCanvasHeight float64

	// Performance limits
	MaxRecordsPerAnalysis int
	MaxNodesPerQuery      int

	// Similarity search
	SimilarityThreshold float64
	MaxSimilarResults   int
}

// DefaultAnalysisConfig returns the default configuration
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		RingRadiusFactor:    0.35,
		CurveOffset:         20.0,
		DefaultCanvasWidth:  800,
		DefaultCanvasHeight: 600,

		MaxRecordsPerAnalysis: 50000,
		MaxNodesPerQuery:      1000,

		SimilarityThreshold: 0.3,
		MaxSimilarResults:   10,
	}
}

// ProductionAnalysisConfig returns production-specific configuration
func ProductionAnalysisConfig() *AnalysisConfig {
	cfg := DefaultAnalysisConfig()

	// Tighter request bounds for shared deployments
	cfg.MaxRecordsPerAnalysis = 10000
	cfg.MaxNodesPerQuery = 500

	return cfg
}

// DevelopmentAnalysisConfig returns development-specific configuration
func DevelopmentAnalysisConfig() *AnalysisConfig {
	cfg := DefaultAnalysisConfig()

	cfg.MaxRecordsPerAnalysis = 100000
	cfg.MaxNodesPerQuery = 10000

	return cfg
}

// LoadAnalysisConfig loads configuration based on environment
func LoadAnalysisConfig(environment string) *AnalysisConfig {
	switch environment {
	case "production":
		return ProductionAnalysisConfig()
	case "development":
		return DevelopmentAnalysisConfig()
	default:
		return DefaultAnalysisConfig()
	}
}

// Validate checks if the configuration is valid
func (c *AnalysisConfig) Validate() error {
	if c.RingRadiusFactor <= 0 || c.RingRadiusFactor > 0.5 {
		return errors.New("ring radius factor must be in (0, 0.5]")
	}
	if c.DefaultCanvasWidth <= 0 || c.DefaultCanvasHeight <= 0 {
		return errors.New("default canvas dimensions must be positive")
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return errors.New("similarity threshold must be in [0, 1]")
	}
	return nil
}
