package model

// Source tier identifiers
const (
	TierGraphQL   = "graphql"
	TierScrape    = "scrape"
	TierSynthetic = "synthetic"
)

// Render modes
const (
	ModeColor   = "color"
	ModeSymbols = "symbols"
	ModeNumbers = "numbers"
)

// Output formats
const (
	OutputHeatmap = "heatmap"
	OutputJSON    = "json"
)
