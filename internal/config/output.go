package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat writes one JSON document per position instead of text
	JSONFormat bool

	// ASCII draws pieces as FEN letters instead of Unicode glyphs
	ASCII bool

	// ShowBoard includes a diagram with each text report
	ShowBoard bool

	// ListMoves includes the legal moves in each report
	ListMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
