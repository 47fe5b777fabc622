package figura

// ConvertOptions holds configuration for conversion.
type ConvertOptions struct {
	// Grouping thresholds
	maxTitleLen    int
	maxGapParas    int
	pageWidthRatio float64

	// Asset extraction
	assetsDir     string
	extractAssets bool

	// Include the grouping reasoning log in the report
	debug bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		maxTitleLen:    45,
		maxGapParas:    1,
		pageWidthRatio: 0.95,
		assetsDir:      "assets/media",
		extractAssets:  false,
		debug:          false,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return o
}
