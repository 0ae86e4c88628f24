package pagescrape

// AnalysisRecord holds statistics derived from an ExtractedRecord.
type AnalysisRecord struct {
	Metadata   AnalysisMetadata `json:"metadata"`
	Statistics Statistics       `json:"statistics"`
}

// AnalysisMetadata is the subset of page metadata carried into an analysis.
type AnalysisMetadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Statistics groups link, image and structure statistics.
type Statistics struct {
	Links     LinkStats  `json:"links"`
	Images    ImageStats `json:"images"`
	Structure *Structure `json:"structure,omitempty"`
}

// LinkStats counts internal and external links.
type LinkStats struct {
	Total        int          `json:"total"`
	Internal     int          `json:"internal"`
	External     int          `json:"external"`
	Distribution Distribution `json:"distribution"`
}

// Distribution holds internal and external shares as percentages.
// Both are 0 when there are no links.
type Distribution struct {
	Internal float64 `json:"internal"`
	External float64 `json:"external"`
}

// ImageStats summarises the images of a page.
type ImageStats struct {
	Total   int `json:"total"`
	WithAlt int `json:"withAlt"`

	// AverageDimensions is nil when the page has no images.
	AverageDimensions *Dimensions `json:"averageDimensions"`
}

// ChartProjection reshapes an analysis into label/value series ready for a
// charting library.
type ChartProjection struct {
	LinkDistribution    Series `json:"linkDistribution"`
	ElementDistribution Series `json:"elementDistribution"`
}

// Series is a list of labels with one value per label.
type Series struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
