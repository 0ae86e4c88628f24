package analytics_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func links(hrefs ...string) []pagescrape.Link {
	out := make([]pagescrape.Link, 0, len(hrefs))
	for _, h := range hrefs {
		out = append(out, pagescrape.Link{Href: h})
	}
	return out
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	t.Run("carries title and description", func(t *testing.T) {
		t.Parallel()

		rec := &pagescrape.ExtractedRecord{
			Metadata: &pagescrape.Metadata{
				Title: "Example",
				Meta: []pagescrape.MetaTag{
					{Name: "og:description", Content: "OG"},
					{Name: "description", Content: "Plain"},
				},
			},
		}

		got, err := analytics.Analyze(rec, "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, "Example", got.Metadata.Title)
		assert.Equal(t, "Plain", got.Metadata.Description)
	})

	t.Run("classifies links by hostname substring", func(t *testing.T) {
		t.Parallel()

		rec := &pagescrape.ExtractedRecord{Links: links(
			"https://example.com/a",
			"https://blog.example.com/b",
			"https://other.org/?ref=example.com",
			"https://other.org/",
		)}

		got, err := analytics.Analyze(rec, "https://example.com/start")

		require.NoError(t, err)
		stats := got.Statistics.Links
		assert.Equal(t, 4, stats.Total)
		assert.Equal(t, 3, stats.Internal)
		assert.Equal(t, 1, stats.External)
		assert.InDelta(t, 75.0, stats.Distribution.Internal, 1e-9)
		assert.InDelta(t, 25.0, stats.Distribution.External, 1e-9)
	})

	t.Run("passes structure through", func(t *testing.T) {
		t.Parallel()

		structure := &pagescrape.Structure{Elements: map[string]int{"p": 2}, Depth: 3}

		got, err := analytics.Analyze(&pagescrape.ExtractedRecord{Structure: structure}, "https://example.com")

		require.NoError(t, err)
		assert.Same(t, structure, got.Statistics.Structure)
	})

	t.Run("returns EINVALID for nil record", func(t *testing.T) {
		t.Parallel()

		_, err := analytics.Analyze(nil, "https://example.com")

		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	})

	t.Run("returns EINVALID for unparsable page URL", func(t *testing.T) {
		t.Parallel()

		_, err := analytics.Analyze(&pagescrape.ExtractedRecord{}, "://bad")

		assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	})
}

func TestLinkStats_DistributionSumsToHundred(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 13; n++ {
		for internal := 0; internal <= n; internal++ {
			t.Run(fmt.Sprintf("%d of %d", internal, n), func(t *testing.T) {
				t.Parallel()

				var hrefs []string
				for i := 0; i < n; i++ {
					if i < internal {
						hrefs = append(hrefs, "https://example.com/page")
					} else {
						hrefs = append(hrefs, "https://elsewhere.net/page")
					}
				}

				s := analytics.LinkStats(links(hrefs...), "example.com")

				assert.Equal(t, internal, s.Internal)
				assert.InDelta(t, 100.0, s.Distribution.Internal+s.Distribution.External, 1e-9)
			})
		}
	}
}

func TestLinkStats_NoLinks(t *testing.T) {
	t.Parallel()

	s := analytics.LinkStats(nil, "example.com")

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.Distribution.Internal)
	assert.Equal(t, 0.0, s.Distribution.External)
}

func TestImageStats(t *testing.T) {
	t.Parallel()

	t.Run("averages dimensions and counts alt text", func(t *testing.T) {
		t.Parallel()

		images := []pagescrape.Image{
			{Alt: "Logo", Dimensions: &pagescrape.Dimensions{Width: 100, Height: 50}},
			{Alt: "", Dimensions: &pagescrape.Dimensions{Width: 201, Height: 51}},
			{Alt: "Photo"},
		}

		s := analytics.ImageStats(images)

		assert.Equal(t, 3, s.Total)
		assert.Equal(t, 2, s.WithAlt)
		// (100+201+0)/3 = 100.33, (50+51+0)/3 = 33.67
		assert.Equal(t, &pagescrape.Dimensions{Width: 100, Height: 34}, s.AverageDimensions)
	})

	t.Run("has no average without images", func(t *testing.T) {
		t.Parallel()

		s := analytics.ImageStats(nil)

		assert.Equal(t, 0, s.Total)
		assert.Equal(t, 0, s.WithAlt)
		assert.Nil(t, s.AverageDimensions)
	})
}

func TestChartData(t *testing.T) {
	t.Parallel()

	t.Run("projects link and element series", func(t *testing.T) {
		t.Parallel()

		a := &pagescrape.AnalysisRecord{
			Statistics: pagescrape.Statistics{
				Links: pagescrape.LinkStats{Total: 5, Internal: 3, External: 2},
				Structure: &pagescrape.Structure{
					Elements: map[string]int{"p": 4, "div": 2, "a": 5},
				},
			},
		}

		got := analytics.ChartData(a)

		assert.Equal(t, []string{"Internal", "External"}, got.LinkDistribution.Labels)
		assert.Equal(t, []int{3, 2}, got.LinkDistribution.Data)
		assert.Equal(t, []string{"a", "div", "p"}, got.ElementDistribution.Labels)
		assert.Equal(t, []int{5, 2, 4}, got.ElementDistribution.Data)
	})

	t.Run("projects a nil analysis as empty series", func(t *testing.T) {
		t.Parallel()

		got := analytics.ChartData(nil)

		require.NotNil(t, got)
		assert.Equal(t, []string{"Internal", "External"}, got.LinkDistribution.Labels)
		assert.Equal(t, []int{0, 0}, got.LinkDistribution.Data)
		assert.Equal(t, []string{}, got.ElementDistribution.Labels)
		assert.Equal(t, []int{}, got.ElementDistribution.Data)
	})

	t.Run("yields empty element series without structure", func(t *testing.T) {
		t.Parallel()

		got := analytics.ChartData(&pagescrape.AnalysisRecord{})

		assert.Equal(t, []int{0, 0}, got.LinkDistribution.Data)
		assert.Empty(t, got.ElementDistribution.Labels)
		assert.Empty(t, got.ElementDistribution.Data)
	})
}
