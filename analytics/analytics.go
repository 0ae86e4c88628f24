// Package analytics derives statistics from an extracted page record.
package analytics

import (
	"math"
	"net/url"
	"slices"
	"strings"

	"github.com/fwojciec/pagescrape"
)

// Chart labels for the link distribution series.
const (
	LabelInternal = "Internal"
	LabelExternal = "External"
)

// Analyze computes link, image and structure statistics for rec.
//
// pageURL is the address of the analysed page. A link counts as internal
// when its href contains the page's hostname anywhere, so a path or query
// that mentions the hostname is also counted as internal. A page URL
// without a host makes every link internal.
func Analyze(rec *pagescrape.ExtractedRecord, pageURL string) (*pagescrape.AnalysisRecord, error) {
	if rec == nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "analyze: record required")
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "analyze: invalid page URL: %v", err)
	}

	out := &pagescrape.AnalysisRecord{
		Statistics: pagescrape.Statistics{
			Links:     LinkStats(rec.Links, u.Hostname()),
			Images:    ImageStats(rec.Images),
			Structure: rec.Structure,
		},
	}
	if m := rec.Metadata; m != nil {
		out.Metadata.Title = m.Title
		for _, t := range m.Meta {
			if t.Name == "description" {
				out.Metadata.Description = t.Content
				break
			}
		}
	}
	return out, nil
}

// LinkStats classifies links as internal or external to hostname.
func LinkStats(links []pagescrape.Link, hostname string) pagescrape.LinkStats {
	s := pagescrape.LinkStats{Total: len(links)}
	for _, l := range links {
		if strings.Contains(l.Href, hostname) {
			s.Internal++
		} else {
			s.External++
		}
	}
	s.Distribution = pagescrape.Distribution{
		Internal: percent(s.Internal, s.Total),
		External: percent(s.External, s.Total),
	}
	return s
}

// ImageStats counts images with alt text and averages their dimensions.
// Images of unknown size count as 0x0.
func ImageStats(images []pagescrape.Image) pagescrape.ImageStats {
	s := pagescrape.ImageStats{Total: len(images)}
	if s.Total == 0 {
		return s
	}

	var width, height int
	for _, img := range images {
		if img.Alt != "" {
			s.WithAlt++
		}
		if img.Dimensions != nil {
			width += img.Dimensions.Width
			height += img.Dimensions.Height
		}
	}
	s.AverageDimensions = &pagescrape.Dimensions{
		Width:  roundDiv(width, s.Total),
		Height: roundDiv(height, s.Total),
	}
	return s
}

// ChartData reshapes an analysis into chart series. Element labels are
// sorted by tag name. A nil analysis gives zero link counts and no
// elements.
func ChartData(a *pagescrape.AnalysisRecord) *pagescrape.ChartProjection {
	if a == nil {
		a = &pagescrape.AnalysisRecord{}
	}
	links := a.Statistics.Links
	out := &pagescrape.ChartProjection{
		LinkDistribution: pagescrape.Series{
			Labels: []string{LabelInternal, LabelExternal},
			Data:   []int{links.Internal, links.External},
		},
		ElementDistribution: pagescrape.Series{
			Labels: []string{},
			Data:   []int{},
		},
	}

	if s := a.Statistics.Structure; s != nil {
		tags := make([]string, 0, len(s.Elements))
		for tag := range s.Elements {
			tags = append(tags, tag)
		}
		slices.Sort(tags)
		for _, tag := range tags {
			out.ElementDistribution.Labels = append(out.ElementDistribution.Labels, tag)
			out.ElementDistribution.Data = append(out.ElementDistribution.Data, s.Elements[tag])
		}
	}
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func roundDiv(sum, n int) int {
	return int(math.Floor(float64(sum)/float64(n) + 0.5))
}
