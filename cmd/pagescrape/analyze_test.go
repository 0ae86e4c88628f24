package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints statistics", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain(t).Run(context.Background(), []string{"analyze", pageURL}, &stdout, &stderr)

		require.NoError(t, err)
		var a pagescrape.AnalysisRecord
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &a))
		assert.Equal(t, "Acme Catalog", a.Metadata.Title)
		assert.Equal(t, "All products", a.Metadata.Description)
		assert.Equal(t, 3, a.Statistics.Links.Total)
		assert.Equal(t, 2, a.Statistics.Links.Internal)
		assert.Equal(t, 1, a.Statistics.Links.External)
		assert.InDelta(t, 200.0/3, a.Statistics.Links.Distribution.Internal, 1e-9)
		assert.Equal(t, 0, a.Statistics.Images.Total)
		assert.Nil(t, a.Statistics.Images.AverageDimensions)
	})

	t.Run("prints chart series", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newMain(t).Run(context.Background(), []string{"analyze", "--chart", pageURL}, &stdout, &stderr)

		require.NoError(t, err)
		var c pagescrape.ChartProjection
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &c))
		assert.Equal(t, []string{"Internal", "External"}, c.LinkDistribution.Labels)
		assert.Equal(t, []int{2, 1}, c.LinkDistribution.Data)
		assert.Contains(t, c.ElementDistribution.Labels, "section")
	})
}
