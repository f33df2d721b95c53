// SPDX-License-Identifier: MIT

package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simmap/matrix"
	"github.com/katalvlaran/simmap/metric"
)

const supportedSet = "pearson, spearman, kendall, euclidean, maximum, manhattan, canberra, binary, minkowski"

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := map[string]metric.Family{
		"pearson":   metric.Correlation,
		"spearman":  metric.Correlation,
		"kendall":   metric.Correlation,
		"euclidean": metric.Distance,
		"maximum":   metric.Distance,
		"manhattan": metric.Distance,
		"canberra":  metric.Distance,
		"binary":    metric.Distance,
		"minkowski": metric.Distance,
		"Pearson":   metric.Unsupported, // case-sensitive
		"foo":       metric.Unsupported,
		"":          metric.Unsupported,
	}
	for name, want := range cases {
		assert.Equal(t, want, metric.Classify(name), name)
	}
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range metric.Supported() {
		m, err := metric.Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
		assert.True(t, m.Valid())
	}
	assert.Equal(t, "Method(0)", metric.Method(0).String())
	assert.Equal(t, metric.Unsupported, metric.Method(42).Family())
}

func TestParseUnsupportedListsSupportedSet(t *testing.T) {
	t.Parallel()

	_, err := metric.Parse("foo")
	require.ErrorIs(t, err, metric.ErrUnsupportedMethod)
	assert.True(t, matrix.IsValidation(err))
	assert.Contains(t, err.Error(), `"foo"`)
	assert.Contains(t, err.Error(), supportedSet)
	assert.Equal(t, supportedSet, metric.SupportedString())
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	ms, err := metric.ParseAll([]string{"kendall", "euclidean"})
	require.NoError(t, err)
	assert.Equal(t, []metric.Method{metric.Kendall, metric.Euclidean}, ms)

	_, err = metric.ParseAll(nil)
	require.ErrorIs(t, err, metric.ErrNoMethods)
	_, err = metric.ParseAll([]string{"binary", "binary"})
	require.ErrorIs(t, err, metric.ErrDuplicateMethod)
	_, err = metric.ParseAll([]string{"pearson", "bogus"})
	require.ErrorIs(t, err, metric.ErrUnsupportedMethod)
}

func TestFamilies(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []metric.Method{metric.Pearson, metric.Spearman, metric.Kendall}, metric.CorrelationMethods())
	assert.Len(t, metric.DistanceMethods(), 6)
	assert.True(t, metric.Spearman.IsCorrelation())
	assert.False(t, metric.Canberra.IsCorrelation())
	assert.Equal(t, "distance", metric.Distance.String())
}
