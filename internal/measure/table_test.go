package measure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAppendAccumulates(t *testing.T) {
	tb := NewTable()
	require.NoError(t, tb.Append(3, 4, 0, 5))

	assert.Equal(t, 4, tb.Len())
	assert.Equal(t, 12.0, tb.Total())
	assert.Equal(t, []float64{3, 7, 7, 12}, tb.Distances())

	h, ok := tb.Height(1)
	assert.True(t, ok)
	assert.Equal(t, 4.0, h)
	h, ok = tb.Height(0)
	assert.True(t, ok)
	assert.Equal(t, 3.0, h)
	_, ok = tb.Height(4)
	assert.False(t, ok)
}

func TestTableRejectsBadHeights(t *testing.T) {
	tb := NewTable()
	for _, h := range []float64{-1, math.NaN(), math.Inf(1)} {
		err := tb.Append(h)
		assert.ErrorIs(t, err, ErrNegative)
	}
	assert.Equal(t, 0, tb.Len())
}

func TestTableRecordIsPrefixOnly(t *testing.T) {
	tb := NewTable()
	require.NoError(t, tb.Record(0, 2))
	require.NoError(t, tb.Record(1, 3))

	// re-measuring keeps the first value so distances never decrease
	require.NoError(t, tb.Record(0, 100))
	assert.Equal(t, []float64{2, 5}, tb.Distances())

	assert.ErrorIs(t, tb.Record(3, 1), ErrGap)
	assert.ErrorIs(t, tb.Record(-1, 1), ErrGap)
	assert.Equal(t, 2, tb.Len())
}

func TestTableDistancesIsACopy(t *testing.T) {
	tb := NewTable()
	require.NoError(t, tb.Append(1, 1))
	d := tb.Distances()
	d[0] = 99
	assert.Equal(t, []float64{1, 2}, tb.Distances())
}

func TestTableReset(t *testing.T) {
	tb := NewTable()
	require.NoError(t, tb.Append(1, 2, 3))
	tb.Reset()
	assert.Equal(t, 0, tb.Len())
	assert.Equal(t, 0.0, tb.Total())
	require.NoError(t, tb.Append(5))
	assert.Equal(t, []float64{5}, tb.Distances())
}
