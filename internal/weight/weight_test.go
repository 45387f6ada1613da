package weight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroIsPossibleAndCheapest(t *testing.T) {
	assert.True(t, Zero.IsPossible())
	assert.True(t, Less(Zero, Of(1)))
}

func TestInfiniteIsMaximum(t *testing.T) {
	assert.False(t, Infinite.IsPossible())
	assert.True(t, Less(Of(100), Infinite))
	assert.True(t, Equal(Infinite, Infinite))
}

func TestCompareLexicographic(t *testing.T) {
	assert.True(t, Less(Of(0, 5), Of(1, 0)), "first level dominates")
	assert.True(t, Less(Of(1, 0), Of(1, 1)), "tiebreak on second level")
	assert.True(t, Equal(Of(1, 2), Of(1, 2)))
}

func TestCompareUnequalLengthShorterWins(t *testing.T) {
	assert.True(t, Less(Of(1), Of(1, 0)))
}

func TestAddIsAssociativeInEffect(t *testing.T) {
	a, b, c := Of(1), Of(2), Of(3)
	left := Add(Add(a, b), c)
	right := Add(a, Add(b, c))
	assert.True(t, Equal(left, right))
}

func TestAddAbsorbsInfinite(t *testing.T) {
	assert.True(t, Equal(Add(Infinite, Of(1)), Infinite))
	assert.True(t, Equal(Add(Of(1), Infinite), Infinite))
}

func TestRankPreservesOrderingForSmallLevels(t *testing.T) {
	assert.Less(t, Of(0, 5).Rank(), Of(1, 0).Rank())
	assert.Less(t, Of(1, 0).Rank(), Of(1, 1).Rank())
	assert.Less(t, Of(1, 1).Rank(), Infinite.Rank())
}

func TestAddMonotone(t *testing.T) {
	base := Of(1)
	cheaper := Add(base, Zero)
	pricier := Add(base, Of(1))
	assert.True(t, Less(cheaper, pricier) || Equal(cheaper, pricier))
}
