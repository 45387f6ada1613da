package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoneIsZeroValue(t *testing.T) {
	var zero Insight
	assert.Equal(t, None, zero)
}

func TestLessIsStrict(t *testing.T) {
	assert.True(t, Less(None, Insight(1)))
	assert.False(t, Less(Insight(1), None))
	assert.False(t, Less(None, None))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Insight(3), Insight(3)))
	assert.False(t, Equal(Insight(3), Insight(4)))
}
