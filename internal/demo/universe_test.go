package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overcall/internal/dispatcherrors"
	"overcall/internal/value"
)

func TestAddExactMatchBeatsConversion(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	result, err := u.Dispatch("add", []value.Value{int64(1), int64(2)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result)
}

func TestAddUniqueConversionPath(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	result, err := u.Dispatch("add", []value.Value{int64(1), 2.0})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result)
}

func TestCombineCrossedConversionsAreAmbiguous(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	_, err = u.Dispatch("combine", []value.Value{int64(1), int64(2)})
	require.Error(t, err)
	var ambig *dispatcherrors.OverloadingAmbiguityError
	require.ErrorAs(t, err, &ambig)
}

func TestGreetIsNullaryAndAlwaysResolves(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	result, err := u.Dispatch("greet", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", result)
}

func TestDescribeExactStringMatchHasNoViableBoolConversion(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	result, err := u.Dispatch("describe", []value.Value{"hi"})
	require.NoError(t, err)
	assert.Equal(t, "string:hi", result)
}

func TestDescribeConvertsIntThroughInsightSensitiveEdge(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	zero, err := u.Dispatch("describe", []value.Value{int64(0)})
	require.NoError(t, err)
	assert.Equal(t, "bool:false", zero)

	nonzero, err := u.Dispatch("describe", []value.Value{int64(7)})
	require.NoError(t, err)
	assert.Equal(t, "bool:true", nonzero)
}

func TestDispatchUnknownNameFails(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	_, err = u.Dispatch("nope", nil)
	assert.Error(t, err)
}
