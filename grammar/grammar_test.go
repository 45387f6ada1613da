package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringSingleCall(t *testing.T) {
	program, err := ParseString("test", `add(1, 2)`)
	require.NoError(t, err)
	require.Len(t, program.Calls, 1)

	call := program.Calls[0]
	assert.Equal(t, "add", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "1", *call.Args[0].Int)
	assert.Equal(t, "2", *call.Args[1].Int)
}

func TestParseStringMixedLiteralKinds(t *testing.T) {
	program, err := ParseString("test", `combine(1, 2.5, "hi", true)`)
	require.NoError(t, err)
	require.Len(t, program.Calls, 1)

	args := program.Calls[0].Args
	require.Len(t, args, 4)
	assert.Equal(t, "1", *args[0].Int)
	assert.Equal(t, "2.5", *args[1].Float)
	assert.Equal(t, `"hi"`, *args[2].String)
	assert.Equal(t, "true", *args[3].Bool)
}

func TestParseStringNullaryCall(t *testing.T) {
	program, err := ParseString("test", `greet()`)
	require.NoError(t, err)
	require.Len(t, program.Calls, 1)
	assert.Empty(t, program.Calls[0].Args)
}

func TestParseStringMultipleStatements(t *testing.T) {
	program, err := ParseString("test", "add(1, 2);\nadd(3, 4);\n")
	require.NoError(t, err)
	assert.Len(t, program.Calls, 2)
}

func TestParseStringRejectsGarbage(t *testing.T) {
	_, err := ParseString("test", `add(1, `)
	assert.Error(t, err)
}
