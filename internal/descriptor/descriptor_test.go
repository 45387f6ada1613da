package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternReturnsSamePointerForSameName(t *testing.T) {
	r := NewRegistry()

	a := r.Intern("Int")
	b := r.Intern("Int")

	assert.True(t, Same(a, b), "interning the same name twice must yield the same pointer")
}

func TestInternDistinguishesDifferentNames(t *testing.T) {
	r := NewRegistry()

	a := r.Intern("Int")
	b := r.Intern("Double")

	assert.False(t, Same(a, b))
}

func TestLookupMiss(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup("Nowhere")
	assert.False(t, ok)
}

func TestDescriptorsWithEqualNameFromDifferentRegistriesAreDistinct(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()

	a := r1.Intern("Int")
	b := r2.Intern("Int")

	assert.False(t, Same(a, b), "identity is by address, not by Name")
}
