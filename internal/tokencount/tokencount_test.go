package tokencount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 0, Count([]byte("")))
}

func TestCountIsDeterministic(t *testing.T) {
	text := []byte("package main\n\nfunc main() {}\n")
	a := Count(text)
	b := Count(text)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0)
}
