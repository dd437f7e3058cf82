package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRow(t *testing.T) {
	r := ResolveRow(1, 3)
	y, ok := r.Line()
	assert.True(t, ok)
	assert.Equal(t, 1, y)
	assert.False(t, r.IsPastEnd())

	r = ResolveRow(3, 3)
	_, ok = r.Line()
	assert.False(t, ok)
	assert.True(t, r.IsPastEnd())
	assert.Equal(t, PastEnd(), r)
}
