package debugui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/debugui"
)

func TestHistory(t *testing.T) {
	h := debugui.NewHistory(4)
	assert.Equal(t, []float32{0, 0, 0, 0}, h.Ordered())

	h.Push(1)
	h.Push(2)
	assert.Equal(t, []float32{0, 0, 1, 2}, h.Ordered())
	assert.InDelta(t, 0.75, h.Average(), 1e-6)

	for _, v := range []float32{3, 4, 5} {
		h.Push(v)
	}
	assert.Equal(t, []float32{2, 3, 4, 5}, h.Ordered())
	assert.Equal(t, 4, h.Len())
}
