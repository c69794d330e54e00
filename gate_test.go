package astirecorder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeak(t *testing.T) {
	assert.Equal(t, 0, Peak(nil))
	assert.Equal(t, 0, Peak(Block{}))
	assert.Equal(t, 3, Peak(Block{1, -3, 2}))
	assert.Equal(t, 32768, Peak(Block{math.MinInt16, 5}))
	assert.Equal(t, 32767, Peak(Block{math.MaxInt16}))
}

func TestGate(t *testing.T) {
	g := NewGate(400)
	assert.Equal(t, 400, g.Threshold())
	assert.Equal(t, Quiet, g.Classify(nil))
	assert.Equal(t, Quiet, g.Classify(Block{}))
	assert.Equal(t, Quiet, g.Classify(Block{0, 399, -399}))
	assert.Equal(t, Quiet, g.Classify(Block{400, -400}))
	assert.Equal(t, Loud, g.Classify(Block{0, 401}))
	assert.Equal(t, Loud, g.Classify(Block{-401, 0}))
	assert.Equal(t, Loud, g.Classify(Block{math.MinInt16}))
	assert.Equal(t, "loud", Loud.String())
	assert.Equal(t, "quiet", Quiet.String())

	g = NewGate(0)
	assert.Equal(t, Quiet, g.Classify(Block{0, 0}))
	assert.Equal(t, Loud, g.Classify(Block{-1}))

	g = NewGate(MaxThreshold)
	assert.Equal(t, Quiet, g.Classify(Block{math.MaxInt16}))
	assert.Equal(t, Loud, g.Classify(Block{math.MinInt16}))
}

func TestUtterance(t *testing.T) {
	u := Utterance{{1, 2}, {}, {-3}}
	assert.Equal(t, 3, u.NumSamples())
	assert.Equal(t, []int{1, 2, -3}, u.Samples())
	assert.Equal(t, []int{}, Utterance(nil).Samples())
}
