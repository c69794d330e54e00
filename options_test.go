package astirecorder

import (
	"testing"
	"time"

	"github.com/asticode/go-astitools/ptr"
	"github.com/stretchr/testify/assert"
)

func TestOptionsNormalize(t *testing.T) {
	o := Options{}.Normalize()
	assert.Equal(t, DefaultBlockSize, o.BlockSize)
	assert.Equal(t, DefaultDirectory, o.Directory)
	assert.Equal(t, DefaultSampleRate, o.SampleRate)
	assert.Equal(t, DefaultThreshold, *o.Threshold)
	assert.Equal(t, DefaultSilenceHoldSeconds, *o.SilenceHoldSeconds)
	assert.Equal(t, time.Second, o.Hold())
	assert.Nil(t, o.DeviceIndex)
	assert.Equal(t, "default", o.DeviceLabel())

	o = Options{Threshold: astiptr.Int(0), SilenceHoldSeconds: astiptr.Int(0)}.Normalize()
	assert.Equal(t, 0, *o.Threshold)
	assert.Equal(t, time.Duration(0), o.Hold())

	o = Options{Threshold: astiptr.Int(MaxThreshold + 1), SilenceHoldSeconds: astiptr.Int(-2)}.Normalize()
	assert.Equal(t, DefaultThreshold, *o.Threshold)
	assert.Equal(t, DefaultSilenceHoldSeconds, *o.SilenceHoldSeconds)

	o = Options{DeviceIndex: astiptr.Int(3)}
	assert.Equal(t, "#3", o.DeviceLabel())
	assert.Equal(t, DefaultOptions(), DefaultOptions().Normalize())
}
