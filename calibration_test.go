package astirecorder

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCalibrate(t *testing.T) {
	// 0.5s of quiet blocks followed by 0.5s of loud blocks
	var bs []Block
	for i := 0; i < 10; i++ {
		b := make(Block, 100)
		for j := range b {
			if i < 5 {
				b[j] = 10
			} else {
				b[j] = 1000
			}
		}
		bs = append(bs, b)
	}

	c, err := Calibrate(context.Background(), newMockedSource(bs...), CalibrationOptions{
		Duration:     time.Second,
		SampleRate:   1000,
		StepDuration: 100 * time.Millisecond,
		Threshold:    400,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1000, c.NumSamples)
	assert.Equal(t, 1000, c.MaxPeak)
	assert.Equal(t, 300, c.SuggestedThreshold)
	assert.Equal(t, 400, c.CurrentThreshold)
	assert.True(t, c.MaxAudioLevel > 0)
	assert.Len(t, c.Chart.Data.Datasets, 3)
	assert.Len(t, c.Chart.Data.Datasets[0].Data, 10)
	assert.Equal(t, float64(10), c.Chart.Data.Datasets[0].Data[0].Y)
	assert.Equal(t, float64(1000), c.Chart.Data.Datasets[0].Data[9].Y)
	assert.Equal(t, float64(300), c.Chart.Data.Datasets[2].Data[1].Y)

	// Source fails
	_, err = Calibrate(context.Background(), newMockedSource(bs[:2]...), CalibrationOptions{Device: "USB Microphone", Duration: time.Second, SampleRate: 1000})
	var de *DeviceError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "USB Microphone", de.Device)
	_, err = Calibrate(context.Background(), newMockedSource(), CalibrationOptions{Duration: time.Second, SampleRate: 1000})
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "default", de.Device)

	// Context is cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Calibrate(ctx, newMockedSource(bs...), CalibrationOptions{Duration: time.Second, SampleRate: 1000})
	assert.Error(t, err)
}
