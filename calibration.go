package astirecorder

import (
	"context"
	"math"
	"time"

	"github.com/asticode/go-astichartjs"
	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astitools/audio"
	"github.com/asticode/go-astitools/ptr"
	"github.com/pkg/errors"
)

// Calibration defaults
const (
	DefaultCalibrationDuration     = 5 * time.Second
	DefaultCalibrationStepDuration = 100 * time.Millisecond
	suggestedThresholdRatio        = 0.3
)

// CalibrationOptions represents calibration options
type CalibrationOptions struct {
	// Used in diagnostics only
	Device       string        `toml:"-"`
	Duration     time.Duration `toml:"duration"`
	SampleRate   int           `toml:"-"`
	StepDuration time.Duration `toml:"step_duration"`
	Threshold    int           `toml:"-"`
}

// Calibration represents the levels observed while calibrating
type Calibration struct {
	Chart              astichartjs.Chart `json:"chart"`
	CurrentThreshold   int               `json:"current_threshold"`
	MaxAudioLevel      float64           `json:"max_audio_level"`
	MaxPeak            int               `json:"max_peak"`
	NumSamples         int               `json:"num_samples"`
	SuggestedThreshold int               `json:"suggested_threshold"`
}

// Calibrate reads blocks for the requested duration and suggests a threshold based on the loudest step
func Calibrate(ctx context.Context, src BlockSource, o CalibrationOptions) (c Calibration, err error) {
	// Default options
	if o.Duration <= 0 {
		o.Duration = DefaultCalibrationDuration
	}
	if o.StepDuration <= 0 {
		o.StepDuration = DefaultCalibrationStepDuration
	}
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Device == "" {
		o.Device = "default"
	}

	// Read samples
	n := int(float64(o.SampleRate) * o.Duration.Seconds())
	astilog.Debugf("astirecorder: calibrating on %d samples", n)
	var b Block
	for len(b) < n {
		// Check context
		if ctx.Err() != nil {
			err = errors.Wrap(ctx.Err(), "astirecorder: context error")
			return
		}

		// Read
		var rb Block
		if rb, err = src.ReadBlock(); err != nil {
			err = &DeviceError{Device: o.Device, Err: errors.Wrap(err, "astirecorder: reading block failed")}
			return
		}
		b = append(b, rb...)
	}
	b = b[:n]

	// Compute
	c = newCalibration(b, o)
	return
}

func newCalibration(b Block, o CalibrationOptions) (c Calibration) {
	// Create calibration
	c = Calibration{
		Chart: astichartjs.Chart{
			Data: &astichartjs.Data{
				Datasets: []astichartjs.Dataset{{
					BackgroundColor: astichartjs.ChartBackgroundColorGreen,
					BorderColor:     astichartjs.ChartBorderColorGreen,
					Label:           "Peak",
				}},
			},
			Options: &astichartjs.Options{
				Scales: &astichartjs.Scales{
					XAxes: []astichartjs.Axis{
						{
							Position: astichartjs.ChartAxisPositionsBottom,
							ScaleLabel: &astichartjs.ScaleLabel{
								Display:     astiptr.Bool(true),
								LabelString: "Duration (s)",
							},
							Type: astichartjs.ChartAxisTypesLinear,
						},
					},
					YAxes: []astichartjs.Axis{
						{
							ScaleLabel: &astichartjs.ScaleLabel{
								Display:     astiptr.Bool(true),
								LabelString: "Peak",
							},
						},
					},
				},
				Title: &astichartjs.Title{Display: astiptr.Bool(true)},
			},
			Type: astichartjs.ChartTypeLine,
		},
		CurrentThreshold: o.Threshold,
		NumSamples:       len(b),
	}

	// Get number of samples per step
	numberOfSamplesPerStep := int(math.Ceil(float64(o.SampleRate) * o.StepDuration.Seconds()))
	if numberOfSamplesPerStep <= 0 {
		numberOfSamplesPerStep = 1
	}

	// Get number of steps
	numberOfSteps := int(math.Ceil(float64(len(b)) / float64(numberOfSamplesPerStep)))

	// Loop through steps
	var maxX float64
	for idx := 0; idx < numberOfSteps; idx++ {
		// Offsets
		start := idx * numberOfSamplesPerStep
		end := start + numberOfSamplesPerStep
		if end > len(b) {
			end = len(b)
		}
		step := b[start:end]

		// Peak
		p := Peak(step)
		if p > c.MaxPeak {
			c.MaxPeak = p
		}

		// Audio level
		ss := make([]int32, 0, len(step))
		for _, s := range step {
			ss = append(ss, int32(s))
		}
		c.MaxAudioLevel = math.Max(c.MaxAudioLevel, astiaudio.AudioLevel(ss))

		// Add data to chart
		maxX = float64(numberOfSamplesPerStep) / float64(o.SampleRate) * float64(idx)
		c.Chart.Data.Datasets[0].Data = append(c.Chart.Data.Datasets[0].Data, astichartjs.DataPoint{
			X: maxX,
			Y: float64(p),
		})
	}

	// Suggest threshold
	c.SuggestedThreshold = int(suggestedThresholdRatio * float64(c.MaxPeak))

	// Add thresholds to chart
	c.Chart.Data.Datasets = append(c.Chart.Data.Datasets, astichartjs.Dataset{
		BackgroundColor: astichartjs.ChartBackgroundColorBlue,
		BorderColor:     astichartjs.ChartBorderColorBlue,
		Data: []astichartjs.DataPoint{
			{X: 0, Y: float64(c.CurrentThreshold)},
			{X: maxX, Y: float64(c.CurrentThreshold)},
		},
		Label: "Current threshold",
	}, astichartjs.Dataset{
		BackgroundColor: astichartjs.ChartBackgroundColorRed,
		BorderColor:     astichartjs.ChartBorderColorRed,
		Data: []astichartjs.DataPoint{
			{X: 0, Y: float64(c.SuggestedThreshold)},
			{X: maxX, Y: float64(c.SuggestedThreshold)},
		},
		Label: "Suggested threshold",
	})
	return
}
