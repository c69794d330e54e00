package main

import (
	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astirecorder"
	"github.com/asticode/go-astitools/config"
	"github.com/asticode/go-astitools/ptr"
)

// Configuration represents a configuration
type Configuration struct {
	Calibration       astirecorder.CalibrationOptions `toml:"calibration"`
	CalibrationOutput string                          `toml:"calibration_output"`
	Recorder          astirecorder.Options            `toml:"recorder"`
}

// newConfiguration creates a new configuration
func newConfiguration() *Configuration {
	// Global config
	gc := &Configuration{
		Calibration: astirecorder.CalibrationOptions{
			Duration:     astirecorder.DefaultCalibrationDuration,
			StepDuration: astirecorder.DefaultCalibrationStepDuration,
		},
		Recorder: astirecorder.DefaultOptions(),
	}

	// Flag config
	fc := &Configuration{
		CalibrationOutput: *calibrationOutput,
		Recorder: astirecorder.Options{
			DeviceIndex:        optionalInt(*deviceIndex),
			Directory:          *directory,
			Filename:           *filename,
			SilenceHoldSeconds: optionalInt(*timeAt),
			Threshold:          optionalInt(*threshold),
		},
	}

	// Build configuration
	c, err := asticonfig.New(gc, *config, fc)
	if err != nil {
		astilog.Fatal(err)
	}
	return c.(*Configuration)
}

// optionalInt maps negative flag values, which mean "not set", to nil
func optionalInt(i int) *int {
	if i < 0 {
		return nil
	}
	return astiptr.Int(i)
}
