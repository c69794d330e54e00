package astirecorder

import (
	"fmt"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astitools/ptr"
)

// Defaults
const (
	DefaultBlockSize          = 1024
	DefaultDirectory          = "audio"
	DefaultExtension          = "wav"
	DefaultNumChannels        = 1
	DefaultSampleRate         = 44100
	DefaultSilenceHoldSeconds = 1
	DefaultThreshold          = 400
	MaxThreshold              = 32767
	BitDepth                  = 16
)

// Options represents recorder options
type Options struct {
	BlockSize int `toml:"block_size"`
	// Nil means the system default input device
	DeviceIndex *int   `toml:"device_index"`
	Directory   string `toml:"directory"`
	Filename    string `toml:"filename"`
	// When true, a loud block read while confirming silence is kept in the utterance
	KeepConfirmationBlock bool `toml:"keep_confirmation_block"`
	SampleRate            int  `toml:"sample_rate"`
	SilenceHoldSeconds    *int `toml:"time_at"`
	Threshold             *int `toml:"threshold"`
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		BlockSize:          DefaultBlockSize,
		Directory:          DefaultDirectory,
		SampleRate:         DefaultSampleRate,
		SilenceHoldSeconds: astiptr.Int(DefaultSilenceHoldSeconds),
		Threshold:          astiptr.Int(DefaultThreshold),
	}
}

// Normalize replaces invalid or missing values with their defaults
func (o Options) Normalize() Options {
	if o.BlockSize <= 0 {
		o.BlockSize = DefaultBlockSize
	}
	if o.Directory == "" {
		o.Directory = DefaultDirectory
	}
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Threshold == nil {
		o.Threshold = astiptr.Int(DefaultThreshold)
	} else if *o.Threshold < 0 || *o.Threshold > MaxThreshold {
		astilog.Warnf("astirecorder: threshold %d is out of [0, %d], using %d", *o.Threshold, MaxThreshold, DefaultThreshold)
		o.Threshold = astiptr.Int(DefaultThreshold)
	}
	if o.SilenceHoldSeconds == nil {
		o.SilenceHoldSeconds = astiptr.Int(DefaultSilenceHoldSeconds)
	} else if *o.SilenceHoldSeconds < 0 {
		astilog.Warnf("astirecorder: silence hold of %ds is negative, using %ds", *o.SilenceHoldSeconds, DefaultSilenceHoldSeconds)
		o.SilenceHoldSeconds = astiptr.Int(DefaultSilenceHoldSeconds)
	}
	return o
}

// DeviceLabel returns a human readable reference to the device
func (o Options) DeviceLabel() string {
	if o.DeviceIndex == nil {
		return "default"
	}
	return fmt.Sprintf("#%d", *o.DeviceIndex)
}

// Hold returns the silence hold duration
func (o Options) Hold() time.Duration {
	if o.SilenceHoldSeconds == nil {
		return DefaultSilenceHoldSeconds * time.Second
	}
	return time.Duration(*o.SilenceHoldSeconds) * time.Second
}
