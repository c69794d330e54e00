package astiportaudio

import (
	"fmt"

	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astirecorder"
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

// Stream represents a mono 16-bit portaudio input stream
type Stream struct {
	b []int16
	d *portaudio.DeviceInfo
	o StreamOptions
	s *portaudio.Stream
}

// StreamOptions represents stream options
type StreamOptions struct {
	BlockSize int `toml:"block_size"`
	// Nil means the system default input device
	DeviceIndex *int `toml:"device_index"`
	SampleRate  int  `toml:"sample_rate"`
}

// NewStream opens an input stream on the requested device
func (p *PortAudio) NewStream(o StreamOptions) (s *Stream, err error) {
	// Create stream
	s = &Stream{
		b: make([]int16, o.BlockSize),
		o: o,
	}

	// Get device
	if s.d, err = device(o.DeviceIndex); err != nil {
		err = errors.Wrap(err, "astiportaudio: getting device failed")
		return
	}

	// Build parameters
	ps := portaudio.HighLatencyParameters(s.d, nil)
	ps.Input.Channels = astirecorder.DefaultNumChannels
	ps.SampleRate = float64(o.SampleRate)
	ps.FramesPerBuffer = len(s.b)

	// Open stream
	astilog.Debugf("astiportaudio: opening stream %p on %s", s, s.d.Name)
	if s.s, err = portaudio.OpenStream(ps, s.b); err != nil {
		err = errors.Wrapf(err, "astiportaudio: opening stream %p on %s failed", s, s.d.Name)
		return
	}
	return
}

func device(idx *int) (d *portaudio.DeviceInfo, err error) {
	// Default
	if idx == nil {
		if d, err = portaudio.DefaultInputDevice(); err != nil {
			err = errors.Wrap(err, "astiportaudio: getting default input device failed")
			return
		}
		return
	}

	// Get devices
	var ds []*portaudio.DeviceInfo
	if ds, err = portaudio.Devices(); err != nil {
		err = errors.Wrap(err, "astiportaudio: getting devices failed")
		return
	}

	// Invalid index
	if *idx < 0 || *idx >= len(ds) {
		err = fmt.Errorf("astiportaudio: device index %d is out of [0, %d)", *idx, len(ds))
		return
	}
	d = ds[*idx]

	// No input
	if d.MaxInputChannels <= 0 {
		err = fmt.Errorf("astiportaudio: device %d (%s) has no input channel", *idx, d.Name)
		return
	}
	return
}

// DeviceName returns the name of the device the stream was opened on
func (s *Stream) DeviceName() string { return s.d.Name }

// Close implements the io.Closer interface
func (s *Stream) Close() (err error) {
	astilog.Debugf("astiportaudio: closing stream %p", s)
	if err = s.s.Close(); err != nil {
		err = errors.Wrapf(err, "astiportaudio: closing stream %p failed", s)
		return
	}
	return
}

// Start starts the stream
func (s *Stream) Start() (err error) {
	astilog.Debugf("astiportaudio: starting stream %p", s)
	if err = s.s.Start(); err != nil {
		err = errors.Wrapf(err, "astiportaudio: starting stream %p failed", s)
		return
	}
	return
}

// Stop stops the stream
func (s *Stream) Stop() (err error) {
	astilog.Debugf("astiportaudio: stopping stream %p", s)
	if err = s.s.Stop(); err != nil {
		err = errors.Wrapf(err, "astiportaudio: stopping stream %p failed", s)
		return
	}
	return
}

// ReadBlock implements the astirecorder.BlockSource interface.
// Overflows are expected after the recorder's silence hold and are not considered as failures.
func (s *Stream) ReadBlock() (b astirecorder.Block, err error) {
	// Read
	if err = s.s.Read(); err != nil {
		if err != portaudio.InputOverflowed {
			err = errors.Wrapf(err, "astiportaudio: reading from stream %p failed", s)
			return
		}
		astilog.Debugf("astiportaudio: stream %p overflowed", s)
		err = nil
	}

	// Clone buffer
	b = make(astirecorder.Block, len(s.b))
	copy(b, s.b)
	return
}
