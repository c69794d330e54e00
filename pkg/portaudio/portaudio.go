package astiportaudio

import (
	"fmt"
	"sync"

	"github.com/asticode/go-astilog"
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

// PortAudio owns the portaudio library handle. Streams must be closed before it is.
type PortAudio struct {
	m          sync.Mutex
	terminated bool
}

// New initializes portaudio
func New() (p *PortAudio, err error) {
	astilog.Debug("astiportaudio: initializing")
	if err = portaudio.Initialize(); err != nil {
		err = errors.Wrap(err, "astiportaudio: initializing failed")
		return
	}
	p = &PortAudio{}
	return
}

// Close terminates portaudio. Only the first call has an effect.
func (p *PortAudio) Close() (err error) {
	// Lock
	p.m.Lock()
	defer p.m.Unlock()

	// Already terminated
	if p.terminated {
		return
	}
	p.terminated = true

	// Terminate
	astilog.Debug("astiportaudio: terminating")
	if err = portaudio.Terminate(); err != nil {
		err = errors.Wrap(err, "astiportaudio: terminating failed")
		return
	}
	return
}

// Device represents an input device
type Device struct {
	DefaultSampleRate float64
	// Index in the global device list, which is what StreamOptions.DeviceIndex refers to
	Index            int
	MaxInputChannels int
	Name             string
}

func (d Device) String() string {
	return fmt.Sprintf("Device %d: %s", d.Index, d.Name)
}

// InputDevices returns devices with at least one input channel
func (p *PortAudio) InputDevices() (ds []Device, err error) {
	// Get devices
	var is []*portaudio.DeviceInfo
	if is, err = portaudio.Devices(); err != nil {
		err = errors.Wrap(err, "astiportaudio: getting devices failed")
		return
	}

	// Loop through devices
	for idx, i := range is {
		if i.MaxInputChannels <= 0 {
			continue
		}
		ds = append(ds, Device{
			DefaultSampleRate: i.DefaultSampleRate,
			Index:             idx,
			MaxInputChannels:  i.MaxInputChannels,
			Name:              i.Name,
		})
	}
	return
}
