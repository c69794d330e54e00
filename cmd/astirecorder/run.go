package main

import (
	"context"
	"fmt"

	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astirecorder"
	"github.com/asticode/go-astirecorder/pkg/portaudio"
	"github.com/pkg/errors"
)

// stream represents an input stream owned by one run
type stream interface {
	astirecorder.BlockSource
	Close() error
	DeviceName() string
	Start() error
	Stop() error
}

// subsystem represents the audio backend handle owned by one run
type subsystem interface {
	Close() error
	NewStream(o astiportaudio.StreamOptions) (stream, error)
}

type subsystemOpener func() (subsystem, error)

type portAudioSubsystem struct {
	*astiportaudio.PortAudio
}

func openPortAudio() (subsystem, error) {
	p, err := astiportaudio.New()
	if err != nil {
		return nil, err
	}
	return portAudioSubsystem{PortAudio: p}, nil
}

func (p portAudioSubsystem) NewStream(o astiportaudio.StreamOptions) (stream, error) {
	s, err := p.PortAudio.NewStream(o)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newRunFunc returns a func owning the subsystem, the stream and the recorder for the duration of one run.
// The stream is stopped and closed and the subsystem is closed before it returns, even on early stop.
func newRunFunc(open subsystemOpener, o astirecorder.Options) astirecorder.RunFunc {
	return func(ctx context.Context) (err error) {
		// Open subsystem
		var sub subsystem
		if sub, err = open(); err != nil {
			err = &astirecorder.DeviceError{Device: o.DeviceLabel(), Err: errors.Wrap(err, "main: opening audio subsystem failed")}
			return
		}

		// Make sure to close subsystem
		defer func() {
			if err := sub.Close(); err != nil {
				astilog.Error(errors.Wrap(err, "main: closing audio subsystem failed"))
			}
		}()

		// Create stream
		var s stream
		if s, err = sub.NewStream(astiportaudio.StreamOptions{
			BlockSize:   o.BlockSize,
			DeviceIndex: o.DeviceIndex,
			SampleRate:  o.SampleRate,
		}); err != nil {
			err = &astirecorder.DeviceError{Device: o.DeviceLabel(), Err: errors.Wrap(err, "main: creating stream failed")}
			return
		}

		// Make sure to close stream
		defer func() {
			if err := s.Close(); err != nil {
				astilog.Error(errors.Wrap(err, "main: closing stream failed"))
			}
		}()

		// Start stream
		if err = s.Start(); err != nil {
			err = &astirecorder.DeviceError{Device: s.DeviceName(), Err: errors.Wrap(err, "main: starting stream failed")}
			return
		}

		// Make sure to stop stream
		defer func() {
			if err := s.Stop(); err != nil {
				astilog.Error(errors.Wrap(err, "main: stopping stream failed"))
			}
		}()

		// Create recorder
		r := astirecorder.NewRecorder(s, astirecorder.NewWAVWriter(o.SampleRate), o)
		r.SetOnSaved(func(path string, _ astirecorder.Utterance) { fmt.Printf("Saved %s\n", path) })

		// Run
		astilog.Infof("main: recording from %s", s.DeviceName())
		return r.Run(ctx)
	}
}

// stopOnQuit executes stop once "q" has been entered. An exhausted input leaves the run to signals.
func stopOnQuit(p *Prompter, stop func()) {
	if p.WaitQuit() {
		stop()
	}
}
