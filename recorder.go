package astirecorder

import (
	"context"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// State represents a segmentation state
type State int

// States
const (
	StateIdle State = iota
	StateRecording
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	default:
		return "idle"
	}
}

// Recorder segments a stream of blocks into utterances and writes each of them once silence is confirmed.
// It's not safe for concurrent use: only the goroutine executing Run may touch it while it runs.
type Recorder struct {
	device  string
	g       Gate
	n       *Namer
	o       Options
	onSaved func(path string, u Utterance)
	saved   int
	sleep   func(d time.Duration)
	src     BlockSource
	state   State
	u       Utterance
	w       Writer
}

// NewRecorder creates a new recorder
func NewRecorder(src BlockSource, w Writer, o Options) *Recorder {
	o = o.Normalize()
	return &Recorder{
		device: o.DeviceLabel(),
		g:      NewGate(*o.Threshold),
		n:      NewNamer(o.Directory, o.Filename, w.Extension()),
		o:      o,
		sleep:  time.Sleep,
		src:    src,
		w:      w,
	}
}

// SetOnSaved sets a func executed after each successful write
func (r *Recorder) SetOnSaved(fn func(path string, u Utterance)) { r.onSaved = fn }

// State returns the current segmentation state
func (r *Recorder) State() State { return r.state }

// Saved returns the number of utterances written so far
func (r *Recorder) Saved() int { return r.saved }

// Run consumes blocks until the context is cancelled or the source fails.
// The context is only checked between blocks. A source failure returns a *DeviceError and
// discards the utterance in progress.
func (r *Recorder) Run(ctx context.Context) (err error) {
	astilog.Debugf("astirecorder: running with threshold %d and silence hold %s", r.g.Threshold(), r.o.Hold())
	for {
		// Check context
		if ctx.Err() != nil {
			r.reset()
			return
		}

		// Read
		var b Block
		if b, err = r.read(); err != nil {
			return
		}

		// Process
		if err = r.process(b); err != nil {
			return
		}
	}
}

func (r *Recorder) read() (b Block, err error) {
	if b, err = r.src.ReadBlock(); err != nil {
		if len(r.u) > 0 {
			astilog.Warnf("astirecorder: discarding utterance of %d blocks", len(r.u))
		}
		r.reset()
		err = &DeviceError{Device: r.device, Err: errors.Wrap(err, "astirecorder: reading block failed")}
		return
	}
	return
}

func (r *Recorder) process(b Block) (err error) {
	d := r.g.Classify(b)
	switch r.state {
	case StateIdle:
		// Quiet blocks are never retained while idle
		if d == Quiet {
			return
		}

		// Start utterance
		astilog.Debug("astirecorder: utterance started")
		r.state = StateRecording
		r.u = append(r.u, b)
	case StateRecording:
		r.u = append(r.u, b)
		if d == Quiet {
			if err = r.confirmSilence(); err != nil {
				err = errors.Wrap(err, "astirecorder: confirming silence failed")
				return
			}
		}
	}
	return
}

// confirmSilence waits for the hold, re-checks one fresh block and, if it's still quiet,
// waits for the hold again and flushes the utterance
func (r *Recorder) confirmSilence() (err error) {
	// Wait
	r.sleep(r.o.Hold())

	// Read confirmation block
	var b Block
	if b, err = r.read(); err != nil {
		return
	}

	// Still speaking
	if r.g.Classify(b) == Loud {
		astilog.Debug("astirecorder: silence not confirmed")
		if r.o.KeepConfirmationBlock {
			r.u = append(r.u, b)
		}
		return
	}

	// Wait
	r.sleep(r.o.Hold())

	// Flush
	r.flush()
	return
}

// flush writes the utterance and always goes back to idle
func (r *Recorder) flush() {
	// Reset no matter what
	u := r.u
	defer r.reset()

	// Get path
	p, err := r.n.Next()
	if err != nil {
		astilog.Error(errors.Wrap(err, "astirecorder: getting next path failed"))
		return
	}

	// Write
	if err = r.w.Write(p, u); err != nil {
		astilog.Error(&StorageError{Path: p, Err: err})
		return
	}
	r.saved++
	astilog.Infof("astirecorder: saved %d samples to %s", u.NumSamples(), p)

	// Custom
	if r.onSaved != nil {
		r.onSaved(p, u)
	}
}

func (r *Recorder) reset() {
	r.u = nil
	r.state = StateIdle
}
