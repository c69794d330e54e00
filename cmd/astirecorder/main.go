package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/asticode/go-astilog"
	"github.com/asticode/go-astirecorder"
	"github.com/asticode/go-astirecorder/pkg/portaudio"
	"github.com/asticode/go-astitools/ptr"
	"github.com/asticode/go-astitools/worker"
	"github.com/pkg/errors"
)

// Flags
var (
	calibrate         = flag.Bool("calibrate", false, "measures levels and suggests a threshold instead of recording")
	calibrationOutput = flag.String("calibration-output", "", "the path the calibration chart is written to")
	config            = flag.String("c", "", "the config path")
	deviceIndex       = flag.Int("d", -1, "the input device index, the system default is used if negative")
	directory         = flag.String("o", "", "the output directory")
	filename          = flag.String("f", "", "the output filename stem, prompts are shown if empty")
	listDevices       = flag.Bool("l", false, "lists input devices and exits")
	threshold         = flag.Int("t", -1, "the peak amplitude threshold (0-32767)")
	timeAt            = flag.Int("s", -1, "the number of seconds to wait before confirming silence")
)

func main() {
	// Parse flags
	flag.Parse()
	astilog.FlagInit()

	// Create configuration
	c := newConfiguration()

	// Create worker
	w := astiworker.NewWorker()

	// Handle signals
	w.HandleSignals()

	// List devices
	if *listDevices {
		if err := printInputDevices(); err != nil {
			astilog.Fatal(errors.Wrap(err, "main: printing input devices failed"))
		}
		return
	}

	// Create prompter
	p := NewPrompter(os.Stdin, os.Stdout)

	// Prompt
	if c.Recorder.Filename == "" && !*calibrate {
		if err := prompt(p, &c.Recorder); err != nil {
			astilog.Fatal(errors.Wrap(err, "main: prompting failed"))
		}
	}
	c.Recorder = c.Recorder.Normalize()

	// Calibrate
	if *calibrate {
		if err := runCalibration(w.Context(), c); err != nil {
			astilog.Fatal(errors.Wrap(err, "main: calibrating failed"))
		}
		return
	}

	// Record
	if err := record(w, p, c.Recorder); err != nil {
		astilog.Fatal(errors.Wrap(err, "main: recording failed"))
	}
}

func printInputDevices() (err error) {
	// Create portaudio
	var pa *astiportaudio.PortAudio
	if pa, err = astiportaudio.New(); err != nil {
		err = errors.Wrap(err, "main: creating portaudio failed")
		return
	}
	defer pa.Close()

	// Get devices
	var ds []astiportaudio.Device
	if ds, err = pa.InputDevices(); err != nil {
		err = errors.Wrap(err, "main: getting input devices failed")
		return
	}

	// Print
	fmt.Printf("Available input devices: %d\n", len(ds))
	for _, d := range ds {
		fmt.Println(d)
	}
	return
}

func prompt(p *Prompter, o *astirecorder.Options) (err error) {
	// Print devices
	if err = printInputDevices(); err != nil {
		err = errors.Wrap(err, "main: printing input devices failed")
		return
	}

	// Ask
	o.DeviceIndex = p.OptionalInt("Select input device: ")
	o.Filename = p.String("Enter filename: ")
	o.Threshold = astiptr.Int(p.Int(fmt.Sprintf("Enter threshold (default %d): ", astirecorder.DefaultThreshold), astirecorder.DefaultThreshold))
	o.SilenceHoldSeconds = astiptr.Int(p.Int(fmt.Sprintf("Enter silence hold in seconds (default %d): ", astirecorder.DefaultSilenceHoldSeconds), astirecorder.DefaultSilenceHoldSeconds))
	return
}

func record(w *astiworker.Worker, p *Prompter, o astirecorder.Options) (err error) {
	// Start controller
	c := astirecorder.NewController(newRunFunc(openPortAudio, o))
	c.Start(w.Context())

	// Stop on "q"
	go stopOnQuit(p, w.Stop)

	// Create new task
	t := w.NewTask()

	// Execute the rest in a goroutine
	go func() {
		// Make sure to let the worker know when the task is done
		defer t.Done()

		// Wait for either the worker or the run to be done
		select {
		case <-w.Context().Done():
		case <-c.Done():
		}

		// Stop controller
		c.Stop()

		// Stop worker
		w.Stop()
	}()

	// Wait
	w.Wait()

	// Check run error
	if err = c.Err(); err != nil {
		err = errors.Wrap(err, "main: running recorder failed")
		return
	}
	return
}

func runCalibration(ctx context.Context, c *Configuration) (err error) {
	// Create portaudio
	var pa *astiportaudio.PortAudio
	if pa, err = astiportaudio.New(); err != nil {
		err = errors.Wrap(err, "main: creating portaudio failed")
		return
	}
	defer pa.Close()

	// Create stream
	var s *astiportaudio.Stream
	if s, err = pa.NewStream(astiportaudio.StreamOptions{
		BlockSize:   c.Recorder.BlockSize,
		DeviceIndex: c.Recorder.DeviceIndex,
		SampleRate:  c.Recorder.SampleRate,
	}); err != nil {
		err = errors.Wrap(err, "main: creating stream failed")
		return
	}
	defer s.Close()

	// Start stream
	if err = s.Start(); err != nil {
		err = errors.Wrap(err, "main: starting stream failed")
		return
	}
	defer s.Stop()

	// Calibrate
	o := c.Calibration
	o.SampleRate = c.Recorder.SampleRate
	o.Threshold = *c.Recorder.Threshold
	o.Device = s.DeviceName()
	fmt.Printf("Calibrating for %s, keep quiet then speak normally\n", o.Duration)
	var cl astirecorder.Calibration
	if cl, err = astirecorder.Calibrate(ctx, s, o); err != nil {
		err = errors.Wrap(err, "main: calibrating failed")
		return
	}
	fmt.Printf("Max peak: %d\nCurrent threshold: %d\nSuggested threshold: %d\n", cl.MaxPeak, cl.CurrentThreshold, cl.SuggestedThreshold)

	// Write chart
	if c.CalibrationOutput != "" {
		var b []byte
		if b, err = json.MarshalIndent(cl, "", "  "); err != nil {
			err = errors.Wrap(err, "main: marshaling calibration failed")
			return
		}
		if err = ioutil.WriteFile(c.CalibrationOutput, b, 0644); err != nil {
			err = errors.Wrapf(err, "main: writing %s failed", c.CalibrationOutput)
			return
		}
		astilog.Infof("main: calibration written to %s", c.CalibrationOutput)
	}
	return
}
