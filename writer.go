package astirecorder

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// Audio formats
const (
	audioFormatPCM = 1
)

// Writer represents an object capable of serializing an utterance to a file
type Writer interface {
	Extension() string
	Write(path string, u Utterance) error
}

// WAVWriter writes utterances as mono 16-bit PCM wav files
type WAVWriter struct {
	sampleRate int
}

// NewWAVWriter creates a new wav writer
func NewWAVWriter(sampleRate int) *WAVWriter {
	return &WAVWriter{sampleRate: sampleRate}
}

// Extension implements the Writer interface
func (w *WAVWriter) Extension() string { return DefaultExtension }

// Write implements the Writer interface. A file that failed to be written completely is removed.
func (w *WAVWriter) Write(path string, u Utterance) (err error) {
	// Create file
	var f *os.File
	if f, err = os.Create(path); err != nil {
		err = errors.Wrapf(err, "astirecorder: creating %s failed", path)
		return
	}

	// Make sure no partial file is left behind
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	// Encode
	if err = w.encode(f, u); err != nil {
		f.Close()
		err = errors.Wrapf(err, "astirecorder: encoding %s failed", path)
		return
	}

	// Close file
	if err = f.Close(); err != nil {
		err = errors.Wrapf(err, "astirecorder: closing %s failed", path)
		return
	}
	return
}

func (w *WAVWriter) encode(f *os.File, u Utterance) (err error) {
	// Create encoder
	e := wav.NewEncoder(f, w.sampleRate, BitDepth, DefaultNumChannels, audioFormatPCM)

	// Write
	if err = e.Write(&audio.IntBuffer{
		Data: u.Samples(),
		Format: &audio.Format{
			NumChannels: DefaultNumChannels,
			SampleRate:  w.sampleRate,
		},
		SourceBitDepth: BitDepth,
	}); err != nil {
		err = errors.Wrap(err, "astirecorder: writing wav samples failed")
		return
	}

	// Close encoder, which updates the header sizes
	if err = e.Close(); err != nil {
		err = errors.Wrap(err, "astirecorder: closing wav encoder failed")
		return
	}
	return
}
