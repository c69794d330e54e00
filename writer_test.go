package astirecorder

import (
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
)

func readWAV(t *testing.T, path string) []int {
	f, err := os.Open(path)
	assert.NoError(t, err)
	defer f.Close()
	d := wav.NewDecoder(f)
	b, err := d.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, uint32(DefaultSampleRate), d.SampleRate)
	assert.Equal(t, uint16(BitDepth), d.BitDepth)
	assert.Equal(t, uint16(DefaultNumChannels), d.NumChans)
	return b.Data
}

func TestWAVWriter(t *testing.T) {
	// Create dir
	dir, err := ioutil.TempDir("", "astirecorder")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	// Write
	w := NewWAVWriter(DefaultSampleRate)
	assert.Equal(t, "wav", w.Extension())
	u := Utterance{{1, -1, math.MaxInt16}, {math.MinInt16, 0}}
	p := filepath.Join(dir, "test_0.wav")
	assert.NoError(t, w.Write(p, u))

	// Header sizes are consistent with the payload
	fi, err := os.Stat(p)
	assert.NoError(t, err)
	assert.Equal(t, int64(44+2*u.NumSamples()), fi.Size())

	// Samples are preserved
	assert.Equal(t, []int{1, -1, math.MaxInt16, math.MinInt16, 0}, readWAV(t, p))

	// Each call is independent
	p2 := filepath.Join(dir, "test_1.wav")
	assert.NoError(t, w.Write(p2, Utterance{{5}}))
	assert.Equal(t, []int{5}, readWAV(t, p2))
	assert.Equal(t, []int{1, -1, math.MaxInt16, math.MinInt16, 0}, readWAV(t, p))

	// Invalid path
	err = w.Write(filepath.Join(dir, "missing", "test_0.wav"), u)
	assert.Error(t, err)
	_, err = os.Stat(filepath.Join(dir, "missing", "test_0.wav"))
	assert.True(t, os.IsNotExist(err))
}
