package astiportaudio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevice(t *testing.T) {
	assert.Equal(t, "Device 3: Built-in Microphone", Device{Index: 3, Name: "Built-in Microphone"}.String())
}

func TestPortAudioCloseTerminatesOnce(t *testing.T) {
	// A terminated handle doesn't reach the library again
	p := &PortAudio{terminated: true}
	assert.NoError(t, p.Close())
	assert.NoError(t, p.Close())
	assert.True(t, p.terminated)
}
