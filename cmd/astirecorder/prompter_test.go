package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/asticode/go-astirecorder"
	"github.com/stretchr/testify/assert"
)

func TestPrompter(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("2\n  memo \nabc\n\n 600\nx\nfoo\nq\nignored\n"), out)
	i := p.OptionalInt("device: ")
	assert.Equal(t, 2, *i)
	assert.Equal(t, "memo", p.String("filename: "))
	assert.Equal(t, astirecorder.DefaultThreshold, p.Int("threshold: ", astirecorder.DefaultThreshold))
	assert.Equal(t, 7, p.Int("hold: ", 7))
	assert.Equal(t, 600, p.Int("threshold: ", astirecorder.DefaultThreshold))
	assert.Nil(t, p.OptionalInt("device: "))
	assert.True(t, p.WaitQuit())
	assert.Equal(t, "device: filename: threshold: hold: threshold: device: Press q to quit\nPress q to quit\n", out.String())

	// Exhausted input
	p = NewPrompter(strings.NewReader(""), out)
	assert.Nil(t, p.OptionalInt(""))
	assert.Equal(t, "", p.String(""))
	assert.Equal(t, 3, p.Int("", 3))
	assert.False(t, p.WaitQuit())

	// Input exhausted without "q"
	p = NewPrompter(strings.NewReader("foo\n"), out)
	assert.False(t, p.WaitQuit())
}
