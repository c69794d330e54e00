package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalInt(t *testing.T) {
	assert.Nil(t, optionalInt(-1))
	assert.Equal(t, 0, *optionalInt(0))
	assert.Equal(t, 400, *optionalInt(400))
}
