package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCoordinates(t *testing.T) {
	assert.True(t, IsValidCoordinates(0, 0))
	assert.True(t, IsValidCoordinates(90, 180))
	assert.True(t, IsValidCoordinates(-90, -180))
	assert.False(t, IsValidCoordinates(90.1, 0))
	assert.False(t, IsValidCoordinates(0, -180.5))
}
