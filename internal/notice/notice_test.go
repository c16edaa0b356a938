package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisible(t *testing.T) {
	assert.True(t, Visible(true))
	assert.False(t, Visible(false))
}

func TestVisibleHasNoCallHistory(t *testing.T) {
	// Transitions are immediate and fully reversible
	assert.True(t, Visible(true))
	assert.False(t, Visible(false))
	assert.True(t, Visible(true))
	assert.True(t, Visible(true))
	assert.False(t, Visible(false))
}
