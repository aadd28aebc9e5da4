package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	s := NewService(nil)

	assert.NotNil(t, s)
	assert.NotNil(t, s.logger, "nil logger falls back to the default")
}

func TestCommandExists(t *testing.T) {
	assert.True(t, commandExists("sh"))
	assert.False(t, commandExists("definitely-not-a-real-command-xyz"))
}

func TestFallbackCommand(t *testing.T) {
	s := NewService(nil)

	// the result is platform dependent; the call itself must be safe
	// even when no clipboard utility is installed
	_ = s.fallbackCommand()
}
