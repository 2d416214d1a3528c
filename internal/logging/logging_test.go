package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error"} {
		assert.NoError(t, Init(level, false), "level %s", level)
	}
	assert.Error(t, Init("chatty", false))
}

func TestInit_JSONMode(t *testing.T) {
	require.NoError(t, Init("info", true))
	defer Sync()

	log := L(Verify)
	require.NotNil(t, log)
	log.Debugw("suppressed at info level", "k", "v")
}

func TestL_BeforeInit(t *testing.T) {
	// A logger is always usable; before Init it is a no-op.
	log := L(Parse)
	require.NotNil(t, log)
	log.Infow("goes nowhere")
}
