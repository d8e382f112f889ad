package histtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	assert.Empty(t, logger.Debugs())
	assert.Empty(t, logger.Errors())

	logger.Debugf("read %d observations from %s", 4, "<stdin>")
	logger.Errorf("failed: %s", "boom")
	logger.Debugf("done")

	assert.Equal(t, []string{"read 4 observations from <stdin>", "done"}, logger.Debugs())
	assert.Equal(t, []string{"failed: boom"}, logger.Errors())

	debugs := logger.Debugs()
	debugs[0] = "changed"
	assert.Equal(t, "read 4 observations from <stdin>", logger.Debugs()[0])
}
