package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldAppearsInMessage(t *testing.T) {
	log := NewLogger(INFO).WithField("user", "u1")

	msg := log.formatMessage(INFO, "connected: %s", "sub1")
	assert.Contains(t, msg, "[INFO]")
	assert.Contains(t, msg, "connected: sub1")
	assert.Contains(t, msg, "user=u1")
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent := NewLogger(INFO)
	parent.WithField("user", "u1")

	assert.NotContains(t, parent.formatMessage(INFO, "x"), "user=u1")
}

func TestShouldLogRespectsLevel(t *testing.T) {
	log := NewLogger(WARN)
	assert.False(t, log.shouldLog(DEBUG))
	assert.False(t, log.shouldLog(INFO))
	assert.True(t, log.shouldLog(WARN))
	assert.True(t, log.shouldLog(ERROR))
}
