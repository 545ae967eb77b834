package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "req-1")
	assert.Equal(t, "req-1", id)
	assert.Equal(t, "req-1", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	SetupTestLogger()
	ctx, id := WithCorrelationID(context.Background(), "")

	l, ok := ForContext(ctx).(*logger)

	assert.True(t, ok)
	assert.Equal(t, id, l.entry.Data[correlationIDField])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("nonsense")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
