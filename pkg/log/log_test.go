package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, Configure("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Configure("loud"))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id = WithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))
}
