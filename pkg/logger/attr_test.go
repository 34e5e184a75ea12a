package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notus/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 2)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "error", logger.Error(err).Key)
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, "notification_id", logger.NotificationID("notus-1").Key)
	assert.True(t, logger.NotificationID("").Equal(slog.Attr{}))
	assert.Equal(t, "popup", logger.Kind("popup").Value.String())
	assert.Equal(t, "top-left", logger.Position("top-left").Value.String())
	assert.Equal(t, "exiting", logger.State("exiting").Value.String())
	assert.Equal(t, int64(300), logger.Duration("delay_ms", 300*time.Millisecond).Value.Int64())

	tr := logger.Transition("visible", "exiting", "expire")
	require.Equal(t, "transition", tr.Key)
	assert.Len(t, tr.Value.Group(), 3)
}
