package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dataview/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(nil)
		assert.Equal(t, slog.Attr{}, attr)
	})

	t.Run("non-nil error carried under error key", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestEmptyValueAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Query(""))
	assert.Equal(t, slog.Attr{}, logger.Category(""))
	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(3), logger.Page(3).Value.Int64())
	assert.Equal(t, "beauty", logger.Category("beauty").Value.String())
	assert.Equal(t, "phone", logger.Query("phone").Value.String())
	assert.Equal(t, uint64(7), logger.Seq(7).Value.Uint64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("request", logger.Method("GET"), logger.Path("/users"))
	assert.Equal(t, "request", attr.Key)
	assert.Len(t, attr.Value.Group(), 2)
}
