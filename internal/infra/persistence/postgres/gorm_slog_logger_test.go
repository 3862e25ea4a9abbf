package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookshelf/config"
	"bookshelf/internal/errors"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is ignored", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("unique violation is logged at debug", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("UNIQUE constraint failed: users.email"))
		assert.Contains(t, buf.String(), "GORM constraint violation")
		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	})

	t.Run("other errors are logged at error", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection refused"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), `"component":"gorm"`)
	})

	t.Run("slow query", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("queries only at info level in debug mode", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		buf, l = newBufferedGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("silent", func(t *testing.T) {
		buf, l := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
