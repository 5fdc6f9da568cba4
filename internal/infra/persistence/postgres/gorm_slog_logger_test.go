package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"petplace/config"
	deliverycontext "petplace/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqlFn() (string, int64) {
	return `UPDATE "affiliate_links" SET "click_count"=click_count + 1`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "query error", err: errors.New("deadlock detected"), want: "GORM query failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, want: ""},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query hidden at warn", want: ""},
		{name: "fast query shown in debug", debug: true, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "click_count")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, request bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})
	reqLogger := slog.New(slog.NewTextHandler(&request, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Error(ctx, "constraint %s violated", "reviews_user_business")

	assert.Empty(t, base.String())
	assert.Contains(t, request.String(), "request_id=req-9")
	assert.Contains(t, request.String(), "constraint reviews_user_business violated")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestLogPoolWait(t *testing.T) {
	tests := []struct {
		name string
		cur  sql.DBStats
		want string
	}{
		{name: "no new waits", cur: sql.DBStats{WaitCount: 3, WaitDuration: time.Second}, want: ""},
		{name: "short waits", cur: sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 10*time.Millisecond}, want: "level=DEBUG"},
		{name: "long waits", cur: sql.DBStats{WaitCount: 4, WaitDuration: 2 * time.Second, InUse: 10}, want: "level=WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			logPoolWait(context.Background(), logger, sql.DBStats{WaitCount: 3, WaitDuration: time.Second}, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "postgres pool contention")
		})
	}
}
