package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type recordingTracer struct {
	name  string
	calls *[]string
}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, r.name+":start")
	return ctx
}

func (r recordingTracer) TraceQueryEnd(_ context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, r.name+":end")
}

func TestMultiTracerCallsEveryTracerInOrder(t *testing.T) {
	var calls []string
	mt := &multiTracer{tracers: []pgx.QueryTracer{
		recordingTracer{name: "newrelic", calls: &calls},
		recordingTracer{name: "tracelog", calls: &calls},
	}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Equal(t, []string{"newrelic:start", "tracelog:start", "newrelic:end", "tracelog:end"}, calls)
}

func TestSlowQueryTracerLogsAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	tracer := &slowQueryTracer{threshold: time.Millisecond, log: &log}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT * FROM properties"})
	time.Sleep(5 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Contains(t, buf.String(), "slow query")
	assert.Contains(t, buf.String(), "SELECT * FROM properties")
}

func TestSlowQueryTracerQuietBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	tracer := &slowQueryTracer{threshold: time.Hour, log: &log}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	assert.Empty(t, buf.String())
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	assert.NoError(t, err)
	assert.NotEmpty(t, entries)
}
