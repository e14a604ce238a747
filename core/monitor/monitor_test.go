package monitor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"webboot/core/monitor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		mb   uint64
		want monitor.Band
	}{
		{0, monitor.BandLow},
		{49, monitor.BandLow},
		{50, monitor.BandNormal},
		{70, monitor.BandNormal},
		{71, monitor.BandElevated},
		{100, monitor.BandElevated},
		{101, monitor.BandHigh},
		{200, monitor.BandHigh},
		{201, monitor.BandCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, monitor.Classify(tt.mb), "mb=%d", tt.mb)
	}
}

func TestBand_Level(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, monitor.BandLow.Level())
	assert.Equal(t, zapcore.InfoLevel, monitor.BandNormal.Level())
	assert.Equal(t, zapcore.WarnLevel, monitor.BandElevated.Level())
	assert.Equal(t, zapcore.WarnLevel, monitor.BandHigh.Level())
	assert.Equal(t, zapcore.ErrorLevel, monitor.BandCritical.Level())
	assert.Equal(t, "critical", monitor.BandCritical.String())
}

func TestReporter_Report(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sampler := monitor.SamplerFunc(func() (uint64, error) {
		return 150 * 1024 * 1024, nil
	})

	monitor.NewReporter(sampler, zap.New(core), time.Minute).Report()

	entries := logs.FilterMessage("Server load").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, uint64(150), entries[0].ContextMap()["rss_mb"])
	assert.Equal(t, "high", entries[0].ContextMap()["band"])
}

func TestReporter_SampleError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sampler := monitor.SamplerFunc(func() (uint64, error) {
		return 0, errors.New("no procfs")
	})

	monitor.NewReporter(sampler, zap.New(core), time.Minute).Report()

	assert.Equal(t, 1, logs.FilterMessage("Failed to sample memory usage").Len())
	assert.Zero(t, logs.FilterMessage("Server load").Len())
}

func TestReporter_Run(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var calls atomic.Int32
	sampler := monitor.SamplerFunc(func() (uint64, error) {
		calls.Add(1)
		return 10 * 1024 * 1024, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitor.NewReporter(sampler, zap.New(core), 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop after cancel")
	}
	assert.GreaterOrEqual(t, logs.FilterMessage("Server load").Len(), 2)
}

func TestProcessSampler(t *testing.T) {
	s, err := monitor.NewProcessSampler()
	require.NoError(t, err)

	rss, err := s.RSS()
	require.NoError(t, err)
	assert.NotZero(t, rss)
}
