package monitor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultInterval is the period between two memory reports.
const DefaultInterval = 60 * time.Second

const mib = 1024 * 1024

// Band is a coarse resident-memory category.
type Band int

const (
	BandLow Band = iota
	BandNormal
	BandElevated
	BandHigh
	BandCritical
)

// Classify places a resident size in MiB into its band.
// Upper bounds are inclusive: 70 is normal, 100 elevated, 200 high.
func Classify(mb uint64) Band {
	switch {
	case mb < 50:
		return BandLow
	case mb <= 70:
		return BandNormal
	case mb <= 100:
		return BandElevated
	case mb <= 200:
		return BandHigh
	default:
		return BandCritical
	}
}

func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandNormal:
		return "normal"
	case BandElevated:
		return "elevated"
	case BandHigh:
		return "high"
	case BandCritical:
		return "critical"
	default:
		return fmt.Sprintf("band(%d)", int(b))
	}
}

// Level is the log level a report in this band is written at.
func (b Band) Level() zapcore.Level {
	switch b {
	case BandLow, BandNormal:
		return zapcore.InfoLevel
	case BandElevated, BandHigh:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Sampler reports the resident set size of the process in bytes.
type Sampler interface {
	RSS() (uint64, error)
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func() (uint64, error)

func (f SamplerFunc) RSS() (uint64, error) {
	return f()
}

// ProcessSampler samples the current process through gopsutil.
type ProcessSampler struct {
	proc *process.Process
}

// NewProcessSampler returns a sampler for the running process.
func NewProcessSampler() (*ProcessSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to open process: %w", err)
	}
	return &ProcessSampler{proc: p}, nil
}

func (s *ProcessSampler) RSS() (uint64, error) {
	info, err := s.proc.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return info.RSS, nil
}

// Reporter periodically logs the process memory usage.
// It only reads process metrics and shares no state with request handling.
type Reporter struct {
	sampler  Sampler
	logger   *zap.Logger
	interval time.Duration
	pid      int
}

// NewReporter creates a reporter. A non-positive interval means DefaultInterval.
func NewReporter(sampler Sampler, logger *zap.Logger, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		sampler:  sampler,
		logger:   logger,
		interval: interval,
		pid:      os.Getpid(),
	}
}

// Run reports once per interval until ctx is cancelled.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Report()
		}
	}
}

// Report takes one sample and logs it.
func (r *Reporter) Report() {
	rss, err := r.sampler.RSS()
	if err != nil {
		r.logger.Warn("Failed to sample memory usage", zap.Error(err))
		return
	}

	mb := rss / mib
	band := Classify(mb)
	if ce := r.logger.Check(band.Level(), "Server load"); ce != nil {
		ce.Write(
			zap.Int("pid", r.pid),
			zap.Uint64("rss_mb", mb),
			zap.Stringer("band", band),
		)
	}
}
