package profiling

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"survivorslike/logger"
)

// ErrBusy is returned when a capture is already running or the cooldown has not elapsed
var ErrBusy = errors.New("profiler busy")

// Profiler writes CPU profiles and execution traces into a directory
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string

	// Whole-run capture, see Start
	cpuFile   *os.File
	traceFile *os.File
}

// New creates a profiler writing into dir
func New(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
	}, nil
}

func (p *Profiler) baseName(reason string) string {
	return fmt.Sprintf("%s-%s", reason, time.Now().Format("20060102-150405"))
}

// Capture records a CPU profile and a trace for a few seconds in the background.
// It never blocks the caller.
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("capture %s: %w", reason, ErrBusy)
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture %s (last one %v ago): %w", reason, since.Round(time.Second), ErrBusy)
	}
	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	baseName := p.baseName(reason)
	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.timed(baseName+".cpu.prof", startCPU, pprof.StopCPUProfile); err != nil {
				logger.Log.WithError(err).Error("CPU profile failed")
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.timed(baseName+".trace", startTrace, trace.Stop); err != nil {
				logger.Log.WithError(err).Error("Trace failed")
			}
		}()
		wg.Wait()

		p.logSummary(baseName)
	}()
	return nil
}

func startCPU(f *os.File) error {
	return pprof.StartCPUProfile(f)
}

func startTrace(f *os.File) error {
	return trace.Start(f)
}

func (p *Profiler) timed(name string, start func(*os.File) error, stop func()) error {
	path := filepath.Join(p.profilesDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := start(f); err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}
	time.Sleep(p.captureDuration)
	stop()
	return nil
}

// Start begins a CPU profile and trace that run until Stop. Used by the headless runner.
func (p *Profiler) Start(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.isProfiling {
		return fmt.Errorf("start %s: %w", reason, ErrBusy)
	}

	baseName := p.baseName(reason)
	cpuFile, err := os.Create(filepath.Join(p.profilesDir, baseName+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return fmt.Errorf("start cpu profile: %w", err)
	}

	traceFile, err := os.Create(filepath.Join(p.profilesDir, baseName+".trace"))
	if err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		return fmt.Errorf("create trace: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		pprof.StopCPUProfile()
		cpuFile.Close()
		traceFile.Close()
		return fmt.Errorf("start trace: %w", err)
	}

	p.cpuFile = cpuFile
	p.traceFile = traceFile
	p.isProfiling = true
	return nil
}

// Stop ends a capture begun with Start and closes its files
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cpuFile == nil {
		return nil
	}

	pprof.StopCPUProfile()
	trace.Stop()
	err := errors.Join(p.cpuFile.Close(), p.traceFile.Close())

	logger.Log.WithFields(logrus.Fields{
		"component": "profiler",
		"cpu":       p.cpuFile.Name(),
		"trace":     p.traceFile.Name(),
	}).Info("Profile saved")

	p.cpuFile = nil
	p.traceFile = nil
	p.isProfiling = false
	return err
}

// IsProfiling returns whether a capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) logSummary(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.Log.WithFields(logrus.Fields{
		"component":    "profiler",
		"profile":      filepath.Join(p.profilesDir, baseName+".cpu.prof"),
		"alloc_kb":     m.Alloc / 1024,
		"sys_kb":       m.Sys / 1024,
		"num_gc":       m.NumGC,
		"heap_objects": m.HeapObjects,
	}).Info("Profile captured, inspect with go tool pprof -http=:8080")
}
