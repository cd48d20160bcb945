package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

// ErrProfile wraps every error from writing a profile.
var ErrProfile = errors.New("profile")

// Kind names a runtime profile.
type Kind string

// Profile kinds. [KindCPU] is sampled between [Profiler.Start] and
// [Profiler.Stop]; the others are snapshots.
const (
	KindCPU       Kind = "cpu"
	KindHeap      Kind = "heap"
	KindAllocs    Kind = "allocs"
	KindGoroutine Kind = "goroutine"
	KindBlock     Kind = "block"
	KindMutex     Kind = "mutex"
)

// AllKinds returns every [Kind], CPU first.
func AllKinds() []Kind {
	return []Kind{KindCPU, KindHeap, KindAllocs, KindGoroutine, KindBlock, KindMutex}
}

// Profiler writes the profiles of one run.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpu     *os.File
	paths   map[Kind]string
	memRate int
}

// Start sets the sampling rates the requested profiles need and starts CPU
// profiling when a CPU path is set.
func (p *Profiler) Start() error {
	if p.memRate > 0 && p.memRate != runtime.MemProfileRate {
		runtime.MemProfileRate = p.memRate
	}

	if _, ok := p.paths[KindBlock]; ok {
		runtime.SetBlockProfileRate(1)
	}

	if _, ok := p.paths[KindMutex]; ok {
		runtime.SetMutexProfileFraction(1)
	}

	path, ok := p.paths[KindCPU]
	if !ok {
		return nil
	}

	f, err := os.Create(path) //nolint:gosec // Path comes from a flag.
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProfile, KindCPU, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(
			fmt.Errorf("%w: %s: %w", ErrProfile, KindCPU, err),
			f.Close(),
		)
	}

	p.cpu = f

	return nil
}

// Stop ends CPU profiling and writes every requested snapshot. It keeps
// going after a failure and returns all errors joined. Stop without Start
// only writes snapshots.
func (p *Profiler) Stop() error {
	var errs []error

	if p.cpu != nil {
		pprof.StopCPUProfile()

		err := p.cpu.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrProfile, KindCPU, err))
		}

		p.cpu = nil
	}

	for _, k := range AllKinds()[1:] {
		path, ok := p.paths[k]
		if !ok {
			continue
		}

		err := writeSnapshot(k, path)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		slog.Debug("wrote profile", slog.String("kind", string(k)), slog.String("path", path))
	}

	return errors.Join(errs...)
}

func writeSnapshot(k Kind, path string) error {
	prof := pprof.Lookup(string(k))
	if prof == nil {
		return fmt.Errorf("%w: %s: no such runtime profile", ErrProfile, k)
	}

	f, err := os.Create(path) //nolint:gosec // Path comes from a flag.
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProfile, k, err)
	}

	err = prof.WriteTo(f, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %s: %w", ErrProfile, k, err), f.Close())
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProfile, k, err)
	}

	return nil
}
