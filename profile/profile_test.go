package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jdcr/profile"
)

func TestConfigFlags(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want     map[profile.Kind]string
		args     []string
		wantRate int
	}{
		"defaults": {
			args:     []string{},
			want:     map[profile.Kind]string{},
			wantRate: profile.DefaultMemProfileRate,
		},
		"paths and rate": {
			args: []string{"--profile-cpu=cpu.prof", "--profile-heap", "heap.prof", "--profile-mem-rate=1024"},
			want: map[profile.Kind]string{
				profile.KindCPU:  "cpu.prof",
				profile.KindHeap: "heap.prof",
			},
			wantRate: 1024,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := profile.NewConfig()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.RegisterFlags(flags)

			require.NoError(t, flags.Parse(tc.args))
			assert.Equal(t, tc.want, cfg.Paths)
			assert.Equal(t, tc.wantRate, cfg.MemProfileRate)
		})
	}
}

func TestConfigRegistersEveryKind(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	for _, k := range profile.AllKinds() {
		assert.NotNil(t, flags.Lookup("profile-"+string(k)), k)
	}
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	fn, ok := cmd.GetFlagCompletionFunc("profile-mem-rate")
	require.True(t, ok)

	values, directive := fn(cmd, nil, "")
	assert.Empty(t, values)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestProfilerWritesProfiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.Paths[profile.KindCPU] = filepath.Join(dir, "cpu.prof")
	cfg.Paths[profile.KindHeap] = filepath.Join(dir, "heap.prof")
	cfg.Paths[profile.KindGoroutine] = filepath.Join(dir, "goroutine.prof")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())

	for _, name := range []string{"cpu.prof", "heap.prof", "goroutine.prof"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}

	_, err := os.Stat(filepath.Join(dir, "allocs.prof"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProfilerErrors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing", "heap.prof")

	cfg := profile.NewConfig()
	cfg.Paths[profile.KindHeap] = missing

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.ErrorIs(t, p.Stop(), profile.ErrProfile)
}
