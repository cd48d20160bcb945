// Package profile writes runtime profiles of a command run.
//
// A [Config] registers one path flag per [Kind] (--profile-cpu,
// --profile-heap and so on). [Config.NewProfiler] returns a [Profiler]
// whose [Profiler.Start] and [Profiler.Stop] bracket the command:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(root.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	root.PersistentPreRunE = func(*cobra.Command, []string) error { return p.Start() }
//	root.PersistentPostRunE = func(*cobra.Command, []string) error { return p.Stop() }
//
// CPU profiling runs between Start and Stop; every other kind is a snapshot
// taken by Stop.
package profile
