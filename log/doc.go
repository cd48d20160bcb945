// Package log builds [log/slog] handlers from command line flags.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] use the
// standard library handlers, and [FormatText] uses [charm.land/log/v2] for
// colored terminal output. Levels are named by [Level].
//
// Typical usage creates a [Config], registers its flags, and installs the
// handler at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// While a full-screen viewer owns the terminal, log output goes to a
// [Publisher] instead, and the viewer reads records from a [Subscription]:
//
//	pub := log.NewPublisher()
//	slog.SetDefault(slog.New(log.NewHandler(pub, log.LevelInfo, log.FormatLogfmt)))
//	sub := pub.Subscribe()
package log
