// Package exitcode defines process exit codes.
package exitcode

const (
	// Success indicates normal termination.
	Success = 0

	// UserError indicates bad invocation (unknown flag, bad value).
	UserError = 1

	// ConfigError indicates unusable configuration.
	ConfigError = 2

	// RuntimeError indicates the UI terminated abnormally.
	RuntimeError = 3
)
