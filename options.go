package gomaskx

import (
	"io"
	"os"

	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration options.
type Config struct {
	// ServiceName is the name of the service using this logger.
	// It will be included in all log entries as "application_name".
	ServiceName string

	// Level is the minimum log level that will be output.
	// Default: zapcore.InfoLevel
	Level zapcore.Level

	// Output is the writer where logs will be written.
	// Default: os.Stdout
	Output io.Writer

	// Masking controls whether log payloads are rendered through the Masker.
	Masking MaskingConfig

	// Execution controls method execution logging behavior.
	Execution ExecutionConfig

	// HTTPLogging controls HTTP call logging behavior.
	HTTPLogging HTTPLoggingConfig
}

// MaskingConfig controls field masking behavior.
type MaskingConfig struct {
	// Enabled determines whether payloads passed to the logging functions are
	// rendered through the Masker. When false, payloads are logged via
	// reflection without masking.
	// Default: true
	Enabled bool

	// Masker performs the rendering. Defaults to the package-level Masker.
	Masker *Masker
}

// ExecutionConfig controls what Execution logs at each stage.
type ExecutionConfig struct {
	// LogParameters determines whether method parameters are logged on entry
	// and exit. Default: true
	LogParameters bool

	// LogReturn determines whether the method result is logged on exit.
	// Default: true
	LogReturn bool
}

// HTTPLoggingConfig controls HTTP call logging.
type HTTPLoggingConfig struct {
	// Enabled determines whether HTTP calls are logged at all.
	// Default: true
	Enabled bool
}

// Option configures a Logger.
type Option func(*Config)

// WithServiceName sets the service name for the logger.
// The service name appears in all log entries as "application_name".
//
// Example:
//
//	logger := gomaskx.New(gomaskx.WithServiceName("my-service"))
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithOutput sets the output writer for logs.
// By default, logs are written to os.Stdout.
//
// Example:
//
//	file, _ := os.OpenFile("app.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
//	logger := gomaskx.New(
//	    gomaskx.WithServiceName("my-service"),
//	    gomaskx.WithOutput(file),
//	)
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithDebug lowers the minimum level to debug.
func WithDebug(debug bool) Option {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	return func(c *Config) {
		c.Level = level
	}
}

// WithMasking toggles rendering of log payloads through the Masker.
//
// Example:
//
//	logger := gomaskx.New(
//	    gomaskx.WithServiceName("my-service"),
//	    gomaskx.WithMasking(true),
//	)
func WithMasking(masking bool) Option {
	return func(c *Config) {
		c.Masking.Enabled = masking
	}
}

// WithMasker replaces the Masker used to render payloads. Useful when the
// caller needs an isolated descriptor cache lifecycle.
func WithMasker(m *Masker) Option {
	return func(c *Config) {
		c.Masking.Masker = m
	}
}

// WithExecutionLogging controls whether Execution logs parameters and results.
func WithExecutionLogging(logParameters, logReturn bool) Option {
	return func(c *Config) {
		c.Execution.LogParameters = logParameters
		c.Execution.LogReturn = logReturn
	}
}

// WithHTTPLogging toggles HTTP call logging.
func WithHTTPLogging(enabled bool) Option {
	return func(c *Config) {
		c.HTTPLogging.Enabled = enabled
	}
}

// defaultConfig returns the default logger configuration.
func defaultConfig() *Config {
	return &Config{
		ServiceName: "unknown",
		Level:       zapcore.InfoLevel,
		Output:      os.Stdout,
		Masking: MaskingConfig{
			Enabled: true,
			Masker:  defaultMasker,
		},
		Execution: ExecutionConfig{
			LogParameters: true,
			LogReturn:     true,
		},
		HTTPLogging: HTTPLoggingConfig{
			Enabled: true,
		},
	}
}
