package gomaskx

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// globalLog project global logger using atomic pointer for thread-safety.
	globalLog atomic.Pointer[Logger]
	// once ensures New() only configures the global logger once.
	once sync.Once
)

func init() {
	// Initialize with default logger so it's always ready to use.
	globalLog.Store(setupLog())
}

// Logger wraps zap.Logger with masked payload rendering, custom formatting
// and stack trace support. Create a new Logger using New() with functional
// options.
//
// Example:
//
//	logger := gomaskx.New(
//		gomaskx.WithServiceName("my-service"),
//		gomaskx.WithMasking(true),
//	)
type Logger struct {
	logger *zap.Logger
	config *Config
}

// formatStackTraceBytes formats a stack trace string into a compact, bracketed format.
// It replaces newlines and tabs with pipe separators for improved readability.
// This function operates byte-by-byte to ensure zero allocations.
//
// Example: "goroutine 1\nmain.main\n\tfile.go:10" -> "[goroutine 1 | main.main | file.go:10]"
func formatStackTraceBytes(dst *bytes.Buffer, stackStr string) {
	dst.WriteByte('[')
	for i := 0; i < len(stackStr); i++ {
		// Check for \n\t pattern and convert to pipe separator
		if i+2 <= len(stackStr) && stackStr[i] == '\n' && stackStr[i+1] == '\t' {
			dst.WriteString(" | ")
			i++ // skip the tab character
			continue
		}
		// Convert standalone newlines to pipe separators
		if stackStr[i] == '\n' {
			dst.WriteString(" | ")
		} else {
			dst.WriteByte(stackStr[i])
		}
	}
	dst.WriteByte(']')
}

// stackTraceFormattingWriter wraps io.Writer to format stack traces in JSON output.
// It implements zapcore.WriteSyncer and performs byte-level scanning to detect
// and format stack_trace fields without full JSON parsing (zero-allocation design).
type stackTraceFormattingWriter struct {
	io.Writer               // Underlying writer for formatted output
	buf       *bytes.Buffer // Pre-allocated 1KB buffer reused across writes to minimize allocations
}

// Write implements io.Writer and formats stack traces in JSON output.
// It uses a zero-copy byte scanning approach to detect and format stack_trace fields
// without unmarshaling the entire JSON payload, maintaining zap's zero-allocation guarantee.
func (w *stackTraceFormattingWriter) Write(p []byte) (n int, err error) {
	// Fast path: only process if there's a stack_trace field
	// This avoids unnecessary processing for non-error logs
	if !bytes.Contains(p, []byte("\"stack_trace\":\"")) {
		return w.Writer.Write(p)
	}

	// Find the position of stack_trace field
	stackTraceKey := []byte("\"stack_trace\":\"")
	idx := bytes.Index(p, stackTraceKey)

	// Calculate the starting position of the stack trace value (after the key)
	startIdx := idx + len(stackTraceKey)
	endIdx := startIdx

	// Scan forward to find the closing quote, respecting escape sequences
	for endIdx < len(p)-1 {
		if p[endIdx] == '\\' {
			endIdx += 2 // Skip both backslash and the escaped character
			continue
		}
		if p[endIdx] == '"' {
			break // Found the closing quote
		}
		endIdx++
	}

	// If we didn't find a complete stack trace value, write data as-is
	if endIdx >= len(p) {
		return w.Writer.Write(p)
	}

	// Decode the JSON-escaped stack trace string to get the actual content
	stackBytes := p[startIdx:endIdx]
	stackStr := decodeJSONString(stackBytes)

	// Format the stack trace and reconstruct the JSON with formatted stack trace
	w.buf.Reset()
	w.buf.Write(p[:startIdx])              // Write everything before the stack trace value
	formatStackTraceBytes(w.buf, stackStr) // Write the formatted stack trace
	w.buf.Write(p[endIdx:])                // Write everything after the stack trace value (closing quote and rest)

	return w.Writer.Write(w.buf.Bytes())
}

var decodeBufPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// decodeJSONString decodes a JSON-escaped string without unmarshaling the entire JSON.
// This function handles common escape sequences: \", \\, \n, and \t.
// Unknown escape sequences are kept as-is.
//
// This is optimized for the common case where there are no escapes,
// avoiding buffer allocation and processing overhead.
func decodeJSONString(b []byte) string {
	// Optimization: if there are no backslashes, return immediately
	if !bytes.Contains(b, []byte("\\")) {
		return string(b)
	}

	buf := decodeBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer decodeBufPool.Put(buf)

	// Process escape sequences byte by byte
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+1 < len(b) {
			next := b[i+1]
			switch next {
			case '"': // Escaped quote
				buf.WriteByte('"')
				i++
			case '\\': // Escaped backslash
				buf.WriteByte('\\')
				i++
			case 'n': // Escaped newline
				buf.WriteByte('\n')
				i++
			case 't': // Escaped tab
				buf.WriteByte('\t')
				i++
			default: // Unknown escape sequence - keep the backslash
				buf.WriteByte(b[i])
			}
		} else {
			buf.WriteByte(b[i])
		}
	}
	return buf.String()
}

// Sync implements zapcore.WriteSyncer.
// It attempts to sync the underlying writer if it supports the WriteSyncer interface,
// otherwise it returns nil (no-op for writers that don't support syncing).
func (w *stackTraceFormattingWriter) Sync() error {
	if syncer, ok := w.Writer.(zapcore.WriteSyncer); ok {
		return syncer.Sync()
	}
	return nil
}

// New sets the global logger configuration exactly once.
// Subsequent calls to New will return the existing global logger.
// Returns the global Logger instance.
//
// Example:
//
//	logger := gomaskx.New(
//	    gomaskx.WithServiceName("my-service"),
//	    gomaskx.WithMasking(true),
//	)
func New(opts ...Option) *Logger {
	once.Do(func() {
		globalLog.Store(setupLog(opts...))
	})
	return globalLog.Load()
}

func setupLog(opts ...Option) *Logger {
	// Apply options to default config
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Configure JSON encoder with production defaults
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderConfig.CallerKey = "source"
	encoderConfig.FunctionKey = "function"
	encoderConfig.StacktraceKey = "stack_trace"
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	// Use custom writer for zero-allocation stack trace formatting
	writer := &stackTraceFormattingWriter{
		Writer: cfg.Output,
		buf:    bytes.NewBuffer(make([]byte, 0, 1024)),
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(writer),
		cfg.Level,
	)

	logger := zap.New(
		core,
		zap.AddStacktrace(zapcore.FatalLevel),
	).With(zap.String("application_name", cfg.ServiceName))

	return &Logger{
		logger: logger,
		config: cfg,
	}
}

// Severity level constants for Cloud Logging compatibility.
// Using constants avoids string allocations on every log call.
const (
	severityDebug    = "DEBUG"
	severityInfo     = "INFO"
	severityWarning  = "WARNING"
	severityError    = "ERROR"
	severityCritical = "CRITICAL"
)

// Stage constants for execution logging.
const (
	stageInit   = "init"
	stageFinish = "finish"
)

// fieldPool reuses zap.Field slices to reduce allocations.
// Capacity of 12 covers the maximum number of fields used in any logging
// function (HTTP emits up to 11).
var fieldPool = sync.Pool{
	New: func() any { return make([]zap.Field, 0, 12) },
}

// getFields retrieves a field slice from the pool.
// Always returns an empty slice ready for use.
func getFields() []zap.Field {
	return fieldPool.Get().([]zap.Field)[:0]
}

// putFields returns a field slice to the pool for reuse.
// Resets the slice to zero length before returning.
func putFields(f []zap.Field) {
	fieldPool.Put(f[:0])
}

// masker returns the Masker used to render payloads.
func (l *Logger) masker() *Masker {
	if m := l.config.Masking.Masker; m != nil {
		return m
	}
	return defaultMasker
}

// payloadField renders v through the Masker when masking is enabled.
// A failed mask never logs the unmasked payload; the error is logged instead.
func (l *Logger) payloadField(key string, v any) zap.Field {
	if v == nil {
		return zap.Skip()
	}
	if !l.config.Masking.Enabled {
		return zap.Any(key, v)
	}
	masked, err := l.masker().Mask(v)
	if err != nil {
		return zap.NamedError(key+"_error", err)
	}
	return zap.String(key, masked)
}

// parametersField renders a parameter list through the Masker.
func (l *Logger) parametersField(params []any) zap.Field {
	if !l.config.Masking.Enabled {
		return zap.Any("parameters", params)
	}
	rendered := make([]string, len(params))
	for i, p := range params {
		masked, err := l.masker().Mask(p)
		if err != nil {
			return zap.NamedError("parameters_error", err)
		}
		rendered[i] = masked
	}
	return zap.Strings("parameters", rendered)
}

// Execution logs method entry (stage=init) with masked parameters and returns
// a closure that logs method exit (stage=finish) with the masked result and
// elapsed time in milliseconds.
//
// Example:
//
//	done := logger.Execution("trace-001", "user-service", "CreateUser", req)
//	resp, err := createUser(req)
//	done(resp, err)
func (l *Logger) Execution(traceID string, module string, method string, params ...any) func(result any, err error) {
	start := time.Now()

	fields := getFields()
	fields = append(fields,
		zap.String("trace_id", traceID),
		zap.String("module", module),
		zap.String("method", method),
		zap.String("stage", stageInit),
		zap.String("severity", severityInfo),
	)
	if l.config.Execution.LogParameters && len(params) > 0 {
		fields = append(fields, l.parametersField(params))
	}
	l.logger.Log(zapcore.InfoLevel, "method execution started", fields...)
	putFields(fields)

	return func(result any, err error) {
		elapsed := time.Since(start).Milliseconds()

		fields := getFields()
		defer putFields(fields)

		fields = append(fields,
			zap.String("trace_id", traceID),
			zap.String("module", module),
			zap.String("method", method),
			zap.String("stage", stageFinish),
			zap.String("severity", severityInfo),
		)
		if l.config.Execution.LogParameters && len(params) > 0 {
			fields = append(fields, l.parametersField(params))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		} else if l.config.Execution.LogReturn && result != nil {
			fields = append(fields, l.payloadField("result", result))
		}
		fields = append(fields, zap.Int64("time_execution_ms", elapsed))

		l.logger.Log(zapcore.InfoLevel, "method execution finished", fields...)
	}
}

// Execution logs method entry/exit using the global logger.
func Execution(traceID string, module string, method string, params ...any) func(result any, err error) {
	return globalLog.Load().Execution(traceID, module, method, params...)
}

// HTTP logs an HTTP interaction with the body rendered through the Masker.
// It is a no-op when HTTP logging is disabled in the configuration.
func (l *Logger) HTTP(traceID string, module string, msgType MsgType, msg string, data HTTPData) {
	if !l.config.HTTPLogging.Enabled {
		return
	}

	fields := getFields()
	defer putFields(fields)

	fields = append(fields,
		zap.String("trace_id", traceID),
		zap.String("module", module),
		zap.String("msg_type", string(msgType)),
		zap.String("severity", severityInfo),
		zap.String("http_method", data.Method),
		zap.String("url", data.URL),
	)
	if data.StatusCode != 0 {
		fields = append(fields, zap.Int("status_code", data.StatusCode))
	}
	if data.Duration != "" {
		fields = append(fields, zap.String("duration", data.Duration))
	}
	if data.ClientIP != "" {
		fields = append(fields, zap.String("client_ip", data.ClientIP))
	}
	if data.Headers != nil {
		fields = append(fields, zap.Any("headers", data.Headers))
	}
	if data.Body != nil {
		fields = append(fields, l.payloadField("body", data.Body))
	}
	l.logger.Log(zapcore.InfoLevel, msg, fields...)
}

// HTTP logs an HTTP interaction using the global logger.
func HTTP(traceID string, module string, msgType MsgType, msg string, data HTTPData) {
	globalLog.Load().HTTP(traceID, module, msgType, msg, data)
}

// Fatal logs a critical error and terminates the process.
func (l *Logger) Fatal(traceID string, module string, err error) {
	fields := getFields()
	defer putFields(fields)

	logger := l.logger.WithOptions(zap.AddCaller(), zap.AddCallerSkip(detectCallerSkip()))
	fields = append(fields,
		zap.String("trace_id", traceID),
		zap.String("module", module),
		zap.Error(err),
		zap.String("severity", severityCritical),
	)

	logger.Log(zapcore.FatalLevel, "fatal error occurred", fields...)
}

// Fatal logs a critical error using the global logger and terminates the process.
func Fatal(traceID string, module string, err error) {
	globalLog.Load().Fatal(traceID, module, err)
}

// Error logs an error event with automatic stack trace capture.
func (l *Logger) Error(traceID string, module string, err error) {
	fields := getFields()
	defer putFields(fields)

	logger := l.logger.WithOptions(zap.AddCaller(), zap.AddCallerSkip(detectCallerSkip()))
	fields = append(fields,
		zap.String("trace_id", traceID),
		zap.String("module", module),
		zap.Error(err),
		zap.String("severity", severityError),
	)
	logger.Log(zapcore.ErrorLevel, "error occurred", fields...)
}

// Error logs an error event using the global logger with automatic stack trace capture.
func Error(traceID string, module string, err error) {
	globalLog.Load().Error(traceID, module, err)
}

// Warning logs a warning-level message with optional context data.
func (l *Logger) Warning(traceID string, module string, msg string, data any) {
	fields := getFields()
	defer putFields(fields)

	logger := l.logger.WithOptions(zap.AddCaller(), zap.AddCallerSkip(detectCallerSkip()))
	fields = append(fields,
		zap.String("trace_id", traceID),
		zap.String("module", module),
		zap.String("severity", severityWarning),
	)
	if data != nil {
		fields = append(fields, l.payloadField("data", data))
	}
	logger.Log(zapcore.WarnLevel, msg, fields...)
}

// Warning logs a warning-level message using the global logger with optional context data.
func Warning(traceID string, module string, msg string, data any) {
	globalLog.Load().Warning(traceID, module, msg, data)
}

// Info logs an informational message with a specified message type.
func (l *Logger) Info(traceID string, module string, msgType MsgType, msg string, data any) {
	fields := getFields()
	defer putFields(fields)

	fields = append(fields,
		zap.String("trace_id", traceID),
		zap.String("module", module),
		zap.String("msg_type", string(msgType)),
		zap.String("severity", severityInfo),
	)
	if data != nil {
		fields = append(fields, l.payloadField("data", data))
	}
	l.logger.Log(zapcore.InfoLevel, msg, fields...)
}

// Info logs an informational message using the global logger with a specified message type.
func Info(traceID string, module string, msgType MsgType, msg string, data any) {
	globalLog.Load().Info(traceID, module, msgType, msg, data)
}

// Debug logs a debug-level message with a specified message type.
func (l *Logger) Debug(traceID string, module string, msgType MsgType, msg string, data any) {
	fields := getFields()
	defer putFields(fields)

	logger := l.logger.WithOptions(zap.AddCaller(), zap.AddCallerSkip(detectCallerSkip()))
	fields = append(fields,
		zap.String("trace_id", traceID),
		zap.String("module", module),
		zap.String("msg_type", string(msgType)),
		zap.String("severity", severityDebug),
	)
	if data != nil {
		fields = append(fields, l.payloadField("data", data))
	}
	logger.Log(zapcore.DebugLevel, msg, fields...)
}

// Debug logs a debug-level message using the global logger with a specified message type.
func Debug(traceID string, module string, msgType MsgType, msg string, data any) {
	globalLog.Load().Debug(traceID, module, msgType, msg, data)
}
