package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/hashdot/hashdot/internal/styles"
)

var (
	// Current log level
	currentLevel slog.Level

	// Default logger instance
	logger *slog.Logger

	// Styles for different log levels using lipgloss
	traceStyle = styles.LogTraceStyle
	debugStyle = styles.LogDebugStyle
	infoStyle  = styles.LogInfoStyle
	warnStyle  = styles.LogWarnStyle
	errorStyle = styles.LogErrorStyle
)

// Custom log level for TRACE
const LevelTrace = slog.Level(-8)

// ColorTextHandler is a simple handler that adds colors to log output.
// All launcher diagnostics go to stderr: stdout belongs to the hosted
// program once control is transferred.
type ColorTextHandler struct {
	w     io.Writer
	color bool
}

// NewColorTextHandler creates a new ColorTextHandler
func NewColorTextHandler(w io.Writer) *ColorTextHandler {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &ColorTextHandler{w: w, color: color}
}

// Handle handles the log record
func (h *ColorTextHandler) Handle(ctx context.Context, r slog.Record) error {
	var levelText string
	switch r.Level {
	case LevelTrace:
		levelText = h.render(traceStyle, "TRACE")
	case slog.LevelDebug:
		levelText = h.render(debugStyle, "DEBUG")
	case slog.LevelInfo:
		levelText = h.render(infoStyle, "INFO")
	case slog.LevelWarn:
		levelText = h.render(warnStyle, "WARN")
	case slog.LevelError:
		levelText = h.render(errorStyle, "ERROR")
	default:
		levelText = r.Level.String()
	}

	var attrs strings.Builder
	r.Attrs(func(a slog.Attr) bool {
		attrs.WriteString(" " + a.Key + "=" + h.formatAttrValue(a.Value))
		return true
	})

	_, err := fmt.Fprintf(h.w, "%s %s%s\n", levelText, r.Message, attrs.String())
	return err
}

func (h *ColorTextHandler) render(style lipgloss.Style, text string) string {
	if !h.color {
		return text
	}
	return style.Render(text)
}

// formatAttrValue formats a slog.Value as a string with proper styling
func (h *ColorTextHandler) formatAttrValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.render(styles.BoldStyle, fmt.Sprintf("%q", v.String()))
	case slog.KindInt64:
		return h.render(styles.InfoStyle, fmt.Sprintf("%d", v.Int64()))
	case slog.KindBool:
		if v.Bool() {
			return h.render(styles.SuccessStyle, "true")
		}
		return h.render(styles.ErrorStyle, "false")
	case slog.KindAny:
		return h.render(styles.DebugStyle, fmt.Sprintf("%v", v.Any()))
	default:
		return h.render(styles.MutedStyle, v.String())
	}
}

// WithAttrs returns a new handler with the given attributes
func (h *ColorTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns a new handler with the given group
func (h *ColorTextHandler) WithGroup(name string) slog.Handler {
	return h
}

// Enabled reports whether the handler handles records at the given level
func (h *ColorTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= currentLevel
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// A normal launch is silent.
		return slog.LevelWarn
	}
}

// InitWithLevel initializes the logger with the specified log level
func InitWithLevel(level string) {
	currentLevel = parseLogLevel(level)

	handler := NewColorTextHandler(os.Stderr)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// Init initializes the logger from the debug flag
func Init(debug bool) {
	if debug {
		InitWithLevel("debug")
	} else {
		InitWithLevel("warn")
	}
}

// SetOutput sets the output writer for the logger
func SetOutput(w io.Writer) {
	handler := NewColorTextHandler(w)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// Trace logs a trace message (most verbose level)
func Trace(msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
