package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// 常用的欄位名稱
const (
	FieldComponent = "component"
	FieldOwner     = "owner_id"
	FieldTranID    = "transaction_id"
	FieldAccount   = "account"
	FieldAmount    = "amount"
	FieldOperation = "operation"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldKind      = "error_kind"
)

// Config 定義 Logger 的配置
type Config struct {
	Level  string `yaml:"level"`  // debug / info / warn / error
	Format string `yaml:"format"` // text / json
}

// Logger 包裝 slog.Logger 並附帶 component 欄位
type Logger struct {
	*slog.Logger
	component string
}

// New 依配置建立 Logger，輸出到 stdout
func New(cfg Config) *Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter 依配置建立輸出到 w 的 Logger
func NewWithWriter(cfg Config, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler), component: "app"}
}

// Nop 丟棄所有輸出，給測試用
func Nop() *Logger {
	return NewWithWriter(Config{Level: "error"}, io.Discard)
}

// ParseLevel 將字串轉為 slog.Level，無法辨識時使用 info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent 回傳帶有指定 component 的 Logger
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With(FieldComponent, component),
		component: component,
	}
}

// With 回傳附加欄位後的 Logger
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		component: l.component,
	}
}

// Component 回傳 component 名稱
func (l *Logger) Component() string {
	return l.component
}

// Failure 以 error 等級記錄並附上錯誤欄位
func (l *Logger) Failure(ctx context.Context, msg string, err error, args ...any) {
	l.Logger.ErrorContext(ctx, msg, append([]any{FieldError, err}, args...)...)
}

// SetDefault 設為 slog 預設 Logger
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}
