// Package logger содержит общий логгер для server и agent.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack) и удобный метод для логирования HTTP-запросов.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger представляет обёртку над zap.Logger для логирования HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

// Options описывает, куда и как писать логи.
type Options struct {
	// Dir — каталог для файла логов. Пустая строка отключает запись в файл.
	Dir string
	// File — имя файла внутри Dir.
	File string
	// Level — debug|info|warn|error.
	Level string
	// Format — json|console.
	Format string
	// Stderr — дублировать логи в stderr.
	Stderr bool
}

// DefaultOptions — файл runtime/logs/http.log, уровень info, текстовый формат.
func DefaultOptions() Options {
	return Options{
		Dir:    filepath.Join("runtime", "logs"),
		File:   "http.log",
		Level:  "info",
		Format: "console",
	}
}

// NewHTTPLogger создаёт файловый zap-логгер для HTTP-логов с настройками по умолчанию.
//
// Логи записываются в файл runtime/logs/http.log.
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge) и сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func NewHTTPLogger() *HTTPLogger {
	return New(DefaultOptions())
}

// New создаёт логгер по переданным опциям.
func New(opts Options) *HTTPLogger {
	var sinks []zapcore.WriteSyncer

	if opts.Dir != "" {
		_ = os.MkdirAll(opts.Dir, 0755)

		file := opts.File
		if file == "" {
			file = "http.log"
		}
		// lumberjack отвечает за ротацию файлов
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, file),
			MaxSize:    100, // MB ≈ ~300 000 строк
			MaxBackups: 10,  // сколько старых файлов хранить
			MaxAge:     30,  // дней
			Compress:   true,
		}))
	}
	if opts.Stderr {
		sinks = append(sinks, zapcore.Lock(os.Stderr))
	}

	return newWithSinks(opts, sinks...)
}

// NewConsoleLogger создаёт логгер, пишущий только в w.
// Используется агентом: ему файл логов не нужен.
func NewConsoleLogger(w io.Writer, level string) *HTTPLogger {
	return newWithSinks(Options{Level: level, Format: "console"}, zapcore.AddSync(w))
}

func newWithSinks(opts Options, sinks ...zapcore.WriteSyncer) *HTTPLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	var encoder zapcore.Encoder
	if strings.EqualFold(opts.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	var out zapcore.WriteSyncer
	switch len(sinks) {
	case 0:
		out = zapcore.AddSync(io.Discard)
	case 1:
		out = sinks[0]
	default:
		out = zapcore.NewMultiWriteSyncer(sinks...)
	}

	core := zapcore.NewCore(encoder, out, parseLevel(opts.Level))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &HTTPLogger{Logger: logger}
}

// NewNop возвращает логгер, который ничего не пишет. Удобен в тестах.
func NewNop() *HTTPLogger {
	return &HTTPLogger{Logger: zap.NewNop()}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// method и uri — параметры запроса,
// requestID — идентификатор запроса (X-Request-ID),
// status — HTTP-статус ответа,
// responseSize — размер ответа в байтах,
// duration — длительность обработки запроса в миллисекундах.
func (logger *HTTPLogger) LogRequest(method, uri, requestID string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

func parseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zap.InfoLevel
	}
	return lvl
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
