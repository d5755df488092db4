package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - процессный логгер для cmd/. Пакеты движка его не используют:
// они получают logrus.FieldLogger через конструктор.
var Log *logrus.Logger

// Init инициализирует глобальный логгер из LOG_LEVEL и LOG_FORMAT.
// Вызывается один раз при старте в main.go.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	Log = New(logLevel, os.Getenv("LOG_FORMAT"))
}

// New собирает логгер с заданным уровнем и форматом.
// Неизвестный уровень -> info. "json" -> JSONFormatter, иначе текст.
func New(level, format string) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	l.SetOutput(os.Stdout)
	return l
}

// Discard возвращает логгер, который ничего не пишет. Используется,
// когда вызывающий не передал свой логгер.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// OrDiscard подставляет Discard вместо nil.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}
	return l
}
