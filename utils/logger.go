package utils

import (
	"log/slog"
	"os"
	"strings"
)

var (
	InfoLog  *slog.Logger
	ErrorLog *slog.Logger
)

// NivelDesdeString convierte el nivel textual de la configuración a slog.Level
func NivelDesdeString(nivel string) slog.Level {
	switch strings.ToLower(nivel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InicializarLogger configura los loggers globales del módulo
func InicializarLogger(logLevel string, nombreModulo string) {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: NivelDesdeString(logLevel),
	})

	logger := slog.New(handler).With("modulo", nombreModulo)

	InfoLog = logger
	ErrorLog = logger
}
