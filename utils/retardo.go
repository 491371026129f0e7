package utils

import (
	"log/slog"
	"time"
)

// AplicarRetardo simula la latencia de un dispositivo. Con duración 0 no
// registra nada, para no ensuciar las corridas de test.
func AplicarRetardo(operacion string, duracionMs int) {
	if duracionMs <= 0 {
		return
	}
	slog.Debug("Aplicando retardo", "operación", operacion, "duración_ms", duracionMs)
	time.Sleep(time.Duration(duracionMs) * time.Millisecond)
}
