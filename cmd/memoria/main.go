package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/memoria.json\n", os.Args[0])
		os.Exit(1)
	}

	// Logger provisorio hasta leer el nivel de la configuración
	utils.InicializarLogger("info", "Memoria")

	config := utils.CargarConfiguracion[MemoriaConfig](os.Args[1])
	utils.InicializarLogger(config.LogLevel, "Memoria")

	so, err := NuevoSistemaOperativo(config)
	if err != nil {
		utils.ErrorLog.Error("Error inicializando el simulador", "error", err)
		os.Exit(1)
	}
	defer so.Cerrar()

	if config.ModoServidor {
		ejecutarServidor(config, so)
		return
	}
	ejecutarCargaSintetica(config, so)
}

// ejecutarServidor atiende las llamadas al sistema por el protocolo de mensajes
func ejecutarServidor(config *MemoriaConfig, so *SistemaOperativo) {
	server := utils.NewHTTPServer(config.IPMemoria, config.PuertoMemoria, "Memoria")
	registrarHandlers(server, so)
	if err := server.Iniciar(); err != nil {
		utils.ErrorLog.Error("Error en el servidor HTTP", "error", err)
		os.Exit(1)
	}
}

// ejecutarCargaSintetica corre la simulación con procesos autónomos durante
// DURACION_MS y termina con el resumen de estadísticas
func ejecutarCargaSintetica(config *MemoriaConfig, so *SistemaOperativo) {
	for i := 0; i < config.CantidadProcesos; i++ {
		if _, err := so.CrearProceso(config.TamProceso); err != nil {
			utils.ErrorLog.Error("No se pudo crear el proceso", "error", err)
			break
		}
	}

	time.Sleep(time.Duration(config.DuracionMs) * time.Millisecond)
	so.KillAll()

	// margen para que los procesos tomen la interrupción
	time.Sleep(100 * time.Millisecond)
	so.Estadisticas.Registrar()
}
