package main

import "fmt"

// MemoriaConfig es la configuración del simulador
type MemoriaConfig struct {
	LogLevel string `json:"LOG_LEVEL"`

	// Parámetros de máquina
	TamPalabra        int `json:"TAM_PALABRA"`         // bytes por palabra (4 = 32 bits)
	TamRAM            int `json:"TAM_RAM"`             // bytes de memoria física
	TamPagina         int `json:"TAM_PAGINA"`          // bytes por página
	TamEspacioVirtual int `json:"TAM_ESPACIO_VIRTUAL"` // bytes de espacio virtual por proceso

	// Parámetros de proceso
	MaxPaginasPorProceso int    `json:"MAX_PAGINAS_POR_PROCESO"` // tope de páginas residentes por proceso
	FactorLocalidad      int    `json:"FACTOR_LOCALIDAD"`        // operaciones dentro de una región de página
	AlgoritmoReemplazo   string `json:"ALGORITMO_REEMPLAZO"`     // CLOCK, FIFO o RANDOM

	// Swap
	SwapfilePath string `json:"SWAPFILE_PATH"`
	RetardoSwap  int    `json:"RETARDO_SWAP"` // latencia simulada por transferencia, en ms

	// Driver de carga sintética
	CantidadProcesos int   `json:"CANTIDAD_PROCESOS"`
	TamProceso       int   `json:"TAM_PROCESO"`
	DuracionMs       int   `json:"DURACION_MS"`
	Semilla          int64 `json:"SEMILLA"`       // 0 = derivar del reloj
	AutoEjecutar     bool  `json:"AUTO_EJECUTAR"` // arrancar la unidad de ejecución al crear el proceso

	// Servidor
	ModoServidor  bool   `json:"MODO_SERVIDOR"`
	IPMemoria     string `json:"IP_MEMORIA"`
	PuertoMemoria int    `json:"PUERTO_MEMORIA"`

	// Trazas detalladas de cada acceso
	ModoTest bool `json:"MODO_TEST"`
}

// Validar controla los parámetros de máquina antes de construir el sistema
func (c *MemoriaConfig) Validar() error {
	if c.TamPalabra <= 0 {
		return fmt.Errorf("TAM_PALABRA debe ser positivo: %d", c.TamPalabra)
	}
	if c.TamPagina <= 0 {
		return fmt.Errorf("TAM_PAGINA debe ser positivo: %d", c.TamPagina)
	}
	if c.TamRAM <= c.TamPagina || c.TamRAM%c.TamPagina != 0 {
		return fmt.Errorf("TAM_RAM debe ser múltiplo de TAM_PAGINA y mayor a una página: %d", c.TamRAM)
	}
	if c.TamEspacioVirtual <= 0 || c.TamEspacioVirtual%c.TamPagina != 0 {
		return fmt.Errorf("TAM_ESPACIO_VIRTUAL debe ser múltiplo de TAM_PAGINA: %d", c.TamEspacioVirtual)
	}
	if c.MaxPaginasPorProceso <= 0 {
		return fmt.Errorf("MAX_PAGINAS_POR_PROCESO debe ser positivo: %d", c.MaxPaginasPorProceso)
	}
	if (c.TamRAM-c.TamPagina)/(c.MaxPaginasPorProceso*c.TamPagina) < 1 {
		return fmt.Errorf("la RAM no alcanza para un proceso con tope de %d páginas", c.MaxPaginasPorProceso)
	}
	if c.SwapfilePath == "" {
		return fmt.Errorf("SWAPFILE_PATH no puede estar vacío")
	}
	return nil
}
