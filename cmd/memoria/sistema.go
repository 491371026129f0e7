package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// SistemaOperativo simula las funciones básicas de memoria de un sistema
// operativo de 32 bits: paginación, traducción de direcciones, fallos de
// página y reemplazo, con un disco simulado como área de swap.
//
// Es un monitor: todas las llamadas al sistema (CrearProceso, Escribir, Leer,
// KillAll) y sus auxiliares ejecutan bajo un único mutex que cubre la RAM, el
// disco, las dos listas libres y la tabla de procesos. A lo sumo una llamada
// al sistema corre en un instante dado, sin importar qué proceso la emitió.
type SistemaOperativo struct {
	mu sync.Mutex

	// Hardware simulado
	ram   []byte
	disco *archivoSwap

	// Tablas del sistema
	listaLibreRAM    *ListaLibre
	listaLibreDisco  *ListaLibre
	tablaProcesos    []*Proceso
	contadorProcesos int

	// Parámetros de máquina, fijos tras la construcción
	tamPalabra        int
	tamRAM            int
	tamPagina         int
	tamEspacioVirtual int
	tamDisco          int
	maxPaginas        int

	// Parámetros configurables en caliente (ver setters)
	maxPaginasPorProceso int
	maxProcesos          int
	factorLocalidad      int
	modoTest             bool

	algoritmo    AlgoritmoReemplazo
	retardoSwap  int
	autoEjecutar bool
	semilla      int64

	rng    *rand.Rand
	semCPU *utils.Semaforo

	Estadisticas *Estadisticas
}

// NuevoSistemaOperativo construye el sistema a partir de la configuración:
// RAM en cero, disco recién creado, las dos listas libres con un único bloque
// y la tabla de procesos vacía.
func NuevoSistemaOperativo(cfg *MemoriaConfig) (*SistemaOperativo, error) {
	if err := cfg.Validar(); err != nil {
		return nil, err
	}
	algoritmo, err := AlgoritmoDesdeString(cfg.AlgoritmoReemplazo)
	if err != nil {
		return nil, err
	}

	semilla := cfg.Semilla
	if semilla == 0 {
		semilla = time.Now().UnixNano()
	}

	so := &SistemaOperativo{
		ram:                  make([]byte, cfg.TamRAM),
		tamPalabra:           cfg.TamPalabra,
		tamRAM:               cfg.TamRAM,
		tamPagina:            cfg.TamPagina,
		tamEspacioVirtual:    cfg.TamEspacioVirtual,
		tamDisco:             cfg.TamEspacioVirtual, // el disco alcanza para todo el espacio virtual
		maxPaginas:           cfg.TamEspacioVirtual / cfg.TamPagina,
		maxPaginasPorProceso: cfg.MaxPaginasPorProceso,
		factorLocalidad:      cfg.FactorLocalidad,
		modoTest:             cfg.ModoTest,
		algoritmo:            algoritmo,
		retardoSwap:          cfg.RetardoSwap,
		autoEjecutar:         cfg.AutoEjecutar,
		semilla:              semilla,
		rng:                  rand.New(rand.NewSource(semilla)),
		semCPU:               utils.NewSemaforo(1),
		Estadisticas:         NuevoEstadisticas(),
	}
	if so.factorLocalidad < 1 {
		so.factorLocalidad = 1
	}

	// Una página de RAM queda siempre en reserva; el resto se reparte entero
	// entre los procesos, así la suma de los topes residentes nunca supera la RAM.
	so.maxProcesos = (so.tamRAM - so.tamPagina) / (so.maxPaginasPorProceso * so.tamPagina)

	so.listaLibreRAM = NuevaListaLibre("RAM", so.tamRAM, so.tamPagina)
	so.listaLibreDisco = NuevaListaLibre("disco", so.tamDisco, so.tamPagina)

	disco, err := abrirAreaSwap(cfg.SwapfilePath, so.tamDisco, so.tamPagina, so.retardoSwap)
	if err != nil {
		return nil, err
	}
	so.disco = disco

	utils.InfoLog.Info("Sistema inicializado",
		"tam_ram", so.tamRAM,
		"tam_pagina", so.tamPagina,
		"espacio_virtual", so.tamEspacioVirtual,
		"max_paginas_por_proceso", so.maxPaginasPorProceso,
		"max_procesos", so.maxProcesos,
		"algoritmo", so.algoritmo.String())
	return so, nil
}

// Cerrar libera el archivo de swap
func (so *SistemaOperativo) Cerrar() error {
	if so.disco == nil {
		return nil
	}
	return so.disco.Cerrar()
}

// CrearProceso asigna el siguiente pid, construye la tabla de páginas vacía y
// simula la carga del programa escribiendo cada palabra del espacio pedido.
// Si AUTO_EJECUTAR está activo arranca además la unidad de ejecución.
func (so *SistemaOperativo) CrearProceso(tamanio int) (int, error) {
	if tamanio <= 0 || tamanio > so.tamEspacioVirtual {
		return -1, fmt.Errorf("tamaño de proceso inválido: %d", tamanio)
	}

	so.mu.Lock()
	if len(so.tablaProcesos) >= so.maxProcesos {
		so.mu.Unlock()
		utils.ErrorLog.Error("Tabla de procesos llena", "max_procesos", so.maxProcesos)
		return -1, ErrTablaProcesosLlena
	}
	pid := so.contadorProcesos
	so.contadorProcesos++
	proc := NuevoProceso(so, pid, tamanio)
	proc.tabla = NuevaTablaPaginas(pid, so.algoritmo, so.rng)
	so.tablaProcesos = append(so.tablaProcesos, proc)
	so.mu.Unlock()

	utils.InfoLog.Info("Proceso creado", "pid", pid, "tamanio", tamanio)
	if err := so.cargarProceso(proc); err != nil {
		return pid, err
	}
	if so.autoEjecutar {
		proc.Iniciar()
	}
	return pid, nil
}

// cargarProceso simula la carga de la imagen inicial: una escritura por
// palabra con bytes pseudoaleatorios. Al terminar reinicia los contadores
// estadísticos para que la carga no ensucie la medición.
func (so *SistemaOperativo) cargarProceso(proc *Proceso) error {
	for dir := 0; dir < proc.Tamanio; dir += so.tamPalabra {
		if err := so.Escribir(proc.PID, dir, byte(proc.rng.Intn(256))); err != nil {
			utils.ErrorLog.Error("Error cargando imagen inicial", "pid", proc.PID, "direccion", dir, "error", err)
			return err
		}
	}
	utils.InfoLog.Info("Imagen cargada",
		"pid", proc.PID,
		"bytes", proc.Tamanio,
		"paginas", (proc.Tamanio+so.tamPagina-1)/so.tamPagina)
	so.Estadisticas.Reiniciar()
	return nil
}

// Escribir escribe un byte en una dirección virtual del proceso
func (so *SistemaOperativo) Escribir(pid int, dir int, dato byte) error {
	so.mu.Lock()
	defer so.mu.Unlock()

	if err := so.validarDireccion(dir); err != nil {
		utils.ErrorLog.Error("Escritura fuera de rango", "pid", pid, "direccion", dir)
		return err
	}
	proc, err := so.proceso(pid)
	if err != nil {
		return err
	}

	pagina := numeroPagina(dir, so.tamPagina)
	despl := desplazamiento(dir, so.tamPagina)
	so.trazar("escribir", "pid", pid, "direccion", dir, "pagina", pagina, "desplazamiento", despl)

	pte, err := so.resolverPagina(proc, pagina)
	if err != nil {
		return err
	}

	so.ram[pte.Direccion+despl] = dato
	pte.Referenciada = true
	so.Estadisticas.IncrementarEscrituras()
	return nil
}

// Leer devuelve el byte de una dirección virtual del proceso
func (so *SistemaOperativo) Leer(pid int, dir int) (byte, error) {
	so.mu.Lock()
	defer so.mu.Unlock()

	if err := so.validarDireccion(dir); err != nil {
		utils.ErrorLog.Error("Lectura fuera de rango", "pid", pid, "direccion", dir)
		return 0, err
	}
	proc, err := so.proceso(pid)
	if err != nil {
		return 0, err
	}

	pagina := numeroPagina(dir, so.tamPagina)
	despl := desplazamiento(dir, so.tamPagina)
	so.trazar("leer", "pid", pid, "direccion", dir, "pagina", pagina, "desplazamiento", despl)

	pte, err := so.resolverPagina(proc, pagina)
	if err != nil {
		return 0, err
	}

	dato := so.ram[pte.Direccion+despl]
	pte.Referenciada = true
	so.Estadisticas.IncrementarLecturas()
	return dato, nil
}

// KillAll pide la terminación de todas las unidades de ejecución. No reclama
// memoria: los marcos y bloques de los procesos muertos no vuelven a los pools.
func (so *SistemaOperativo) KillAll() {
	so.mu.Lock()
	procesos := append([]*Proceso(nil), so.tablaProcesos...)
	so.mu.Unlock()

	for _, proc := range procesos {
		utils.InfoLog.Info("Interrumpiendo proceso", "pid", proc.PID)
		proc.Interrumpir()
	}
}

// resolverPagina deja la página en RAM: crea la entrada en el primer acceso,
// atiende el fallo si está en disco. Al volver, pte.Direccion es un marco.
func (so *SistemaOperativo) resolverPagina(proc *Proceso, pagina int) (*EntradaTablaPaginas, error) {
	pte := proc.tabla.Entrada(pagina)
	if pte == nil {
		marco, err := so.obtenerNuevoMarco(proc, pagina)
		if err != nil {
			return nil, err
		}
		pte = proc.tabla.CrearEntrada(pagina)
		pte.Direccion = marco
		pte.Valida = true
		so.trazar("página nueva en tabla", "pid", proc.PID, "pagina", pagina, "marco", marco)
		return pte, nil
	}
	if !pte.Valida {
		if err := so.atenderFalloPagina(proc, pte); err != nil {
			return nil, err
		}
	}
	return pte, nil
}

// atenderFalloPagina trae una página desde el disco: consigue un marco (con
// desalojo si hace falta), copia el bloque y lo devuelve al pool de disco.
// No queda copia en disco, por eso el bit de modificado no existe.
func (so *SistemaOperativo) atenderFalloPagina(proc *Proceso, pte *EntradaTablaPaginas) error {
	so.trazar("fallo de página", "pid", proc.PID, "pagina", pte.NumPagina, "bloque", pte.Direccion)
	so.Estadisticas.IncrementarFallosPagina()

	bloqueViejo := pte.Direccion
	marco, err := so.obtenerNuevoMarco(proc, pte.NumPagina)
	if err != nil {
		return err
	}
	so.disco.LeerBloque(bloqueViejo, so.ram[marco:marco+so.tamPagina])
	so.liberarBloqueDisco(bloqueViejo)
	pte.Direccion = marco
	pte.Valida = true
	so.trazar("página de vuelta en RAM", "pid", proc.PID, "pagina", pte.NumPagina, "marco", marco)
	return nil
}

// obtenerNuevoMarco consigue un marco de RAM para la página indicada. Con el
// conjunto residente por debajo del tope, sale de la lista libre; en el tope,
// se desaloja una víctima del propio proceso y su marco se reutiliza directo:
// el desalojo cuesta una operación sobre el pool de disco y ninguna sobre el de RAM.
func (so *SistemaOperativo) obtenerNuevoMarco(proc *Proceso, pagina int) (int, error) {
	if proc.tabla.CantidadResidentes() < so.maxPaginasPorProceso {
		marco, err := so.listaLibreRAM.Asignar()
		if err != nil {
			// inalcanzable mientras maxProcesos derive de TAM_RAM; se propaga por si
			// una configuración manual rompió la cuenta
			utils.ErrorLog.Error("RAM agotada", "pid", proc.PID, "error", err)
			return 0, err
		}
		proc.tabla.AdmitirResidente(pagina)
		so.trazar("marco asignado", "pid", proc.PID, "pagina", pagina, "marco", marco)
		return marco, nil
	}

	// El bloque de disco se pide antes de elegir víctima: si el disco está
	// lleno la llamada falla sin haber tocado el conjunto residente.
	bloque, err := so.listaLibreDisco.Asignar()
	if err != nil {
		utils.ErrorLog.Error("Disco lleno al desalojar", "pid", proc.PID, "pagina", pagina)
		return 0, fmt.Errorf("no se pudo desalojar para la página %d del proceso %d: %w", pagina, proc.PID, ErrDiscoLleno)
	}
	victima := proc.tabla.SeleccionarVictima(pagina)
	marco := victima.Direccion
	so.disco.EscribirBloque(bloque, so.ram[marco:marco+so.tamPagina])
	victima.Direccion = bloque
	victima.Valida = false
	so.trazar("página desalojada", "pid", proc.PID, "pagina", victima.NumPagina, "bloque", bloque)
	return marco, nil
}

// liberarBloqueDisco limpia el bloque con ceros antes de devolverlo al pool
func (so *SistemaOperativo) liberarBloqueDisco(bloque int) {
	so.disco.LimpiarBloque(bloque)
	so.listaLibreDisco.Liberar(bloque)
	so.trazar("bloque de disco liberado", "bloque", bloque)
}

// liberarMarcoRAM limpia el marco con ceros antes de devolverlo al pool. El
// flujo normal nunca devuelve marcos porque no hay teardown de procesos.
func (so *SistemaOperativo) liberarMarcoRAM(marco int) {
	for i := marco; i < marco+so.tamPagina; i++ {
		so.ram[i] = 0
	}
	so.listaLibreRAM.Liberar(marco)
	so.trazar("marco de RAM liberado", "marco", marco)
}

// proceso devuelve el proceso por pid (el pid es el índice de la tabla)
func (so *SistemaOperativo) proceso(pid int) (*Proceso, error) {
	if pid < 0 || pid >= len(so.tablaProcesos) {
		return nil, fmt.Errorf("%w: pid %d", ErrProcesoInexistente, pid)
	}
	return so.tablaProcesos[pid], nil
}

// trazar emite el detalle de cada acceso sólo con MODO_TEST activo
func (so *SistemaOperativo) trazar(msg string, args ...any) {
	if so.modoTest {
		utils.InfoLog.Info(msg, args...)
	}
}
