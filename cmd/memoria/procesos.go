package main

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// Proceso es una unidad de ejecución autónoma: un goroutine que genera
// accesos a memoria sobre su propio espacio de direcciones, siempre a través
// de las llamadas al sistema. No toca ninguna estructura compartida en forma
// directa.
type Proceso struct {
	PID     int
	Tamanio int

	so    *SistemaOperativo
	tabla *TablaPaginas

	rng     *rand.Rand
	detener chan struct{}
	una     sync.Once
}

// NuevoProceso arma el proceso con su generador propio, derivado de la
// semilla global para que las corridas sean reproducibles
func NuevoProceso(so *SistemaOperativo, pid int, tamanio int) *Proceso {
	return &Proceso{
		PID:     pid,
		Tamanio: tamanio,
		so:      so,
		rng:     rand.New(rand.NewSource(so.semilla + int64(pid)*7919)),
		detener: make(chan struct{}),
	}
}

// Iniciar arranca la unidad de ejecución
func (p *Proceso) Iniciar() {
	go p.ejecutar()
}

// Interrumpir pide la terminación; el proceso la toma en su próximo punto de
// scheduling, fuera de la sección crítica del sistema
func (p *Proceso) Interrumpir() {
	p.una.Do(func() { close(p.detener) })
}

func (p *Proceso) ejecutar() {
	utils.InfoLog.Info("Proceso en ejecución", "pid", p.PID)
	for {
		select {
		case <-p.detener:
			utils.InfoLog.Info("Proceso interrumpido", "pid", p.PID)
			return
		default:
		}
		if !p.rafaga() {
			return
		}
	}
}

// rafaga toma la CPU simulada y ejecuta FACTOR_LOCALIDAD accesos dentro de
// una misma región de página elegida al azar. Devuelve false si el proceso
// debe terminar por un error irrecuperable.
func (p *Proceso) rafaga() bool {
	p.so.semCPU.Wait()
	defer p.so.semCPU.Signal()

	tamPagina := p.so.TamPagina()
	base := p.rng.Intn(p.Tamanio)
	base -= base % tamPagina

	// última dirección accesible: dentro del proceso y con lugar para una palabra
	ultima := p.Tamanio - 1
	if tope := p.so.TamEspacioVirtual() - p.so.TamPalabra(); ultima > tope {
		ultima = tope
	}

	operaciones := p.so.FactorLocalidad()
	for i := 0; i < operaciones; i++ {
		dir := base + p.rng.Intn(tamPagina)
		if dir > ultima {
			dir = ultima
		}
		var err error
		if p.rng.Intn(2) == 0 {
			_, err = p.so.Leer(p.PID, dir)
		} else {
			err = p.so.Escribir(p.PID, dir, byte(p.rng.Intn(256)))
		}
		if err != nil {
			if errors.Is(err, ErrDiscoLleno) {
				utils.ErrorLog.Error("Proceso detenido por disco lleno", "pid", p.PID, "direccion", dir)
				return false
			}
			utils.ErrorLog.Error("Error de acceso a memoria", "pid", p.PID, "direccion", dir, "error", err)
			return false
		}
	}

	// ceder la CPU simulada
	time.Sleep(time.Millisecond)
	return true
}
