package main

import (
	"sync"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// Estadisticas acumula los contadores de accesos y fallos de página. Tiene su
// propio mutex: se consulta también desde afuera de la sección crítica del
// sistema (resumen final, handler de estadísticas).
type Estadisticas struct {
	mu           sync.Mutex
	lecturas     int
	escrituras   int
	fallosPagina int
}

// ResumenEstadisticas es una foto de los contadores
type ResumenEstadisticas struct {
	Lecturas     int `json:"lecturas"`
	Escrituras   int `json:"escrituras"`
	FallosPagina int `json:"fallos_pagina"`
}

func NuevoEstadisticas() *Estadisticas {
	return &Estadisticas{}
}

func (e *Estadisticas) IncrementarLecturas() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lecturas++
}

func (e *Estadisticas) IncrementarEscrituras() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.escrituras++
}

func (e *Estadisticas) IncrementarFallosPagina() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fallosPagina++
}

// Reiniciar pone los contadores en cero (tras la carga de una imagen inicial)
func (e *Estadisticas) Reiniciar() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lecturas = 0
	e.escrituras = 0
	e.fallosPagina = 0
}

// Resumen devuelve una foto consistente de los contadores
func (e *Estadisticas) Resumen() ResumenEstadisticas {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ResumenEstadisticas{
		Lecturas:     e.lecturas,
		Escrituras:   e.escrituras,
		FallosPagina: e.fallosPagina,
	}
}

// Registrar vuelca el resumen al log
func (e *Estadisticas) Registrar() {
	r := e.Resumen()
	utils.InfoLog.Info("Estadísticas de la corrida",
		"lecturas", r.Lecturas,
		"escrituras", r.Escrituras,
		"fallos_pagina", r.FallosPagina)
}
