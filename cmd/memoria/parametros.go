package main

import "github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"

// Superficie de configuración del sistema. Los parámetros de máquina son
// inmutables; los de proceso se pueden ajustar en caliente con sus setters.

func (so *SistemaOperativo) TamPalabra() int        { return so.tamPalabra }
func (so *SistemaOperativo) TamPagina() int         { return so.tamPagina }
func (so *SistemaOperativo) TamRAM() int            { return so.tamRAM }
func (so *SistemaOperativo) TamEspacioVirtual() int { return so.tamEspacioVirtual }
func (so *SistemaOperativo) TamDisco() int          { return so.tamDisco }
func (so *SistemaOperativo) MaxPaginas() int        { return so.maxPaginas }

func (so *SistemaOperativo) MaxProcesos() int {
	so.mu.Lock()
	defer so.mu.Unlock()
	return so.maxProcesos
}

func (so *SistemaOperativo) MaxPaginasPorProceso() int {
	so.mu.Lock()
	defer so.mu.Unlock()
	return so.maxPaginasPorProceso
}

// SetMaxPaginasPorProceso acota el tope a [1, MaxPaginas] y recalcula la
// cantidad máxima de procesos para que los topes sigan entrando en la RAM.
// El tope nuevo rige para las admisiones futuras: un conjunto residente que
// ya lo supera conserva su tamaño y los desalojos siguen sobre ese tamaño.
func (so *SistemaOperativo) SetMaxPaginasPorProceso(n int) {
	so.mu.Lock()
	defer so.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if n > so.maxPaginas {
		n = so.maxPaginas
	}
	so.maxPaginasPorProceso = n
	so.maxProcesos = (so.tamRAM - so.tamPagina) / (so.maxPaginasPorProceso * so.tamPagina)
	utils.InfoLog.Info("Tope de páginas por proceso actualizado",
		"max_paginas_por_proceso", so.maxPaginasPorProceso,
		"max_procesos", so.maxProcesos)
}

func (so *SistemaOperativo) FactorLocalidad() int {
	so.mu.Lock()
	defer so.mu.Unlock()
	return so.factorLocalidad
}

// SetFactorLocalidad acota el factor a un mínimo de 1
func (so *SistemaOperativo) SetFactorLocalidad(n int) {
	so.mu.Lock()
	defer so.mu.Unlock()
	if n < 1 {
		n = 1
	}
	so.factorLocalidad = n
}

func (so *SistemaOperativo) Algoritmo() AlgoritmoReemplazo {
	so.mu.Lock()
	defer so.mu.Unlock()
	return so.algoritmo
}

// SetAlgoritmo cambia la política de reemplazo. Rige para las tablas de los
// procesos creados después del cambio; las existentes conservan la suya.
func (so *SistemaOperativo) SetAlgoritmo(algoritmo AlgoritmoReemplazo) {
	so.mu.Lock()
	defer so.mu.Unlock()
	so.algoritmo = algoritmo
}

func (so *SistemaOperativo) ModoTest() bool {
	so.mu.Lock()
	defer so.mu.Unlock()
	return so.modoTest
}

// SetModoTest activa o desactiva la traza detallada de accesos
func (so *SistemaOperativo) SetModoTest(activo bool) {
	so.mu.Lock()
	defer so.mu.Unlock()
	so.modoTest = activo
}
