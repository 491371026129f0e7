package main

import (
	"errors"
	"fmt"
	"strings"
)

// AlgoritmoReemplazo identifica la política de reemplazo de páginas. Se elige
// una sola vez, antes de crear procesos, y rige para todo el sistema.
type AlgoritmoReemplazo int

const (
	CLOCK AlgoritmoReemplazo = iota
	FIFO
	RANDOM
)

func (a AlgoritmoReemplazo) String() string {
	switch a {
	case FIFO:
		return "FIFO"
	case RANDOM:
		return "RANDOM"
	default:
		return "CLOCK"
	}
}

// AlgoritmoDesdeString interpreta el valor de ALGORITMO_REEMPLAZO de la configuración
func AlgoritmoDesdeString(nombre string) (AlgoritmoReemplazo, error) {
	switch strings.ToUpper(nombre) {
	case "CLOCK":
		return CLOCK, nil
	case "FIFO":
		return FIFO, nil
	case "RANDOM":
		return RANDOM, nil
	}
	return CLOCK, fmt.Errorf("algoritmo de reemplazo desconocido: %q", nombre)
}

// BloqueLibre es un tramo contiguo sin asignar dentro de un pool (RAM o disco)
type BloqueLibre struct {
	Direccion int
	Tamanio   int
}

// EntradaTablaPaginas es el registro de una página virtual. Si Valida es true,
// Direccion es la dirección de un marco de RAM; si no, la de un bloque de disco.
// Una entrada nunca se elimina: a lo sumo se degrada a disco.
type EntradaTablaPaginas struct {
	NumPagina    int
	Direccion    int
	Valida       bool
	Referenciada bool
}

// Errores que las llamadas al sistema devuelven al invocante
var (
	ErrDireccionInvalida  = errors.New("dirección fuera del espacio virtual")
	ErrTablaProcesosLlena = errors.New("tabla de procesos llena")
	ErrPoolAgotado        = errors.New("pool sin unidades libres")
	ErrDiscoLleno         = errors.New("no hay bloques libres en el disco")
	ErrProcesoInexistente = errors.New("el proceso no existe")
)
