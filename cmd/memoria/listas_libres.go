package main

import (
	"fmt"
	"sort"
)

// ListaLibre administra un pool de direcciones de tamaño fijo repartido en
// unidades iguales (el tamaño de página). Se usa dos veces: para los marcos de
// RAM y para los bloques de disco. Invariante: la suma de bytes libres más las
// unidades entregadas cubre exactamente el tamaño total del pool.
type ListaLibre struct {
	nombre        string
	tamanioTotal  int
	tamanioUnidad int
	bloques       []BloqueLibre
}

// NuevaListaLibre crea el pool con un único bloque que abarca todo el rango
func NuevaListaLibre(nombre string, tamanioTotal int, tamanioUnidad int) *ListaLibre {
	return &ListaLibre{
		nombre:        nombre,
		tamanioTotal:  tamanioTotal,
		tamanioUnidad: tamanioUnidad,
		bloques:       []BloqueLibre{{Direccion: 0, Tamanio: tamanioTotal}},
	}
}

// Asignar entrega una unidad del bloque de dirección más baja. La última
// unidad del pool no se entrega: un único bloque del tamaño de la unidad es la
// condición de pool lleno.
func (l *ListaLibre) Asignar() (int, error) {
	if len(l.bloques) == 0 || (len(l.bloques) == 1 && l.bloques[0].Tamanio == l.tamanioUnidad) {
		return 0, fmt.Errorf("%w (%s)", ErrPoolAgotado, l.nombre)
	}

	bloque := &l.bloques[0]
	direccion := bloque.Direccion
	if bloque.Tamanio == l.tamanioUnidad {
		l.bloques = l.bloques[1:]
	} else {
		bloque.Direccion += l.tamanioUnidad
		bloque.Tamanio -= l.tamanioUnidad
	}
	return direccion, nil
}

// Liberar reinserta una unidad manteniendo la lista ordenada por dirección
// ascendente. No se fusionan bloques adyacentes: la granularidad de asignación
// es siempre exactamente una unidad.
func (l *ListaLibre) Liberar(direccion int) {
	i := sort.Search(len(l.bloques), func(i int) bool {
		return l.bloques[i].Direccion > direccion
	})
	l.bloques = append(l.bloques, BloqueLibre{})
	copy(l.bloques[i+1:], l.bloques[i:])
	l.bloques[i] = BloqueLibre{Direccion: direccion, Tamanio: l.tamanioUnidad}
}

// BytesLibres suma los tamaños de todos los bloques libres
func (l *ListaLibre) BytesLibres() int {
	total := 0
	for _, bloque := range l.bloques {
		total += bloque.Tamanio
	}
	return total
}

// CantidadBloques devuelve la cantidad de bloques de la lista
func (l *ListaLibre) CantidadBloques() int {
	return len(l.bloques)
}

// TamanioTotal devuelve el tamaño total del pool en bytes
func (l *ListaLibre) TamanioTotal() int {
	return l.tamanioTotal
}
