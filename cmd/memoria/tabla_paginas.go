package main

import (
	"math/rand"
)

// TablaPaginas es la tabla de páginas de un solo proceso. Las entradas se
// indexan por número de página virtual (nil = página nunca tocada). El
// conjunto residente es un anillo de números de página en orden de admisión,
// con un puntero persistente para el algoritmo CLOCK.
type TablaPaginas struct {
	pid          int
	algoritmo    AlgoritmoReemplazo
	entradas     []*EntradaTablaPaginas
	residentes   []int
	punteroClock int
	rng          *rand.Rand
}

// NuevaTablaPaginas crea la tabla vacía de un proceso. El algoritmo queda
// fijado acá y no cambia durante la vida del proceso.
func NuevaTablaPaginas(pid int, algoritmo AlgoritmoReemplazo, rng *rand.Rand) *TablaPaginas {
	return &TablaPaginas{
		pid:       pid,
		algoritmo: algoritmo,
		rng:       rng,
	}
}

// Entrada devuelve la entrada de la página o nil si nunca fue tocada
func (tp *TablaPaginas) Entrada(numPagina int) *EntradaTablaPaginas {
	if numPagina < 0 || numPagina >= len(tp.entradas) {
		return nil
	}
	return tp.entradas[numPagina]
}

// CrearEntrada instala la entrada de una página nunca vista. La tabla se
// extiende hasta cubrir el número de página: el índice es el número de página.
func (tp *TablaPaginas) CrearEntrada(numPagina int) *EntradaTablaPaginas {
	for len(tp.entradas) <= numPagina {
		tp.entradas = append(tp.entradas, nil)
	}
	pte := &EntradaTablaPaginas{NumPagina: numPagina}
	tp.entradas[numPagina] = pte
	return pte
}

// CantidadResidentes devuelve cuántas páginas del proceso están en RAM
func (tp *TablaPaginas) CantidadResidentes() int {
	return len(tp.residentes)
}

// AdmitirResidente registra la página en el conjunto residente, al final del anillo
func (tp *TablaPaginas) AdmitirResidente(numPagina int) {
	tp.residentes = append(tp.residentes, numPagina)
}

// SeleccionarVictima elige una página residente según el algoritmo vigente, la
// saca del conjunto residente, ubica nuevaPagina en su lugar estructural y
// devuelve la entrada desalojada, todavía con su dirección de RAM vieja.
// Sólo se invoca con el conjunto residente en su tope.
func (tp *TablaPaginas) SeleccionarVictima(nuevaPagina int) *EntradaTablaPaginas {
	switch tp.algoritmo {
	case FIFO:
		return tp.victimaFIFO(nuevaPagina)
	case RANDOM:
		return tp.victimaRandom(nuevaPagina)
	default:
		return tp.victimaClock(nuevaPagina)
	}
}

// victimaFIFO: la víctima es la página admitida hace más tiempo; la nueva
// entra al final de la cola. No usa el bit de referencia.
func (tp *TablaPaginas) victimaFIFO(nuevaPagina int) *EntradaTablaPaginas {
	victima := tp.residentes[0]
	tp.residentes = append(tp.residentes[1:], nuevaPagina)
	return tp.entradas[victima]
}

// victimaClock: segunda oportunidad. El puntero avanza desde la posición
// siguiente a la última examinada; una entrada referenciada pierde el bit y
// sobrevive, la primera no referenciada es la víctima y se reemplaza en el
// mismo lugar del anillo. El recorrido termina en a lo sumo dos vueltas.
func (tp *TablaPaginas) victimaClock(nuevaPagina int) *EntradaTablaPaginas {
	for {
		tp.punteroClock = (tp.punteroClock + 1) % len(tp.residentes)
		pte := tp.entradas[tp.residentes[tp.punteroClock]]
		if pte.Referenciada {
			pte.Referenciada = false
			continue
		}
		tp.residentes[tp.punteroClock] = nuevaPagina
		return pte
	}
}

// victimaRandom: elección uniforme e independiente sobre el conjunto residente
func (tp *TablaPaginas) victimaRandom(nuevaPagina int) *EntradaTablaPaginas {
	i := tp.rng.Intn(len(tp.residentes))
	victima := tp.residentes[i]
	tp.residentes = append(tp.residentes[:i], tp.residentes[i+1:]...)
	tp.residentes = append(tp.residentes, nuevaPagina)
	return tp.entradas[victima]
}
