package main

import "fmt"

// numeroPagina y desplazamiento parten una dirección virtual. Vale la
// identidad numeroPagina*tamPagina + desplazamiento == dir.
func numeroPagina(dir int, tamPagina int) int {
	return dir / tamPagina
}

func desplazamiento(dir int, tamPagina int) int {
	return dir % tamPagina
}

// validarDireccion rechaza accesos fuera de [0, TAM_ESPACIO_VIRTUAL - TAM_PALABRA]
// antes de mutar cualquier estado
func (so *SistemaOperativo) validarDireccion(dir int) error {
	if dir < 0 || dir > so.tamEspacioVirtual-so.tamPalabra {
		return fmt.Errorf("%w: %d (espacio virtual 0 - %d)", ErrDireccionInvalida, dir, so.tamEspacioVirtual)
	}
	return nil
}
