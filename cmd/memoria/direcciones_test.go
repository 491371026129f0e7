package main

import (
	"errors"
	"testing"
)

func TestTraduccionIdentidad(t *testing.T) {
	const tamPagina = 256
	direcciones := []int{0, 1, 255, 256, 257, 2559, 2560, 1048572}

	for _, dir := range direcciones {
		pagina := numeroPagina(dir, tamPagina)
		despl := desplazamiento(dir, tamPagina)
		if pagina*tamPagina+despl != dir {
			t.Errorf("Identity broken for %d: %d*%d+%d", dir, pagina, tamPagina, despl)
		}
		if despl < 0 || despl >= tamPagina {
			t.Errorf("Offset out of range for %d: %d", dir, despl)
		}
	}
}

func TestRechazoFueraDeRango(t *testing.T) {
	so := nuevoSistemaParaTest(t, configParaTest(t))
	pid, err := so.CrearProceso(512)
	if err != nil {
		t.Fatalf("CrearProceso: %v", err)
	}

	ramLibre := so.listaLibreRAM.BytesLibres()
	discoLibre := so.listaLibreDisco.BytesLibres()

	// el límite superior deja lugar para una palabra completa
	invalidas := []int{-1, so.tamEspacioVirtual - so.tamPalabra + 1, so.tamEspacioVirtual, so.tamEspacioVirtual + 100}
	for _, dir := range invalidas {
		if err := so.Escribir(pid, dir, 1); !errors.Is(err, ErrDireccionInvalida) {
			t.Errorf("Escribir(%d): expected ErrDireccionInvalida, got %v", dir, err)
		}
		if _, err := so.Leer(pid, dir); !errors.Is(err, ErrDireccionInvalida) {
			t.Errorf("Leer(%d): expected ErrDireccionInvalida, got %v", dir, err)
		}
	}

	if so.listaLibreRAM.BytesLibres() != ramLibre {
		t.Errorf("RAM pool mutated by rejected access")
	}
	if so.listaLibreDisco.BytesLibres() != discoLibre {
		t.Errorf("Disk pool mutated by rejected access")
	}
	resumen := so.Estadisticas.Resumen()
	if resumen.Lecturas != 0 || resumen.Escrituras != 0 {
		t.Errorf("Counters mutated by rejected access: %+v", resumen)
	}

	// la última dirección válida sí se acepta
	if err := so.Escribir(pid, so.tamEspacioVirtual-so.tamPalabra, 9); err != nil {
		t.Errorf("Last valid address rejected: %v", err)
	}
}
