package main

import (
	"math/rand"
	"testing"
)

func tablaConResidentes(t *testing.T, algoritmo AlgoritmoReemplazo, semilla int64, paginas int) *TablaPaginas {
	t.Helper()
	tabla := NuevaTablaPaginas(0, algoritmo, rand.New(rand.NewSource(semilla)))
	for vpn := 0; vpn < paginas; vpn++ {
		pte := tabla.CrearEntrada(vpn)
		pte.Valida = true
		tabla.AdmitirResidente(vpn)
	}
	return tabla
}

func TestCrearEntradaExtiendeIndice(t *testing.T) {
	tabla := NuevaTablaPaginas(0, FIFO, rand.New(rand.NewSource(1)))

	pte := tabla.CrearEntrada(5)
	if pte.NumPagina != 5 {
		t.Errorf("Expected page 5, got %d", pte.NumPagina)
	}
	if tabla.Entrada(3) != nil {
		t.Errorf("Expected nil for untouched page 3")
	}
	if tabla.Entrada(5) != pte {
		t.Errorf("Expected index to be the page number")
	}
	if tabla.Entrada(99) != nil {
		t.Errorf("Expected nil beyond table end")
	}
}

func TestFIFOOrdenDeAdmision(t *testing.T) {
	tabla := tablaConResidentes(t, FIFO, 1, 3)

	for i, esperada := range []int{0, 1, 2, 3} {
		nueva := 3 + i
		victima := tabla.SeleccionarVictima(nueva)
		tabla.CrearEntrada(nueva)
		if victima.NumPagina != esperada {
			t.Errorf("Eviction %d: expected page %d, got %d", i, esperada, victima.NumPagina)
		}
		if tabla.CantidadResidentes() != 3 {
			t.Errorf("Resident count changed during replacement: %d", tabla.CantidadResidentes())
		}
	}
}

func TestClockSegundaOportunidad(t *testing.T) {
	tabla := tablaConResidentes(t, CLOCK, 1, 3)
	tabla.Entrada(0).Referenciada = true
	tabla.Entrada(1).Referenciada = false
	tabla.Entrada(2).Referenciada = true

	// el puntero avanza a la posición 1: la página 1 no está referenciada
	victima := tabla.SeleccionarVictima(3)
	tabla.CrearEntrada(3)
	if victima.NumPagina != 1 {
		t.Fatalf("Expected victim page 1, got %d", victima.NumPagina)
	}
	if !tabla.Entrada(0).Referenciada {
		t.Errorf("Page 0 was not examined, its bit must survive")
	}
	if tabla.punteroClock != 1 {
		t.Errorf("Clock hand must stay on the replaced slot, got %d", tabla.punteroClock)
	}

	// todas referenciadas: una vuelta completa limpia los bits y la segunda
	// encuentra víctima en la posición siguiente al puntero
	tabla.Entrada(0).Referenciada = true
	tabla.Entrada(2).Referenciada = true
	tabla.Entrada(3).Referenciada = true

	victima = tabla.SeleccionarVictima(4)
	tabla.CrearEntrada(4)
	if victima.NumPagina != 2 {
		t.Fatalf("Expected victim page 2, got %d", victima.NumPagina)
	}
	if tabla.Entrada(0).Referenciada || tabla.Entrada(3).Referenciada {
		t.Errorf("Surviving pages must have their bit cleared after a full pass")
	}
}

func TestRandomSigueElGenerador(t *testing.T) {
	const semilla = 42
	const residentes = 5
	tabla := tablaConResidentes(t, RANDOM, semilla, residentes)

	// espejo del sorteo: mismo generador, misma secuencia de víctimas
	espejo := rand.New(rand.NewSource(semilla))
	residentesEspejo := make([]int, residentes)
	for i := range residentesEspejo {
		residentesEspejo[i] = i
	}

	for i := 0; i < 10; i++ {
		nueva := residentes + i
		j := espejo.Intn(len(residentesEspejo))
		esperada := residentesEspejo[j]
		residentesEspejo = append(residentesEspejo[:j], residentesEspejo[j+1:]...)
		residentesEspejo = append(residentesEspejo, nueva)

		victima := tabla.SeleccionarVictima(nueva)
		tabla.CrearEntrada(nueva)
		if victima.NumPagina != esperada {
			t.Fatalf("Draw %d: expected victim %d, got %d", i, esperada, victima.NumPagina)
		}
	}
}

func TestRandomSemillasDistintas(t *testing.T) {
	secuencia := func(semilla int64) []int {
		tabla := tablaConResidentes(t, RANDOM, semilla, 8)
		var victimas []int
		for i := 0; i < 20; i++ {
			nueva := 8 + i
			victima := tabla.SeleccionarVictima(nueva)
			tabla.CrearEntrada(nueva)
			victimas = append(victimas, victima.NumPagina)
		}
		return victimas
	}

	a := secuencia(1)
	b := secuencia(2)
	iguales := true
	for i := range a {
		if a[i] != b[i] {
			iguales = false
			break
		}
	}
	if iguales {
		t.Errorf("Distinct seeds produced identical victim sequences: %v", a)
	}
}
