package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// archivoSwap es el disco simulado: un archivo plano del tamaño del espacio
// virtual, accedido únicamente de a bloques del tamaño de página en offsets
// alineados a bloque.
type archivoSwap struct {
	archivo   *os.File
	tamanio   int
	tamBloque int
	retardoMs int
}

// abrirAreaSwap crea (o trunca) el archivo de respaldo y lo dimensiona
func abrirAreaSwap(ruta string, tamanio int, tamBloque int, retardoMs int) (*archivoSwap, error) {
	dir := filepath.Dir(ruta)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear directorio para swap: %w", err)
	}

	archivo, err := os.OpenFile(ruta, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("error al crear archivo de swap: %w", err)
	}
	if err := archivo.Truncate(int64(tamanio)); err != nil {
		archivo.Close()
		return nil, fmt.Errorf("error al dimensionar archivo de swap: %w", err)
	}

	utils.InfoLog.Info("Área de swap inicializada", "archivo", ruta, "tamanio", tamanio)
	return &archivoSwap{
		archivo:   archivo,
		tamanio:   tamanio,
		tamBloque: tamBloque,
		retardoMs: retardoMs,
	}, nil
}

// EscribirBloque baja una página completa al bloque indicado
func (s *archivoSwap) EscribirBloque(bloque int, datos []byte) {
	utils.AplicarRetardo("swap", s.retardoMs)
	if _, err := s.archivo.WriteAt(datos, int64(bloque)); err != nil {
		utils.ErrorLog.Error("Error escribiendo en swap", "bloque", bloque, "error", err)
	}
}

// LeerBloque sube el bloque indicado al buffer destino (una página)
func (s *archivoSwap) LeerBloque(bloque int, destino []byte) {
	utils.AplicarRetardo("swap", s.retardoMs)
	if _, err := s.archivo.ReadAt(destino, int64(bloque)); err != nil {
		utils.ErrorLog.Error("Error leyendo de swap", "bloque", bloque, "error", err)
	}
}

// LimpiarBloque sobreescribe el bloque con ceros antes de que vuelva al pool
func (s *archivoSwap) LimpiarBloque(bloque int) {
	if _, err := s.archivo.WriteAt(make([]byte, s.tamBloque), int64(bloque)); err != nil {
		utils.ErrorLog.Error("Error limpiando bloque de swap", "bloque", bloque, "error", err)
	}
}

// Cerrar cierra el archivo de respaldo
func (s *archivoSwap) Cerrar() error {
	return s.archivo.Close()
}
