package utils

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// CargarConfiguracion lee un archivo JSON y lo decodifica al tipo de
// configuración del módulo. Un archivo inválido es un error fatal.
func CargarConfiguracion[T any](ruta string) *T {
	slog.Info("Cargando configuración", "ruta", ruta)

	absPath, err := filepath.Abs(ruta)
	if err != nil {
		slog.Error("Error obteniendo ruta absoluta", "error", err, "ruta", ruta)
		os.Exit(1)
	}

	file, err := os.Open(absPath)
	if err != nil {
		slog.Error("Error abriendo archivo de configuración", "error", err, "archivo", absPath)
		os.Exit(1)
	}
	defer file.Close()

	var config T
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		slog.Error("Error decodificando configuración", "error", err, "archivo", absPath)
		os.Exit(1)
	}

	slog.Info("Configuración cargada correctamente")
	return &config
}
