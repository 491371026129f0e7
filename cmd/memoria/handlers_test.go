package main

import (
	"testing"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// mensajeConDatos arma un mensaje como lo entrega el decodificador JSON del
// servidor: los números llegan como float64
func mensajeConDatos(datos map[string]interface{}) *utils.Mensaje {
	return &utils.Mensaje{Origen: "Test", Datos: datos}
}

func TestCampoEntero(t *testing.T) {
	msg := mensajeConDatos(map[string]interface{}{"pid": float64(3)})

	pid, err := campoEntero(msg, "pid")
	if err != nil {
		t.Fatalf("campoEntero: %v", err)
	}
	if pid != 3 {
		t.Errorf("Expected 3, got %d", pid)
	}

	if _, err := campoEntero(msg, "direccion"); err == nil {
		t.Errorf("Expected error for missing field")
	}
	if _, err := campoEntero(&utils.Mensaje{}, "pid"); err == nil {
		t.Errorf("Expected error for message without data")
	}
}

func TestHandlerHandshake(t *testing.T) {
	so := nuevoSistemaParaTest(t, configParaTest(t))

	resp, err := handlerHandshake(so)(mensajeConDatos(nil))
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	campos := resp.(map[string]interface{})
	if campos["status"] != "OK" {
		t.Errorf("Expected status OK, got %v", campos["status"])
	}
	if campos["tam_pagina"] != 256 {
		t.Errorf("Expected page size 256, got %v", campos["tam_pagina"])
	}
	if campos["algoritmo"] != "FIFO" {
		t.Errorf("Expected algorithm FIFO, got %v", campos["algoritmo"])
	}
}

func TestHandlersCicloCompleto(t *testing.T) {
	so := nuevoSistemaParaTest(t, configParaTest(t))

	resp, err := handlerCrearProceso(so)(mensajeConDatos(map[string]interface{}{
		"tamanio": float64(512),
	}))
	if err != nil {
		t.Fatalf("crear proceso: %v", err)
	}
	pid := resp.(map[string]interface{})["pid"].(int)

	_, err = handlerEscribir(so)(mensajeConDatos(map[string]interface{}{
		"pid":       float64(pid),
		"direccion": float64(100),
		"valor":     float64(0x5A),
	}))
	if err != nil {
		t.Fatalf("escribir: %v", err)
	}

	resp, err = handlerLeer(so)(mensajeConDatos(map[string]interface{}{
		"pid":       float64(pid),
		"direccion": float64(100),
	}))
	if err != nil {
		t.Fatalf("leer: %v", err)
	}
	if valor := resp.(map[string]interface{})["valor"].(int); valor != 0x5A {
		t.Errorf("Expected 0x5A, got 0x%X", valor)
	}

	resp, err = handlerEstadisticas(so)(mensajeConDatos(nil))
	if err != nil {
		t.Fatalf("estadísticas: %v", err)
	}
	resumen := resp.(ResumenEstadisticas)
	if resumen.Lecturas != 1 || resumen.Escrituras != 1 {
		t.Errorf("Expected 1 read / 1 write, got %+v", resumen)
	}

	if _, err := handlerFinalizarProcesos(so)(mensajeConDatos(nil)); err != nil {
		t.Fatalf("finalizar: %v", err)
	}
}

func TestHandlersRechazanMensajesIncompletos(t *testing.T) {
	so := nuevoSistemaParaTest(t, configParaTest(t))

	if _, err := handlerCrearProceso(so)(mensajeConDatos(nil)); err == nil {
		t.Errorf("Expected error for create without size")
	}
	if _, err := handlerEscribir(so)(mensajeConDatos(map[string]interface{}{
		"pid": float64(0),
	})); err == nil {
		t.Errorf("Expected error for write without address")
	}
	if _, err := handlerLeer(so)(mensajeConDatos(map[string]interface{}{
		"direccion": float64(0),
	})); err == nil {
		t.Errorf("Expected error for read without pid")
	}
}
