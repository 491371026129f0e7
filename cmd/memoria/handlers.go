package main

import (
	"fmt"

	"github.com/sisoputnfrba/tp-2025-2c-LosCuervosXeneizes/utils"
)

// registrarHandlers expone las llamadas al sistema sobre el protocolo de mensajes
func registrarHandlers(server *utils.HTTPServer, so *SistemaOperativo) {
	server.RegistrarHandler(utils.MensajeHandshake, handlerHandshake(so))
	server.RegistrarHandler(utils.MensajeCrearProceso, handlerCrearProceso(so))
	server.RegistrarHandler(utils.MensajeEscribir, handlerEscribir(so))
	server.RegistrarHandler(utils.MensajeLeer, handlerLeer(so))
	server.RegistrarHandler(utils.MensajeFinalizarProcesos, handlerFinalizarProcesos(so))
	server.RegistrarHandler(utils.MensajeEstadisticas, handlerEstadisticas(so))
	utils.InfoLog.Info("Handlers registrados correctamente")
}

// campoEntero extrae un campo numérico de los datos del mensaje
func campoEntero(msg *utils.Mensaje, campo string) (int, error) {
	datos, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return 0, fmt.Errorf("mensaje sin datos")
	}
	valor, ok := datos[campo].(float64)
	if !ok {
		return 0, fmt.Errorf("falta el campo %q", campo)
	}
	return int(valor), nil
}

func handlerHandshake(so *SistemaOperativo) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)
		return map[string]interface{}{
			"status":          "OK",
			"tam_palabra":     so.TamPalabra(),
			"tam_pagina":      so.TamPagina(),
			"espacio_virtual": so.TamEspacioVirtual(),
			"algoritmo":       so.Algoritmo().String(),
		}, nil
	}
}

func handlerCrearProceso(so *SistemaOperativo) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		tamanio, err := campoEntero(msg, "tamanio")
		if err != nil {
			return nil, err
		}
		pid, err := so.CrearProceso(tamanio)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "pid": pid}, nil
	}
}

func handlerEscribir(so *SistemaOperativo) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		pid, err := campoEntero(msg, "pid")
		if err != nil {
			return nil, err
		}
		direccion, err := campoEntero(msg, "direccion")
		if err != nil {
			return nil, err
		}
		valor, err := campoEntero(msg, "valor")
		if err != nil {
			return nil, err
		}
		if err := so.Escribir(pid, direccion, byte(valor)); err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK"}, nil
	}
}

func handlerLeer(so *SistemaOperativo) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		pid, err := campoEntero(msg, "pid")
		if err != nil {
			return nil, err
		}
		direccion, err := campoEntero(msg, "direccion")
		if err != nil {
			return nil, err
		}
		valor, err := so.Leer(pid, direccion)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "valor": int(valor)}, nil
	}
}

func handlerFinalizarProcesos(so *SistemaOperativo) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		utils.InfoLog.Info("Finalización de procesos solicitada", "origen", msg.Origen)
		so.KillAll()
		return map[string]interface{}{"status": "OK"}, nil
	}
}

func handlerEstadisticas(so *SistemaOperativo) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		return so.Estadisticas.Resumen(), nil
	}
}
