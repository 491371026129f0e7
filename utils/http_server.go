package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// HTTPHandlerFunc es el tipo de los manejadores de mensajes
type HTTPHandlerFunc func(*Mensaje) (interface{}, error)

// HTTPServer atiende el protocolo de mensajes de un módulo
type HTTPServer struct {
	IP       string
	Puerto   int
	Nombre   string
	server   *http.Server
	handlers map[int]HTTPHandlerFunc
}

// NewHTTPServer crea un nuevo servidor HTTP
func NewHTTPServer(ip string, puerto int, nombre string) *HTTPServer {
	return &HTTPServer{
		IP:       ip,
		Puerto:   puerto,
		Nombre:   nombre,
		handlers: make(map[int]HTTPHandlerFunc),
	}
}

// RegistrarHandler asocia un manejador a un tipo de mensaje
func (s *HTTPServer) RegistrarHandler(tipoMensaje int, handler HTTPHandlerFunc) {
	s.handlers[tipoMensaje] = handler
}

// Iniciar levanta el servidor y bloquea hasta que se detenga
func (s *HTTPServer) Iniciar() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/mensaje", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Método no permitido", http.StatusMethodNotAllowed)
			return
		}

		var mensaje Mensaje
		if err := json.NewDecoder(r.Body).Decode(&mensaje); err != nil {
			http.Error(w, fmt.Sprintf("Error decodificando mensaje: %v", err), http.StatusBadRequest)
			return
		}

		handler, existe := s.handlers[mensaje.Tipo]
		if !existe {
			http.Error(w, fmt.Sprintf("No hay manejador para el tipo de mensaje %d", mensaje.Tipo), http.StatusBadRequest)
			return
		}

		respuesta, err := handler(&mensaje)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error en el manejador: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(respuesta)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "module": s.Nombre})
	})

	address := fmt.Sprintf("%s:%d", s.IP, s.Puerto)
	s.server = &http.Server{
		Addr:    address,
		Handler: mux,
	}

	slog.Info("Servidor HTTP escuchando", "módulo", s.Nombre, "dirección", address)
	return s.server.ListenAndServe()
}

// Detener apaga el servidor ordenadamente
func (s *HTTPServer) Detener() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
