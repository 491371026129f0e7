package utils

import (
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

func puertoLibre(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	puerto := l.Addr().(*net.TCPAddr).Port
	l.Close()
	return puerto
}

func esperarServidor(t *testing.T, client *HTTPClient) {
	t.Helper()
	for i := 0; i < 50; i++ {
		if err := client.VerificarConexion(); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("El servidor no respondió el healthcheck")
}

func TestProtocoloMensajes(t *testing.T) {
	puerto := puertoLibre(t)
	server := NewHTTPServer("127.0.0.1", puerto, "Memoria")
	server.RegistrarHandler(MensajeHandshake, func(msg *Mensaje) (interface{}, error) {
		return map[string]interface{}{"status": "OK", "origen": msg.Origen}, nil
	})
	server.RegistrarHandler(MensajeLeer, func(msg *Mensaje) (interface{}, error) {
		return nil, errors.New("falla simulada")
	})

	terminado := make(chan error, 1)
	go func() { terminado <- server.Iniciar() }()

	client := NewHTTPClient("127.0.0.1", puerto, "Test")
	esperarServidor(t, client)

	resp, err := client.EnviarMensaje(MensajeHandshake, "handshake", map[string]interface{}{"modulo": "cpu"})
	if err != nil {
		t.Fatalf("EnviarMensaje: %v", err)
	}
	campos, ok := resp.(map[string]interface{})
	if !ok {
		t.Fatalf("Unexpected response shape: %T", resp)
	}
	if campos["status"] != "OK" {
		t.Errorf("Expected status OK, got %v", campos["status"])
	}
	if campos["origen"] != "Test" {
		t.Errorf("Expected origin Test, got %v", campos["origen"])
	}

	// un manejador que falla se traduce en error para el cliente
	if _, err := client.EnviarMensaje(MensajeLeer, "leer", nil); err == nil {
		t.Errorf("Expected error from a failing handler")
	}

	// tipo de mensaje sin manejador registrado
	if _, err := client.EnviarMensaje(99, "desconocido", nil); err == nil {
		t.Errorf("Expected error for an unhandled message type")
	}

	if err := server.Detener(); err != nil {
		t.Fatalf("Detener: %v", err)
	}
	if err := <-terminado; !errors.Is(err, http.ErrServerClosed) {
		t.Errorf("Expected ErrServerClosed after shutdown, got %v", err)
	}
}

func TestDetenerSinIniciar(t *testing.T) {
	server := NewHTTPServer("127.0.0.1", 0, "Memoria")
	if err := server.Detener(); err != nil {
		t.Errorf("Detener on a never-started server: %v", err)
	}
}
