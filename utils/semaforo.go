package utils

// Semaforo implementa un semáforo contador sobre un canal con buffer.
// La capacidad es la cantidad máxima de poseedores simultáneos.
type Semaforo struct {
	c chan struct{}
}

// NewSemaforo crea un semáforo con la capacidad indicada
func NewSemaforo(capacidad int) *Semaforo {
	if capacidad <= 0 {
		capacidad = 1
	}
	return &Semaforo{
		c: make(chan struct{}, capacidad),
	}
}

// Wait (P) toma un lugar, bloquea si no hay disponibles
func (s *Semaforo) Wait() {
	s.c <- struct{}{}
}

// Signal (V) libera un lugar
func (s *Semaforo) Signal() {
	select {
	case <-s.c:
	default:
		// nada tomado, no hay lugar que devolver
	}
}

// TryWait intenta tomar un lugar sin bloquear
func (s *Semaforo) TryWait() bool {
	select {
	case s.c <- struct{}{}:
		return true
	default:
		return false
	}
}
