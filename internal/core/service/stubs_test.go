package service

import (
	"context"
	"sync"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
	"github.com/rutacampus/ticketing-api/internal/core/ports"
)

// memStore is an in-memory implementation of StudentRepository and
// LedgerRepository. Mutations hold the lock for their full duration so the
// concurrency guarantees match the real repository's transactions.
type memStore struct {
	mu       sync.Mutex
	students map[string]*domain.Estudiante
	trips    []*domain.Viaje
}

func newMemStore() *memStore {
	return &memStore{students: make(map[string]*domain.Estudiante)}
}

func cloneStudent(e *domain.Estudiante) *domain.Estudiante {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (s *memStore) Create(_ context.Context, e *domain.Estudiante) (*domain.Estudiante, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.students[e.Identificacion]; exists {
		return nil, domain.ErrStudentExists
	}
	for _, other := range s.students {
		if other.Email == e.Email {
			return nil, domain.ErrStudentExists
		}
	}
	s.students[e.Identificacion] = cloneStudent(e)
	return cloneStudent(e), nil
}

func (s *memStore) FindByIdentificacion(_ context.Context, identificacion string) (*domain.Estudiante, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.students[identificacion]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return cloneStudent(e), nil
}

func (s *memStore) FindAll(_ context.Context) ([]*domain.Estudiante, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*domain.Estudiante, 0, len(s.students))
	for _, e := range s.students {
		list = append(list, cloneStudent(e))
	}
	return list, nil
}

func (s *memStore) Delete(_ context.Context, identificacion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.students[identificacion]
	if !ok {
		return domain.ErrStudentNotFound
	}
	for _, t := range s.trips {
		if t.EstudianteID == e.ID {
			return domain.ErrStudentHasTrips
		}
	}
	delete(s.students, identificacion)
	return nil
}

func (s *memStore) SetTickets(_ context.Context, identificacion string, tickets int) (*domain.Estudiante, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.students[identificacion]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	e.NumeroTiquetes = tickets
	e.NumeroViajes = 0
	return cloneStudent(e), nil
}

func (s *memStore) RedeemTicket(_ context.Context, identificacion string, trip *domain.Viaje) (*domain.Estudiante, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.students[identificacion]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	if e.NumeroTiquetes <= 0 {
		return nil, domain.ErrInsufficientBalance
	}
	e.NumeroTiquetes--
	e.NumeroViajes++
	trip.EstudianteID = e.ID
	s.trips = append(s.trips, trip)
	return cloneStudent(e), nil
}

func (s *memStore) TripsByStudent(_ context.Context, estudianteID string) ([]*domain.Viaje, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var trips []*domain.Viaje
	for _, t := range s.trips {
		if t.EstudianteID == estudianteID {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

func (s *memStore) tripCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trips)
}

// stubAdminRepo is an in-memory AdminRepository keyed by identificacion.
// When store is set, Delete refuses administrators referenced by trip rows,
// matching the real repository's contract.
type stubAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*domain.Administrador
	store  *memStore
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Administrador)}
}

func cloneAdmin(a *domain.Administrador) *domain.Administrador {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Administrador) (*domain.Administrador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.admins[a.Identificacion]; exists {
		return nil, domain.ErrAdminExists
	}
	for _, other := range r.admins {
		if other.Email == a.Email {
			return nil, domain.ErrAdminExists
		}
	}
	r.admins[a.Identificacion] = cloneAdmin(a)
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) FindByIdentificacion(_ context.Context, identificacion string) (*domain.Administrador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[identificacion]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) Update(_ context.Context, a *domain.Administrador) (*domain.Administrador, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[a.Identificacion]; !ok {
		return nil, domain.ErrAdminNotFound
	}
	r.admins[a.Identificacion] = cloneAdmin(a)
	return cloneAdmin(a), nil
}

func (r *stubAdminRepo) Delete(_ context.Context, identificacion string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[identificacion]
	if !ok {
		return domain.ErrAdminNotFound
	}
	if r.store != nil {
		r.store.mu.Lock()
		for _, t := range r.store.trips {
			if t.AdministradorID == a.ID {
				r.store.mu.Unlock()
				return domain.ErrAdminHasTrips
			}
		}
		r.store.mu.Unlock()
	}
	delete(r.admins, identificacion)
	return nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.admins)), nil
}

// recordingSink captures audit events synchronously.
type recordingSink struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
}

func (s *recordingSink) Enqueue(event ports.AuditEventInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// stubQR returns a deterministic payload instead of a real PNG.
type stubQR struct{}

func (stubQR) Generate(data string) ([]byte, error) {
	return []byte("qr:" + data), nil
}
