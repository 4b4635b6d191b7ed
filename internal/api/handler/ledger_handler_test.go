package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rutacampus/ticketing-api/internal/api/middleware"
	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

type stubLedgerService struct {
	student *domain.Estudiante
	err     error
}

func (s *stubLedgerService) SetTickets(_ context.Context, identificacion string, tickets int, _ *domain.Administrador) (*domain.Estudiante, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.student
	out.NumeroTiquetes = tickets
	out.NumeroViajes = 0
	return &out, nil
}

func (s *stubLedgerService) DiscountTicket(_ context.Context, identificacion string, _ *domain.Administrador) (*domain.Estudiante, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.student
	out.NumeroTiquetes--
	out.NumeroViajes++
	return &out, nil
}

func (s *stubLedgerService) ListTrips(_ context.Context, identificacion string) ([]*domain.Viaje, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Viaje{{ID: "viaje-1", EstudianteID: s.student.ID}}, nil
}

func ledgerContext(t *testing.T, method, target, identificacion string, withActor bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("identificacion")
	c.SetParamValues(identificacion)
	if withActor {
		c.Set(middleware.ActorKey, &domain.Administrador{ID: "admin-1", Identificacion: "900100"})
	}
	return c, rec
}

func TestLedgerHandler_SetTickets(t *testing.T) {
	h := NewLedgerHandler(&stubLedgerService{student: &domain.Estudiante{ID: "est-1", Identificacion: "1010"}})

	c, rec := ledgerContext(t, http.MethodPut, "/api/v1/estudiantes/tickets/1010?tickets=5", "1010", true)
	if err := h.SetTickets(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var student domain.Estudiante
	if err := json.Unmarshal(rec.Body.Bytes(), &student); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if student.NumeroTiquetes != 5 || student.NumeroViajes != 0 {
		t.Fatalf("unexpected balances: %d/%d", student.NumeroTiquetes, student.NumeroViajes)
	}
}

func TestLedgerHandler_SetTickets_NonNumericQuery(t *testing.T) {
	h := NewLedgerHandler(&stubLedgerService{student: &domain.Estudiante{}})

	c, _ := ledgerContext(t, http.MethodPut, "/api/v1/estudiantes/tickets/1010?tickets=abc", "1010", true)
	err := h.SetTickets(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLedgerHandler_MissingActor(t *testing.T) {
	h := NewLedgerHandler(&stubLedgerService{student: &domain.Estudiante{}})

	c, _ := ledgerContext(t, http.MethodPut, "/api/v1/estudiantes/tickets/delete/1010", "1010", false)
	err := h.Discount(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestLedgerHandler_Discount_PropagatesDomainErrors(t *testing.T) {
	h := NewLedgerHandler(&stubLedgerService{err: domain.ErrInsufficientBalance})

	c, _ := ledgerContext(t, http.MethodPut, "/api/v1/estudiantes/tickets/delete/1010", "1010", true)
	if err := h.Discount(c); err != domain.ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestLedgerHandler_ListTrips(t *testing.T) {
	h := NewLedgerHandler(&stubLedgerService{student: &domain.Estudiante{ID: "est-1"}})

	c, rec := ledgerContext(t, http.MethodGet, "/api/v1/viajes/1010", "1010", false)
	if err := h.ListTrips(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var trips []domain.Viaje
	if err := json.Unmarshal(rec.Body.Bytes(), &trips); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(trips) != 1 || trips[0].EstudianteID != "est-1" {
		t.Fatalf("unexpected trips: %+v", trips)
	}
}
