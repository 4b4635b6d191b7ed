package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rutacampus/ticketing-api/internal/core/domain"
)

func newLedgerFixture(t *testing.T, identificacion string) (*LedgerService, *memStore, *recordingSink) {
	t.Helper()
	store := newMemStore()
	sink := &recordingSink{}
	students := NewStudentService(store, stubQR{}, &recordingSink{}, zerolog.Nop())
	if _, err := students.Create(context.Background(), studentInput(identificacion), testActor()); err != nil {
		t.Fatalf("create student: %v", err)
	}
	return NewLedgerService(store, store, nil, sink, zerolog.Nop()), store, sink
}

func TestLedgerService_SetTickets(t *testing.T) {
	svc, _, _ := newLedgerFixture(t, "1010")

	student, err := svc.SetTickets(context.Background(), "1010", 5, testActor())
	if err != nil {
		t.Fatalf("set tickets failed: %v", err)
	}
	if student.NumeroTiquetes != 5 {
		t.Fatalf("expected balance 5, got %d", student.NumeroTiquetes)
	}
}

func TestLedgerService_SetTickets_Validation(t *testing.T) {
	svc, _, _ := newLedgerFixture(t, "1010")

	if _, err := svc.SetTickets(context.Background(), "", 5, testActor()); err != domain.ErrInvalidTicketRequest {
		t.Fatalf("empty id: expected ErrInvalidTicketRequest, got %v", err)
	}
	if _, err := svc.SetTickets(context.Background(), "1010", -1, testActor()); err != domain.ErrInvalidTicketRequest {
		t.Fatalf("negative balance: expected ErrInvalidTicketRequest, got %v", err)
	}
	if _, err := svc.SetTickets(context.Background(), "ghost", 5, testActor()); err != domain.ErrStudentNotFound {
		t.Fatalf("absent student: expected ErrStudentNotFound, got %v", err)
	}
}

func TestLedgerService_SetTickets_ResetsTripCount(t *testing.T) {
	svc, _, _ := newLedgerFixture(t, "1010")

	_, _ = svc.SetTickets(context.Background(), "1010", 3, testActor())
	for i := 0; i < 2; i++ {
		if _, err := svc.DiscountTicket(context.Background(), "1010", testActor()); err != nil {
			t.Fatalf("discount %d: %v", i, err)
		}
	}

	student, err := svc.SetTickets(context.Background(), "1010", 10, testActor())
	if err != nil {
		t.Fatalf("set tickets failed: %v", err)
	}
	if student.NumeroViajes != 0 {
		t.Fatalf("expected trip count reset to 0, got %d", student.NumeroViajes)
	}
	if student.NumeroTiquetes != 10 {
		t.Fatalf("expected balance 10, got %d", student.NumeroTiquetes)
	}
}

func TestLedgerService_Discount_DrainsBalance(t *testing.T) {
	svc, store, _ := newLedgerFixture(t, "1010")

	const n = 7
	_, _ = svc.SetTickets(context.Background(), "1010", n, testActor())

	var student *domain.Estudiante
	var err error
	for i := 0; i < n; i++ {
		student, err = svc.DiscountTicket(context.Background(), "1010", testActor())
		if err != nil {
			t.Fatalf("discount %d: %v", i, err)
		}
	}
	if student.NumeroTiquetes != 0 {
		t.Fatalf("expected balance 0, got %d", student.NumeroTiquetes)
	}
	if student.NumeroViajes != n {
		t.Fatalf("expected %d trips, got %d", n, student.NumeroViajes)
	}
	if store.tripCount() != n {
		t.Fatalf("expected %d trip rows, got %d", n, store.tripCount())
	}
}

func TestLedgerService_Discount_InsufficientBalance(t *testing.T) {
	svc, store, _ := newLedgerFixture(t, "1010")

	if _, err := svc.DiscountTicket(context.Background(), "1010", testActor()); err != domain.ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	if store.tripCount() != 0 {
		t.Fatalf("rejected discount must not create trips, got %d", store.tripCount())
	}

	student, _ := store.FindByIdentificacion(context.Background(), "1010")
	if student.NumeroTiquetes != 0 || student.NumeroViajes != 0 {
		t.Fatalf("rejected discount must not change balances: %d/%d", student.NumeroTiquetes, student.NumeroViajes)
	}
}

func TestLedgerService_Discount_Validation(t *testing.T) {
	svc, _, _ := newLedgerFixture(t, "1010")

	if _, err := svc.DiscountTicket(context.Background(), "", testActor()); err != domain.ErrInvalidTicketRequest {
		t.Fatalf("empty id: expected ErrInvalidTicketRequest, got %v", err)
	}
	if _, err := svc.DiscountTicket(context.Background(), "ghost", testActor()); err != domain.ErrStudentNotFound {
		t.Fatalf("absent student: expected ErrStudentNotFound, got %v", err)
	}
}

func TestLedgerService_Discount_ConcurrentLastTicket(t *testing.T) {
	svc, store, _ := newLedgerFixture(t, "1010")
	_, _ = svc.SetTickets(context.Background(), "1010", 1, testActor())

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.DiscountTicket(context.Background(), "1010", testActor())
		}(i)
	}
	wg.Wait()

	var successes, rejections int
	for _, err := range errs {
		switch err {
		case nil:
			successes++
		case domain.ErrInsufficientBalance:
			rejections++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || rejections != 1 {
		t.Fatalf("expected exactly one success and one rejection, got %d/%d", successes, rejections)
	}

	student, _ := store.FindByIdentificacion(context.Background(), "1010")
	if student.NumeroTiquetes != 0 {
		t.Fatalf("balance went negative or stale: %d", student.NumeroTiquetes)
	}
	if store.tripCount() != 1 {
		t.Fatalf("expected exactly one trip row, got %d", store.tripCount())
	}
}

type dupDeduper struct{}

func (dupDeduper) IsDuplicate(context.Context, string) (bool, error) { return true, nil }
func (dupDeduper) Mark(context.Context, string) error                { return nil }

func TestLedgerService_Discount_DuplicateScan(t *testing.T) {
	store := newMemStore()
	students := NewStudentService(store, stubQR{}, &recordingSink{}, zerolog.Nop())
	_, _ = students.Create(context.Background(), studentInput("1010"), testActor())
	svc := NewLedgerService(store, store, dupDeduper{}, &recordingSink{}, zerolog.Nop())

	_, _ = store.SetTickets(context.Background(), "1010", 3)
	if _, err := svc.DiscountTicket(context.Background(), "1010", testActor()); err != domain.ErrDuplicateRedemption {
		t.Fatalf("expected ErrDuplicateRedemption, got %v", err)
	}
	if store.tripCount() != 0 {
		t.Fatalf("duplicate scan must not create trips")
	}
}

func TestLedgerService_ListTrips(t *testing.T) {
	svc, _, _ := newLedgerFixture(t, "1010")

	_, _ = svc.SetTickets(context.Background(), "1010", 2, testActor())
	_, _ = svc.DiscountTicket(context.Background(), "1010", testActor())
	_, _ = svc.DiscountTicket(context.Background(), "1010", testActor())

	trips, err := svc.ListTrips(context.Background(), "1010")
	if err != nil {
		t.Fatalf("list trips failed: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	for _, trip := range trips {
		if trip.AdministradorID != testActor().ID {
			t.Fatalf("trip missing authorizing administrator: %+v", trip)
		}
	}

	if _, err := svc.ListTrips(context.Background(), "ghost"); err != domain.ErrStudentNotFound {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
