package usecase

import (
	"context"
	"errors"
	"testing"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
)

func TestCheckAvailability_FormatsWindowAndResolvesRoom(t *testing.T) {
	checker := &fakeChecker{availability: port.Availability{IsAvailable: true}}
	uc := NewCheckAvailabilityUseCase(checker)

	output, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		RoomKey:  "prairie-sautillante",
		CheckIn:  date("2025-10-15"),
		CheckOut: date("2025-10-18"),
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if output.Room.BackendID != 2 {
		t.Fatalf("expected backend id 2, got %d", output.Room.BackendID)
	}
	if output.CheckInDate != "2025-10-15" || output.CheckOutDate != "2025-10-18" {
		t.Fatalf("unexpected formatted window: %+v", output)
	}
	if !output.IsAvailable {
		t.Fatalf("expected availability to pass through")
	}
}

func TestCheckAvailability_BadInputNeverReachesNetwork(t *testing.T) {
	checker := &fakeChecker{availability: port.Availability{IsAvailable: true}}
	uc := NewCheckAvailabilityUseCase(checker)

	if _, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		RoomKey:  "no-such-room",
		CheckIn:  date("2025-10-15"),
		CheckOut: date("2025-10-18"),
	}); !errors.Is(err, domain.ErrUnknownRoom) {
		t.Fatalf("expected unknown room, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		RoomKey:  "nid-wallaby",
		CheckIn:  date("2025-10-18"),
		CheckOut: date("2025-10-15"),
	}); !errors.Is(err, domain.ErrDateOrder) {
		t.Fatalf("expected date order error, got %v", err)
	}

	if checker.calls != 0 {
		t.Fatalf("expected no network calls for invalid input, got %d", checker.calls)
	}
}

func TestCheckAvailability_ConflictsSurface(t *testing.T) {
	checker := &fakeChecker{availability: port.Availability{
		IsAvailable: false,
		Conflicts:   []domain.Reservation{{ID: "9", CheckInDate: "2025-10-16", CheckOutDate: "2025-10-17"}},
	}}
	uc := NewCheckAvailabilityUseCase(checker)

	output, err := uc.Execute(context.Background(), CheckAvailabilityInput{
		RoomKey:  "nid-wallaby",
		CheckIn:  date("2025-10-15"),
		CheckOut: date("2025-10-18"),
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if output.IsAvailable {
		t.Fatalf("expected unavailable window")
	}
	if len(output.Conflicts) != 1 || output.Conflicts[0].ID != "9" {
		t.Fatalf("expected the conflicting record, got %+v", output.Conflicts)
	}
}
