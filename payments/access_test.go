package payments

import (
	"testing"

	"vipcourses/models"
)

func pay(status string, courseIDs ...string) models.Payment {
	var lines []models.PaymentCourse
	for _, id := range courseIDs {
		lines = append(lines, models.PaymentCourse{ID: id, Title: id, Price: 100})
	}
	return models.Payment{Status: status, Courses: lines}
}

func TestDeriveAccessStatesApprovedDominatesPending(t *testing.T) {
	// approved before pending
	states := DeriveAccessStates([]models.Payment{
		pay(models.PaymentApproved, "c1"),
		pay(models.PaymentPending, "c1"),
	})
	if states["c1"] != models.AccessApproved {
		t.Fatalf("expected approved, got %q", states["c1"])
	}

	// pending before approved — order must not matter
	states = DeriveAccessStates([]models.Payment{
		pay(models.PaymentPending, "c1"),
		pay(models.PaymentApproved, "c1"),
	})
	if states["c1"] != models.AccessApproved {
		t.Fatalf("expected approved regardless of order, got %q", states["c1"])
	}
}

func TestDeriveAccessStatesPendingAndAbsent(t *testing.T) {
	states := DeriveAccessStates([]models.Payment{
		pay(models.PaymentPending, "c1", "c2"),
		pay(models.PaymentRejected, "c3"),
	})

	if states["c1"] != models.AccessPending || states["c2"] != models.AccessPending {
		t.Fatalf("expected both pending, got %+v", states)
	}
	if _, ok := states["c3"]; ok {
		t.Fatalf("rejected payment must not grant any state, got %+v", states)
	}
	if _, ok := states["c4"]; ok {
		t.Fatal("untouched course must be absent from the map")
	}
}

func TestDeriveAccessStatesMultiCoursePayments(t *testing.T) {
	states := DeriveAccessStates([]models.Payment{
		pay(models.PaymentApproved, "c1", "c2"),
		pay(models.PaymentPending, "c2", "c3"),
	})

	if states["c1"] != models.AccessApproved {
		t.Fatalf("c1: expected approved, got %q", states["c1"])
	}
	if states["c2"] != models.AccessApproved {
		t.Fatalf("c2: approved payment must win, got %q", states["c2"])
	}
	if states["c3"] != models.AccessPending {
		t.Fatalf("c3: expected pending, got %q", states["c3"])
	}
}

func TestDeriveAccessStatesEmpty(t *testing.T) {
	states := DeriveAccessStates(nil)
	if len(states) != 0 {
		t.Fatalf("expected empty map, got %+v", states)
	}
}
