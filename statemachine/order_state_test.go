package statemachine

import (
	"testing"

	"food-ordering-api/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{"created to placed", models.StatusCreated, models.StatusPlaced, true},
		{"placed to cancelled", models.StatusPlaced, models.StatusCancelled, true},
		{"created to cancelled", models.StatusCreated, models.StatusCancelled, false},
		{"placed to created", models.StatusPlaced, models.StatusCreated, false},
		{"cancelled to placed", models.StatusCancelled, models.StatusPlaced, false},
		{"cancelled to created", models.StatusCancelled, models.StatusCreated, false},
		{"placed to placed", models.StatusPlaced, models.StatusPlaced, false},
		{"created to created", models.StatusCreated, models.StatusCreated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.allowed && err != nil {
				t.Errorf("expected %s -> %s to be allowed, got %v", tt.from, tt.to, err)
			}
			if !tt.allowed && err == nil {
				t.Errorf("expected %s -> %s to be rejected", tt.from, tt.to)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusCreated)
	if len(nexts) != 1 || nexts[0] != models.StatusPlaced {
		t.Errorf("expected CREATED -> [PLACED], got %v", nexts)
	}
	if got := ValidTransitionsFrom(models.StatusCancelled); len(got) != 0 {
		t.Errorf("expected no transitions out of CANCELLED, got %v", got)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(models.StatusCreated) || IsTerminal(models.StatusPlaced) {
		t.Error("CREATED and PLACED must not be terminal")
	}
	if !IsTerminal(models.StatusCancelled) {
		t.Error("CANCELLED must be terminal")
	}
}
