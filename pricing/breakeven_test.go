package pricing

import (
	"errors"
	"testing"
)

func TestBreakEvenNegativeStrike(t *testing.T) {
	_, err := BreakEven(Call, -50.0, ptr(10.0))
	if !errors.Is(err, ErrNonPositiveStrike) {
		t.Fatalf("expected ErrNonPositiveStrike, got %v", err)
	}
}

func TestBreakEvenNegativePremium(t *testing.T) {
	_, err := BreakEven(Call, 50.0, ptr(-10.0))
	if !errors.Is(err, ErrNonPositivePremium) {
		t.Fatalf("expected ErrNonPositivePremium, got %v", err)
	}
}

func TestBreakEven(t *testing.T) {
	tests := []struct {
		opt      OptionKind
		premium  *float64
		expected float64
	}{
		{Call, ptr(10.0), 60.0},
		{Call, nil, 50.0},
		{Put, ptr(10.0), 40.0},
		{Put, nil, 50.0},
	}

	for _, test := range tests {
		actual, err := BreakEven(test.opt, 50.0, test.premium)
		if err != nil {
			t.Fatalf("Failed to calculate break-even: %v", err)
		}
		if actual != test.expected {
			t.Fatalf("For %s, expected %f, got %f", test.opt, test.expected, actual)
		}
	}
}

// A negative strike is reported before a negative premium.
func TestBreakEvenValidationOrder(t *testing.T) {
	_, err := BreakEven(Put, -50.0, ptr(-10.0))
	if !errors.Is(err, ErrNonPositiveStrike) {
		t.Fatalf("expected ErrNonPositiveStrike, got %v", err)
	}
}
