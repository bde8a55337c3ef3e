package money

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestFromFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want Cents
	}{
		{0.1, 10},
		{0.2, 20},
		{0.3, 30},
		{19.99, 1999},
		{100, 10000},
		{0, 0},
	}
	for _, tc := range cases {
		got, err := FromFloat(tc.in)
		if err != nil {
			t.Fatalf("FromFloat(%v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("FromFloat(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFromFloat_Rejects(t *testing.T) {
	for _, v := range []float64{0.001, 1.005, math.NaN(), math.Inf(1), 1e30} {
		if _, err := FromFloat(v); !errors.Is(err, ErrInvalid) {
			t.Fatalf("FromFloat(%v): expected ErrInvalid, got %v", v, err)
		}
	}
}

func TestFloat64_SerializesShortest(t *testing.T) {
	a, _ := FromFloat(0.1)
	b, _ := FromFloat(0.2)

	raw, err := json.Marshal((a + b).Float64())
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "0.3" {
		t.Fatalf("expected 0.3, got %s", raw)
	}
	if (a + b).String() != "0.30" {
		t.Fatalf("unexpected string: %s", (a + b).String())
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(30, 30); got != 100 {
		t.Fatalf("exact fit must be 100, got %v", got)
	}
	if got := Percent(5000, 10000); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := Percent(10, 0); got != 0 {
		t.Fatalf("zero goal must be 0, got %v", got)
	}
	if got := Percent(20000, 10000); got != 100 {
		t.Fatalf("must be capped at 100, got %v", got)
	}
}
