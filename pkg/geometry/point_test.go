package geometry

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(4, 5)
	result := p1.Add(p2)

	expected := NewPoint(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPointSub(t *testing.T) {
	p1 := NewPoint(5, 7)
	p2 := NewPoint(1, 2)
	result := p1.Sub(p2)

	expected := NewPoint(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)
	distance := p1.Distance(p2)

	if math.Abs(float64(distance)-5.0) > 1e-6 {
		t.Errorf("Distance failed: expected 5, got %v", distance)
	}
}

func TestPointMinMax(t *testing.T) {
	p1 := NewPoint(-1, 8)
	p2 := NewPoint(4, 2)

	if got := p1.Min(p2); got != NewPoint(-1, 2) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := p1.Max(p2); got != NewPoint(4, 8) {
		t.Errorf("Max failed: got %v", got)
	}
}

func TestPointApproxEqual(t *testing.T) {
	p := NewPoint(10, 0)
	if !p.ApproxEqual(NewPoint(10.0001, -0.0001), 1e-3) {
		t.Errorf("expected %v to approximately equal nearby point", p)
	}
	if p.ApproxEqual(NewPoint(10.1, 0), 1e-3) {
		t.Errorf("expected %v not to approximately equal (10.1, 0)", p)
	}
}

func TestLineAt(t *testing.T) {
	l := NewLine(NewPoint(-20, 0), NewPoint(20, 10))

	tests := []struct {
		t    float32
		want Point
	}{
		{0, NewPoint(-20, 0)},
		{0.5, NewPoint(0, 5)},
		{1, NewPoint(20, 10)},
	}
	for _, tt := range tests {
		if got := l.At(tt.t); got != tt.want {
			t.Errorf("At(%v): expected %v, got %v", tt.t, tt.want, got)
		}
	}
}

func TestLineDegenerate(t *testing.T) {
	if !NewLine(NewPoint(1, 1), NewPoint(1, 1)).IsDegenerate() {
		t.Error("expected zero-length line to be degenerate")
	}
	l := NewLine(NewPoint(1, 1), NewPoint(2, 1))
	if l.IsDegenerate() {
		t.Error("expected non-zero line not to be degenerate")
	}
	if l.Reversed().Start != l.End {
		t.Errorf("Reversed failed: got %v", l.Reversed())
	}
}
