package math

import (
	"math"
	"testing"
)

func TestVec2Operations(t *testing.T) {
	v1 := NewVec2(1, 2)
	v2 := NewVec2(4, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec2(5, 8)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec2(3, 4)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec2(2, 4)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Component-wise division
	result = v2.Div(NewVec2(2, 3))
	expected = NewVec2(2, 2)
	if result != expected {
		t.Errorf("Div: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(16) // 1*4 + 2*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}
}

func TestVec2DivByZero(t *testing.T) {
	// Division by zero is not guarded. The result propagates as Inf,
	// mirroring what the GPU does with a zero resolution uniform.
	v := NewVec2(100, 100).Div(NewVec2(0, 0))
	if !math.IsInf(float64(v.X), 1) || !math.IsInf(float64(v.Y), 1) {
		t.Errorf("Div by zero: expected +Inf components, got %v", v)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := NewVec2(3, 0)
	normalized := v.Normalize()
	expected := NewVec2(1, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	// Check length is 1
	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	// Zero vector stays put
	zero := NewVec2(0, 0).Normalize()
	if zero != NewVec2(0, 0) {
		t.Errorf("Normalize: expected zero vector unchanged, got %v", zero)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := NewVec2(0, 0)
	b := NewVec2(10, 20)

	mid := a.Lerp(b, 0.5)
	if mid != NewVec2(5, 10) {
		t.Errorf("Lerp: expected (5,10), got %v", mid)
	}

	if a.Lerp(b, 0) != a {
		t.Errorf("Lerp: t=0 should return start")
	}
	if a.Lerp(b, 1) != b {
		t.Errorf("Lerp: t=1 should return end")
	}
}

func TestVec4Modulate(t *testing.T) {
	tests := []struct {
		name     string
		color    Vec4
		sample   Vec4
		expected Vec4
	}{
		{"identity tint", NewVec4(1, 1, 1, 1), NewVec4(0.2, 0.4, 0.6, 0.8), NewVec4(0.2, 0.4, 0.6, 0.8)},
		{"half gray", NewVec4(0.5, 0.5, 0.5, 1.0), NewVec4(1, 1, 1, 1), NewVec4(0.5, 0.5, 0.5, 1.0)},
		{"black", NewVec4(0, 0, 0, 0), NewVec4(1, 1, 1, 1), NewVec4(0, 0, 0, 0)},
		// Values above 1 are not clamped.
		{"overbright", NewVec4(2, 2, 2, 1), NewVec4(1, 0.5, 1, 1), NewVec4(2, 1, 2, 1)},
	}

	for _, tt := range tests {
		result := tt.color.Modulate(tt.sample)
		if result != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, result)
		}
	}
}

func TestVec4Lerp(t *testing.T) {
	a := NewVec4(0, 0, 0, 0)
	b := NewVec4(1, 2, 3, 4)

	mid := a.Lerp(b, 0.5)
	if mid != NewVec4(0.5, 1, 1.5, 2) {
		t.Errorf("Lerp: expected (0.5,1,1.5,2), got %v", mid)
	}
}

func BenchmarkVec2Div(b *testing.B) {
	v1 := NewVec2(400, 300)
	v2 := NewVec2(800, 600)

	for i := 0; i < b.N; i++ {
		_ = v1.Div(v2)
	}
}

func BenchmarkVec4Modulate(b *testing.B) {
	v1 := NewVec4(1, 1, 1, 1)
	v2 := NewVec4(0.2, 0.4, 0.6, 0.8)

	for i := 0; i < b.N; i++ {
		_ = v1.Modulate(v2)
	}
}
