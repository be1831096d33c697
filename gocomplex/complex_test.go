package gocomplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	sum := New(0.0, 0.0).Add(New(0.0, 0.0))
	assert.Equal(t, New(0.0, 0.0), sum)

	sum = New(0.0, 0.0).Add(New(1.0, 2.0))
	assert.Equal(t, New(1.0, 2.0), sum)
}

func TestMul(t *testing.T) {
	// (2+3i) * (1-1i) = 2-2i+3i-3i^2 = 5+1i
	got := New(2.0, 3.0).Mul(New(1.0, -1.0))
	assert.Equal(t, New(5.0, 1.0), got)
}

func TestAbsSquared(t *testing.T) {
	assert.Equal(t, 25.0, New(3.0, 4.0).AbsSquared())
}

func TestScale(t *testing.T) {
	assert.Equal(t, New(2.0, -4.0), New(1.0, -2.0).Scale(2.0))
}
