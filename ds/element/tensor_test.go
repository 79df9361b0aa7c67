package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTensor(t *testing.T) {
	tensor, err := NewTensor([]int{2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 3}, tensor.Shape())
	assert.Equal(t, 6, tensor.ElementCount())
	for _, v := range tensor.Values() {
		assert.Equal(t, Absent{}, v)
	}
}

func TestNewTensorZeroDimensional(t *testing.T) {
	tensor, err := NewTensor(nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, tensor.ElementCount())
	assert.Equal(t, Absent{}, tensor.At())
}

func TestNewTensorZeroSize(t *testing.T) {
	tensor, err := NewTensor([]int{0, 5})
	assert.NoError(t, err)
	assert.Equal(t, 0, tensor.ElementCount())
}

func TestNewTensorInvalidShape(t *testing.T) {
	_, err := NewTensor([]int{2, -1})
	assert.Error(t, err)
}

func TestSetAndAt(t *testing.T) {
	tensor, err := NewTensor([]int{2, 2})
	assert.NoError(t, err)
	tensor.Set([]int{0, 1}, Uint8(7))
	tensor.Set([]int{1, 0}, Uint8(9))
	assert.Equal(t, Uint8(7), tensor.At(0, 1))
	assert.Equal(t, Uint8(9), tensor.At(1, 0))
	assert.Equal(t, Absent{}, tensor.At(0, 0))
	// row major layout
	assert.Equal(t, Uint8(7), tensor.Values()[1])
	assert.Equal(t, Uint8(9), tensor.Values()[2])
}

func TestSlice(t *testing.T) {
	tensor, err := NewTensor([]int{2, 2})
	assert.NoError(t, err)
	tensor.Set([]int{1, 0}, Int32(1))
	tensor.Set([]int{1, 1}, Int32(2))
	sub, err := tensor.Slice(1)
	assert.NoError(t, err)
	assert.Equal(t, []int{2}, sub.Shape())
	assert.Equal(t, Int32(1), sub.At(0))
	assert.Equal(t, Int32(2), sub.At(1))

	_, err = tensor.Slice(2)
	assert.Error(t, err)
}

func TestSliceZeroDimensional(t *testing.T) {
	tensor, err := NewTensor(nil)
	assert.NoError(t, err)
	_, err = tensor.Slice(0)
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	tensor, err := NewTensor([]int{3})
	assert.NoError(t, err)
	tensor.Set([]int{0}, Uint8(1))
	tensor.Set([]int{1}, Uint8(2))
	tensor.Set([]int{2}, Uint8(3))
	assert.Equal(t, Uint8(6), Sum(tensor))
}

func TestSumEmpty(t *testing.T) {
	tensor, err := NewTensor([]int{0})
	assert.NoError(t, err)
	assert.Equal(t, Zero(), Sum(tensor))
}

func TestSumMixedVariants(t *testing.T) {
	tensor, err := NewTensor([]int{2})
	assert.NoError(t, err)
	tensor.Set([]int{0}, Uint8(1))
	tensor.Set([]int{1}, Int8(1))
	// the merge rule degrades mixed variants to Absent
	assert.Equal(t, Absent{}, Sum(tensor))
}
