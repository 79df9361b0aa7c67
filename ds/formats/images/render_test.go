package images

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	"idx/ds/element"
)

func makeUint8Tensor(t *testing.T, shape []int, values ...uint8) *element.Tensor {
	tensor, err := element.NewTensor(shape)
	assert.NoError(t, err)
	target := tensor.Values()
	for i, v := range values {
		target[i] = element.Uint8(v)
	}
	return tensor
}

func TestRenderGrayscale(t *testing.T) {
	tensor := makeUint8Tensor(t, []int{2, 3},
		0, 128, 255,
		64, 32, 16,
	)
	img, err := RenderGrayscale(tensor, 0, 0)
	assert.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())
	r, _, _, _ := img.At(1, 0).RGBA()
	assert.Equal(t, uint32(128*257), r)
	r, _, _, _ = img.At(2, 1).RGBA()
	assert.Equal(t, uint32(16*257), r)
}

func TestRenderResized(t *testing.T) {
	tensor := makeUint8Tensor(t, []int{2, 2}, 0, 255, 255, 0)
	img, err := RenderGrayscale(tensor, 8, 8)
	assert.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 8, bounds.Dx())
	assert.Equal(t, 8, bounds.Dy())
}

func TestRenderRejectsBadShape(t *testing.T) {
	tensor := makeUint8Tensor(t, []int{2, 2, 2})
	_, err := RenderGrayscale(tensor, 0, 0)
	assert.Error(t, err)
}

func TestRenderRejectsNonUint8(t *testing.T) {
	tensor, err := element.NewTensor([]int{1, 1})
	assert.NoError(t, err)
	tensor.Values()[0] = element.Float32(1.0)
	_, err = RenderGrayscale(tensor, 0, 0)
	assert.Error(t, err)
}

func TestWritePng(t *testing.T) {
	tensor := makeUint8Tensor(t, []int{2, 2}, 1, 2, 3, 4)
	img, err := RenderGrayscale(tensor, 0, 0)
	assert.NoError(t, err)
	buf := bytes.Buffer{}
	assert.NoError(t, WritePng(&buf, img))
	back, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 2, back.Bounds().Dx())
}
