/*
 * This file is part of the Mantik Project.
 * Copyright (c) 2020-2021 Mantik UG (Haftungsbeschränkt)
 * Authors: See AUTHORS file
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License version 3.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.
 *
 * Additionally, the following linking exception is granted:
 *
 * If you modify this Program, or any covered work, by linking or
 * combining it with other code, such other code is not for that reason
 * alone subject to any of the requirements of the GNU Affero GPL
 * version 3.
 *
 * You can be released from the requirements of the license by purchasing
 * a commercial license.
 */

// Rendering of decoded image tensors (e.g. MNIST digits) into Go images.
package images

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"idx/ds/element"
)

// Renders a 2-dimensional uint8 tensor as a grayscale image.
// Row index is the y coordinate. If width/height differ from the
// tensor shape the image is resized, 0/0 keeps the original size.
func RenderGrayscale(tensor *element.Tensor, width int, height int) (image.Image, error) {
	shape := tensor.Shape()
	if len(shape) != 2 {
		return nil, errors.Errorf("Expected a 2-dimensional tensor, got %d dimensions", len(shape))
	}
	rows := shape[0]
	cols := shape[1]
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v, ok := tensor.At(y, x).(element.Uint8)
			if !ok {
				return nil, errors.Errorf("Only uint8 tensors can be rendered, got %s at (%d,%d)",
					element.Format(tensor.At(y, x)), y, x)
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	if (width == 0 && height == 0) || (width == cols && height == rows) {
		return img, nil
	}
	return resize.Resize(uint(width), uint(height), img, resize.Bicubic), nil
}

// Encodes an image as PNG.
func WritePng(destination io.Writer, img image.Image) error {
	return png.Encode(destination, img)
}
