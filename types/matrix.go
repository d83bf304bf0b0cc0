package types

import "golang.org/x/image/math/f32"

// Pack a 4x4 matrix into a row-major f32 array suitable for uploading to the GPU.
func PackMat4(m Mat4) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m.At(r, c)
		}
	}
	return out
}

// Pack a 3x3 matrix into a row-major f32 array.
func PackMat3(m Mat3) f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m.At(r, c)
		}
	}
	return out
}

// Calculate the matrix used for transforming normals: the transposed inverse
// of the upper 3x3 block of the model matrix.
func NormalMatrix(model Mat4) Mat3 {
	return model.Inv().Transpose().Mat3()
}
