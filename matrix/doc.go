// Package matrix provides the small dense linear algebra used to export
// rotors and motors as ordinary transformation matrices.
//
// 🚀 What is inside?
//
//	Dense is a row-major float64 matrix with bounds-checked accessors.
//	LU (Doolittle, partial pivoting) and Inverse solve square systems; Mul, MulVec and
//	Transpose cover composition. Mat3/Mat4 and FromMat3/FromMat4 convert to
//	and from the fixed-size types of golang.org/x/image/math/f64, so exported
//	motors plug directly into image/graphics code.
//
// ⚙️ Usage:
//
//	m := motor.Matrix()             // 4×4 homogeneous transform
//	y, err := m.MulVec([]float64{x, y, z, 1})
//	inv, err := matrix.Inverse(m)   // undo the motion
//
// Errors are sentinels (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrSingular) wrapped with the method context; match
// them with errors.Is. Inverse honours the division policy of package core.
package matrix
