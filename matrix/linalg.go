// SPDX-License-Identifier: MIT
// Package matrix: products, transpose, LU decomposition and inverse.

package matrix

import (
	"fmt"
	"math"

	"github.com/Daniel-G-W-Hug/ga-sub005/core"
)

// ---------- operation tags ----------

const (
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTranspose = "Transpose"
	opLU        = "LU"
	opInverse   = "Inverse"
	opPermute   = "PermuteRows"
)

// Mul returns the product a·b.
// Stage 1 (Validate): a.Cols == b.Rows.
// Stage 2 (Execute): i→k→j loop over the flat buffers, skipping zero a[i,k].
// Complexity: O(r·n·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int
	var av float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m·x for a column vector x.
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch))
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		var acc float64
		base := i * m.c
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Dense) Transpose() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// LU performs Doolittle LU decomposition with partial pivoting:
// P·m = L·U with L unit lower triangular and U upper triangular. P is
// returned as perm, row i of P·m being row perm[i] of m.
// Stage 1 (Validate): m must be square.
// Stage 2 (Execute): for column i pick the row with the largest |a_ki|,
// swap it into place and eliminate below it; a pivot below the threshold of
// opts fails with ErrSingular in strict mode.
// Complexity: O(n³) time, O(n²) memory.
func LU(m *Dense, opts ...core.Option) ([]int, *Dense, *Dense, error) {
	// Stage 1: Validate input is square
	if m.r != m.c {
		return nil, nil, nil, matrixErrorf(opLU, fmt.Errorf("non-square %dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	n := m.r
	o := core.Gather(opts...)
	eps := core.Threshold[float64](o)

	L, _ := Identity(n)
	U := m.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 2: Execute elimination
	var i, j, k, p int
	var pivot, l float64
	for i = 0; i < n; i++ {
		p = i
		for k = i + 1; k < n; k++ {
			if math.Abs(U.data[k*n+i]) > math.Abs(U.data[p*n+i]) {
				p = k
			}
		}
		if p != i {
			perm[i], perm[p] = perm[p], perm[i]
			for j = 0; j < n; j++ {
				U.data[i*n+j], U.data[p*n+j] = U.data[p*n+j], U.data[i*n+j]
			}
			for j = 0; j < i; j++ {
				L.data[i*n+j], L.data[p*n+j] = L.data[p*n+j], L.data[i*n+j]
			}
		}
		pivot = U.data[i*n+i]
		if o.Strict() && math.Abs(pivot) < eps {
			return nil, nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d=%g: %w", i, pivot, ErrSingular))
		}
		for k = i + 1; k < n; k++ {
			l = U.data[k*n+i] / pivot
			L.data[k*n+i] = l
			U.data[k*n+i] = 0
			for j = i + 1; j < n; j++ {
				U.data[k*n+j] -= l * U.data[i*n+j]
			}
		}
	}

	return perm, L, U, nil
}

// PermuteRows returns the matrix whose row i is row perm[i] of m.
func (m *Dense) PermuteRows(perm []int) (*Dense, error) {
	if len(perm) != m.r {
		return nil, matrixErrorf(opPermute, fmt.Errorf("len(perm)=%d, rows=%d: %w", len(perm), m.r, ErrDimensionMismatch))
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i, src := range perm {
		if src < 0 || src >= m.r {
			return nil, matrixErrorf(opPermute, fmt.Errorf("perm[%d]=%d: %w", i, src, ErrOutOfRange))
		}
		copy(res.data[i*m.c:(i+1)*m.c], m.data[src*m.c:(src+1)*m.c])
	}

	return res, nil
}

// Inverse returns m⁻¹ via LU decomposition and forward/backward substitution.
// Stage 1 (Decompose): P·m = L·U (validates shape and pivots).
// Stage 2 (Execute): for each identity column e_col solve L·y = P·e_col,
// U·x = y.
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m *Dense, opts ...core.Option) (*Dense, error) {
	perm, L, U, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	inv, _ := NewDense(n, n)
	y := make([]float64, n)
	x := make([]float64, n)

	var col, i, k int
	var sum float64
	for col = 0; col < n; col++ {
		// forward substitution: L·y = P·e_col
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = 0 - sum // +0, not -0, for an all-zero row prefix
			}
		}
		// backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
