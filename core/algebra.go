// SPDX-License-Identifier: MIT
// Package core: algebra definition and derived product tables.
//
// Purpose:
//   - Turn a metric signature and an ordered list of named basis blades into
//     the slot/sign tables every kernel product reads.
//   - Fail early (ErrBadAlgebra) on malformed definitions; the algebra packages
//     build their tables with MustAlgebra during package initialisation.
//
// Table construction:
//   - Canonical blades are bitmaps; e_A·e_B = σ(A,B)·μ(A∩B)·e_(A xor B), where σ
//     is the reordering sign and μ the product of the squares of the shared
//     generators (+1 or 0).
//   - Named blades carry an orientation sign s, so named_i·named_j picks up
//     s_i·s_j·s_k for the result slot k.
//   - Complements, regressive products and the anti-involutions are composed
//     from those tables; no product is ever written by hand.

package core

import (
	"fmt"
	"math/bits"
)

const maxDim = 4

// Algebra is an immutable description of G(p,0,r) with p+r ≤ 4 generators.
// The zero value is not usable; construct with NewAlgebra or MustAlgebra.
type Algebra struct {
	name   string
	dim    int
	size   int
	metric [maxDim]int8
	blades [MaxBlades]Blade
	slotOf [MaxBlades]uint8 // canonical bitmap → slot
	grade  [MaxBlades]uint8

	gpr, wdg, rwdg, rgpr productTable
	rcmpl, lcmpl          permTable
	rev, rrev             signTable
	grInv, conj           signTable
	dotSign, rdotSign     signTable

	gradeMask   [maxDim + 1]Mask
	full        Mask
	bulk        Mask
	weight      Mask
	scalarSlot  int
	pseudoSlot  int
	degenerated bool
}

// NewAlgebra validates the definition and derives every table.
// Stage 1 (Validate): 1 ≤ len(metric) ≤ 4; each square is +1 or 0;
// len(basis) == 2^len(metric); bitmaps unique and in range; signs ±1.
// Stage 2 (Prepare): index slots by bitmap, record grades and masks.
// Stage 3 (Execute): build gpr/wdg, then complements, then the regressive
// tables and the grade sign tables on top of them.
// Complexity: O(16²) time, O(1) heap (the Algebra value itself).
func NewAlgebra(name string, metric []int8, basis []Blade) (*Algebra, error) {
	// Stage 1: Validate
	dim := len(metric)
	if dim < 1 || dim > maxDim {
		return nil, fmt.Errorf("NewAlgebra %q: dimension %d: %w", name, dim, ErrBadAlgebra)
	}
	size := 1 << uint(dim)
	if len(basis) != size {
		return nil, fmt.Errorf("NewAlgebra %q: %d blades, want %d: %w", name, len(basis), size, ErrBadAlgebra)
	}
	alg := &Algebra{name: name, dim: dim, size: size}
	for k, m := range metric {
		if m != 0 && m != 1 {
			return nil, fmt.Errorf("NewAlgebra %q: generator %d squares to %d: %w", name, k+1, m, ErrBadAlgebra)
		}
		alg.metric[k] = m
		if m == 0 {
			alg.degenerated = true
		}
	}

	// Stage 2: Prepare slot index
	var seen [MaxBlades]bool
	for i, b := range basis {
		if int(b.Bitmap) >= size || seen[b.Bitmap] {
			return nil, fmt.Errorf("NewAlgebra %q: blade %q bitmap %04b: %w", name, b.Name, b.Bitmap, ErrBadAlgebra)
		}
		if b.Sign != 1 && b.Sign != -1 {
			return nil, fmt.Errorf("NewAlgebra %q: blade %q sign %d: %w", name, b.Name, b.Sign, ErrBadAlgebra)
		}
		seen[b.Bitmap] = true
		alg.blades[i] = b
		alg.slotOf[b.Bitmap] = uint8(i)
		alg.grade[i] = uint8(b.Grade())
		alg.gradeMask[alg.grade[i]] |= 1 << uint(i)
		alg.full |= 1 << uint(i)
		if b.Bitmap&alg.degenerateBits() != 0 {
			alg.weight |= 1 << uint(i)
		} else {
			alg.bulk |= 1 << uint(i)
		}
	}
	alg.scalarSlot = int(alg.slotOf[0])
	alg.pseudoSlot = int(alg.slotOf[size-1])

	// Stage 3: Execute table construction
	alg.buildProducts()
	alg.buildComplements()
	alg.buildRegressive()
	alg.buildSigns()

	return alg, nil
}

// MustAlgebra is NewAlgebra for package-level variables; it panics on error.
func MustAlgebra(name string, metric []int8, basis []Blade) *Algebra {
	alg, err := NewAlgebra(name, metric, basis)
	if err != nil {
		panic(err)
	}

	return alg
}

// degenerateBits returns the bitmap of generators squaring to 0.
func (alg *Algebra) degenerateBits() uint8 {
	var out uint8
	for k := 0; k < alg.dim; k++ {
		if alg.metric[k] == 0 {
			out |= 1 << uint(k)
		}
	}

	return out
}

// reorderSign is the sign of bringing e_a·e_b (canonical bitmaps) into
// canonical order: (−1)^(number of swaps).
func reorderSign(a, b uint8) int8 {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.OnesCount8(a & b)
		a >>= 1
	}
	if swaps&1 == 0 {
		return 1
	}

	return -1
}

// metricSign returns the product of the squares of the generators in bitmap.
func (alg *Algebra) metricSign(bitmap uint8) int8 {
	s := int8(1)
	for k := 0; k < alg.dim; k++ {
		if bitmap&(1<<uint(k)) != 0 {
			s *= alg.metric[k]
		}
	}

	return s
}

// buildProducts fills the geometric and outer product tables.
func (alg *Algebra) buildProducts() {
	var i, j int
	for i = 0; i < alg.size; i++ {
		bi := alg.blades[i]
		for j = 0; j < alg.size; j++ {
			bj := alg.blades[j]
			c := bi.Bitmap ^ bj.Bitmap
			k := alg.slotOf[c]
			s := bi.Sign * bj.Sign * alg.blades[k].Sign * reorderSign(bi.Bitmap, bj.Bitmap)
			alg.gpr[i][j] = term{slot: k, sign: s * alg.metricSign(bi.Bitmap&bj.Bitmap)}
			if bi.Bitmap&bj.Bitmap == 0 {
				alg.wdg[i][j] = term{slot: k, sign: s}
			} else {
				alg.wdg[i][j] = term{slot: k}
			}
		}
	}
}

// buildComplements derives rcmpl (u ∧ rcmpl(u) = I) and lcmpl (lcmpl(u) ∧ u = I),
// with I the pseudoscalar blade as named in the basis.
func (alg *Algebra) buildComplements() {
	fullBits := uint8(alg.size - 1)
	for i := 0; i < alg.size; i++ {
		k := alg.slotOf[^alg.blades[i].Bitmap&fullBits]
		alg.rcmpl[i] = term{slot: k, sign: alg.wdg[i][k].sign}
		alg.lcmpl[i] = term{slot: k, sign: alg.wdg[k][i].sign}
	}
}

// buildRegressive composes the antiproducts: x ⊙̄ y = lcmpl(rcmpl(x) ⊙ rcmpl(y)).
func (alg *Algebra) buildRegressive() {
	var i, j int
	for i = 0; i < alg.size; i++ {
		ri := alg.rcmpl[i]
		for j = 0; j < alg.size; j++ {
			rj := alg.rcmpl[j]
			alg.rwdg[i][j] = alg.lcmplTerm(ri, rj, alg.wdg[ri.slot][rj.slot])
			alg.rgpr[i][j] = alg.lcmplTerm(ri, rj, alg.gpr[ri.slot][rj.slot])
		}
	}
}

func (alg *Algebra) lcmplTerm(ri, rj, p term) term {
	if p.sign == 0 {
		return term{slot: alg.lcmpl[p.slot].slot}
	}
	l := alg.lcmpl[p.slot]

	return term{slot: l.slot, sign: ri.sign * rj.sign * p.sign * l.sign}
}

// buildSigns fills the grade sign tables and the (anti-)dot metric signs.
func (alg *Algebra) buildSigns() {
	for i := 0; i < alg.size; i++ {
		k := int(alg.grade[i])
		alg.rev[i] = revSign(k)
		alg.rrev[i] = revSign(alg.dim - k)
		alg.grInv[i] = parity(k)
		alg.conj[i] = revSign(k) * parity(k)
		alg.dotSign[i] = alg.metricSign(alg.blades[i].Bitmap)
	}
	for i := 0; i < alg.size; i++ {
		alg.rdotSign[i] = alg.dotSign[alg.rcmpl[i].slot]
	}
}

// revSign is (−1)^(k(k−1)/2).
func revSign(k int) int8 {
	return parity(k * (k - 1) / 2)
}

// parity is (−1)^k.
func parity(k int) int8 {
	if k&1 == 0 {
		return 1
	}

	return -1
}

// Name returns the algebra's name.
func (alg *Algebra) Name() string { return alg.name }

// Dim returns the number of generators.
func (alg *Algebra) Dim() int { return alg.dim }

// Size returns the number of basis blades (2^Dim).
func (alg *Algebra) Size() int { return alg.size }

// Blade returns the named basis blade stored at slot.
func (alg *Algebra) Blade(slot int) Blade { return alg.blades[slot] }

// Grade returns the grade of the blade stored at slot.
func (alg *Algebra) Grade(slot int) int { return int(alg.grade[slot]) }

// GradeMask returns the slots of grade k (empty when k is out of range).
func (alg *Algebra) GradeMask(k int) Mask {
	if k < 0 || k > alg.dim {
		return 0
	}

	return alg.gradeMask[k]
}

// Full returns the mask of all slots.
func (alg *Algebra) Full() Mask { return alg.full }

// EvenMask returns the slots of even grade.
func (alg *Algebra) EvenMask() Mask {
	var m Mask
	for k := 0; k <= alg.dim; k += 2 {
		m |= alg.gradeMask[k]
	}

	return m
}

// OddMask returns the slots of odd grade.
func (alg *Algebra) OddMask() Mask { return alg.full &^ alg.EvenMask() }

// BulkMask returns the slots not containing a degenerate generator.
func (alg *Algebra) BulkMask() Mask { return alg.bulk }

// WeightMask returns the slots containing a degenerate generator.
func (alg *Algebra) WeightMask() Mask { return alg.weight }

// ScalarSlot returns the slot of the scalar blade.
func (alg *Algebra) ScalarSlot() int { return alg.scalarSlot }

// PseudoscalarSlot returns the slot of the pseudoscalar blade.
func (alg *Algebra) PseudoscalarSlot() int { return alg.pseudoSlot }

// Degenerate reports whether any generator squares to 0.
func (alg *Algebra) Degenerate() bool { return alg.degenerated }

// Basis returns the unit multivector of the blade at slot.
func Basis[T Float](alg *Algebra, slot int) MV[T] {
	var out MV[T]
	out.C[slot] = 1
	out.M = 1 << uint(slot)

	return out
}
