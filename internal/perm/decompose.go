package perm

import "golang.org/x/exp/slices"

type link struct {
	parent Matrix
	factor int // -1 at the root
}

// Decompose expresses m as a product of factors, returned as factor indexes
// in application order. It grows one frontier from m through factor inverses
// and one from the identity through factors until they meet, so the result
// has the fewest factors possible. ok is false if m is not generated by
// factors.
func (m Matrix) Decompose(factors []Matrix) (seq []int, ok bool) {
	if m.IsIdentity() {
		return []int{}, true
	}
	for i, f := range factors {
		if f == m {
			return []int{i}, true
		}
	}

	inverses := make([]Matrix, len(factors))
	for i, f := range factors {
		inverses[i] = f.Inverse()
	}

	id := Identity(m.Size())
	fwd := map[Matrix]link{m: {factor: -1}}
	bwd := map[Matrix]link{id: {factor: -1}}
	fwdLayer := []Matrix{m}
	bwdLayer := []Matrix{id}

	for len(fwdLayer) > 0 || len(bwdLayer) > 0 {
		forward := len(bwdLayer) == 0 || (len(fwdLayer) > 0 && len(fwdLayer) <= len(bwdLayer))
		var next []Matrix
		if forward {
			for _, x := range fwdLayer {
				for i, f := range inverses {
					y := x.Multiply(f)
					if _, seen := fwd[y]; seen {
						continue
					}
					fwd[y] = link{parent: x, factor: i}
					if _, hit := bwd[y]; hit {
						return joinPaths(fwd, bwd, y), true
					}
					next = append(next, y)
				}
			}
			fwdLayer = next
		} else {
			for _, x := range bwdLayer {
				for i, f := range factors {
					y := x.Multiply(f)
					if _, seen := bwd[y]; seen {
						continue
					}
					bwd[y] = link{parent: x, factor: i}
					if _, hit := fwd[y]; hit {
						return joinPaths(fwd, bwd, y), true
					}
					next = append(next, y)
				}
			}
			bwdLayer = next
		}
	}
	return nil, false
}

// joinPaths rebuilds m = b1..bn * fk..f1 where the backward side reached the
// meeting point through b1..bn and the forward side through f1^-1..fk^-1.
func joinPaths(fwd, bwd map[Matrix]link, meet Matrix) []int {
	var seq []int
	for x := meet; ; {
		l := bwd[x]
		if l.factor < 0 {
			break
		}
		seq = slices.Insert(seq, 0, l.factor)
		x = l.parent
	}
	for x := meet; ; {
		l := fwd[x]
		if l.factor < 0 {
			break
		}
		seq = append(seq, l.factor)
		x = l.parent
	}
	return seq
}
