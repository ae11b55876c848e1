package numtheory

import "math/big"

// Convergent is a fully reduced p/q approximation of a ratio, produced by
// ConvergentIterator.
type Convergent struct {
	P *big.Int
	Q *big.Int
}

// CFIterator lazily yields the continued-fraction coefficients
// [a0; a1, a2, ...] of numerator/denominator via the Euclidean recurrence
// q = num / den; (num, den) = (den, num - q*den). The sequence is finite,
// ending when the denominator reaches zero, and its length is bounded by
// the number of Euclidean steps, O(log min(num, den)).
type CFIterator struct {
	num *big.Int
	den *big.Int
}

// ContinuedFraction returns a fresh coefficient iterator for
// numerator/denominator. Iterators are cheap value objects; obtaining a
// new one restarts the expansion.
func ContinuedFraction(numerator, denominator *big.Int) *CFIterator {
	return &CFIterator{
		num: new(big.Int).Set(numerator),
		den: new(big.Int).Set(denominator),
	}
}

// Next returns the next coefficient, or (nil, false) once the expansion
// has terminated.
func (it *CFIterator) Next() (*big.Int, bool) {
	if it.den.Sign() == 0 {
		return nil, false
	}
	q := new(big.Int).Quo(it.num, it.den)
	rem := new(big.Int).Sub(it.num, new(big.Int).Mul(q, it.den))
	it.num, it.den = it.den, rem
	return q, true
}

// ConvergentIterator lazily yields the convergents p_i/q_i of a
// continued-fraction expansion using the standard two-term recurrence
// p_i = a_i*p_{i-1} + p_{i-2}, q_i = a_i*q_{i-1} + q_{i-2}.
type ConvergentIterator struct {
	cf           *CFIterator
	pPrev, pCurr *big.Int
	qPrev, qCurr *big.Int
}

// Convergents returns a fresh convergent iterator for
// numerator/denominator.
func Convergents(numerator, denominator *big.Int) *ConvergentIterator {
	return &ConvergentIterator{
		cf:    ContinuedFraction(numerator, denominator),
		pPrev: big.NewInt(0),
		pCurr: big.NewInt(1),
		qPrev: big.NewInt(1),
		qCurr: big.NewInt(0),
	}
}

// Next returns the next convergent, or (Convergent{}, false) once the
// underlying coefficient sequence has terminated.
func (it *ConvergentIterator) Next() (Convergent, bool) {
	a, ok := it.cf.Next()
	if !ok {
		return Convergent{}, false
	}

	p := new(big.Int).Mul(a, it.pCurr)
	p.Add(p, it.pPrev)
	q := new(big.Int).Mul(a, it.qCurr)
	q.Add(q, it.qPrev)

	it.pPrev, it.pCurr = it.pCurr, p
	it.qPrev, it.qCurr = it.qCurr, q

	return Convergent{P: p, Q: q}, true
}
