package vm

import "github.com/JohnCGriffin/overflow"

// combinations enumerates every tuple of w positions in an array of length n, in odometer
// order, with repetition. When w is 0 there is exactly one tuple, the empty one.
type combinations struct {
	n, w    int
	current []int
	started bool
	done    bool
}

func newCombinations(n, w int) *combinations {
	return &combinations{n: n, w: w, current: make([]int, w)}
}

func (c *combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		if c.w > 0 && c.n == 0 {
			c.done = true
			return false
		}
		return true
	}
	for i := c.w - 1; i >= 0; i-- {
		c.current[i]++
		if c.current[i] < c.n {
			return true
		}
		c.current[i] = 0
	}
	c.done = true
	return false
}

// Current is only valid until the next call to Next.
func (c *combinations) Current() []int {
	return c.current
}

// countCombinations returns n to the power w, and false if that doesn't fit in an int.
func countCombinations(n, w int) (int, bool) {
	result := 1
	for range w {
		var ok bool
		if result, ok = overflow.Mul(result, n); !ok {
			return 0, false
		}
	}
	return result, true
}
