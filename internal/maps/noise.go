package maps

import (
	"math"
	"math/rand"
)

// simplex is 2D simplex noise over a seed-shuffled permutation table.
type simplex struct {
	perm [512]int
}

func newSimplex(seed int64) *simplex {
	n := &simplex{}
	r := rand.New(rand.NewSource(seed))

	p := r.Perm(256)
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// grad2 computes the dot product of a gradient vector and (x, y).
func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

const (
	skew2   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// at returns noise in [-1, 1].
func (n *simplex) at(x, y float64) float64 {
	s := (x + y) * skew2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * unskew2
	x0 := x - (i - t)
	y0 := y - (j - t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1.0 + 2.0*unskew2
	y2 := y0 - 1.0 + 2.0*unskew2

	ii := int(i) & 255
	jj := int(j) & 255

	corner := func(dx, dy float64, hash int) float64 {
		t := 0.5 - dx*dx - dy*dy
		if t <= 0 {
			return 0
		}
		t *= t
		return t * t * grad2(hash, dx, dy)
	}

	sum := corner(x0, y0, n.perm[ii+n.perm[jj]]) +
		corner(x1, y1, n.perm[ii+i1+n.perm[jj+j1]]) +
		corner(x2, y2, n.perm[ii+1+n.perm[jj+1]])
	return 70.0 * sum
}

// fractal sums octaves of noise and normalizes the result to [0, 1].
func (n *simplex) fractal(x, y, freq float64, octaves int) float64 {
	var total, norm float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		total += n.at(x*freq, y*freq) * amp
		norm += amp
		freq *= 2
		amp *= 0.5
	}
	return (total/norm + 1) / 2
}
