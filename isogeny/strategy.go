package isogeny

// StrategyAlice, StrategyBob and StrategyEve are the precomputed
// isogeny-tree traversal strategies for the ℓ=4 (Alice), ℓ=3 (Bob) and ℓ=5
// (Eve) walks, balancing scalar-multiplication depth against isogeny
// evaluations the way SIDH-style implementations always do. Entry k at
// tree depth `row` tells the walker how many additional multiplications by
// ℓ (pairs of doublings for ℓ=4, triplings, quintuplings) to apply before
// taking the next isogeny step.
var StrategyAlice = []uint32{
	0, 1, 1, 2, 2, 2, 3, 4, 4, 4, 4, 5, 5, 6, 7, 8, 8, 9, 9, 9, 9,
	9, 9, 9, 12, 11, 12, 12, 13, 14, 15, 16, 16, 16, 16, 16, 16, 17, 17, 18, 18, 17,
	21, 17, 18, 21, 20, 21, 21, 21, 21, 21, 22, 25, 25, 25, 26, 27, 28, 28, 29, 30,
	31, 32, 32, 32, 32, 32, 32, 32, 33, 33, 33, 35, 36, 36, 33, 36, 35, 36, 36, 35,
	36, 36, 37, 38, 38, 39, 40, 41, 42, 38, 39, 40, 41, 42, 40, 46, 42, 43, 46, 46,
	46, 46, 48, 48, 48, 48, 49, 49, 48, 53, 54, 51, 52, 53, 54, 55, 56, 57, 58, 59,
	59, 60, 62, 62, 63, 64, 64, 64,
}

var StrategyBob = []uint32{
	0, 1, 1, 2, 2, 2, 3, 3, 4, 4, 4, 5, 5, 5, 6, 7, 8, 8, 8, 8, 9, 9, 9, 9, 9, 10,
	12, 12, 12, 12, 12, 12, 13, 14, 14, 15, 16, 16, 16, 16, 16, 17, 16, 16, 17, 19,
	19, 20, 21, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 24, 24, 25, 27, 27, 28, 28,
	29, 28, 29, 28, 28, 28, 30, 28, 28, 28, 29, 30, 33, 33, 33, 33, 34, 35, 37, 37,
	37, 37, 38, 38, 37, 38, 38, 38, 38, 38, 39, 43, 38, 38, 38, 38, 43, 40, 41, 42,
	43, 48, 45, 46, 47, 47, 48, 49, 49, 49, 50, 51, 50, 49, 49, 49, 49, 51, 49, 53,
	50, 51, 50, 51, 51, 51, 52, 55, 55, 55, 56, 56, 56, 56, 56, 58, 58, 61, 61, 61,
	63, 63, 63, 64, 65, 65, 65,
}

var StrategyEve = []uint32{
	0, 1, 1, 1, 2, 2, 2, 3, 3, 4, 3, 4, 4, 5, 5, 6, 5, 6, 6, 6, 7, 8, 8, 9, 9, 9, 9,
	9, 9, 9, 12, 10, 12, 12, 12, 12, 13, 12, 13, 13, 13, 14, 14, 14, 14, 18, 14, 18,
	15, 17, 18, 18, 18, 18, 18, 18, 18, 18, 19, 19, 19, 20, 21, 22, 22, 22, 22, 23,
	23, 26, 23, 26, 23, 23, 26, 24, 26, 26, 27, 28, 27, 27, 28, 27, 28, 27, 28, 28,
	28, 28, 29, 29, 31, 31, 31, 34, 34, 34, 34, 34, 34, 34, 34, 34, 34,
}

// MaxAlice, MaxBob and MaxEve are the isogeny-tree depths (number of
// degree-ℓ isogeny steps) of each participant's walk.
const (
	MaxAlice = 130
	MaxBob   = 153
	MaxEve   = 105
)

// MaxAuxPointsAlice, MaxAuxPointsBob and MaxAuxPointsEve bound the auxiliary
// point stack each walk needs to hold mid-traversal.
const (
	MaxAuxPointsAlice = 8
	MaxAuxPointsBob   = 10
	MaxAuxPointsEve   = 11
)

// AuxStack is the bounded stack of (point, tree-index) pairs a strategy
// walk pushes saved points onto while descending toward the next kernel
// point of order ℓ, mirroring the pts/pts_index parallel arrays of the
// reference traversal.
type AuxStack struct {
	Points  []Point
	Indices []int
}

// NewAuxStack allocates a stack with the given capacity.
func NewAuxStack(capacity int) *AuxStack {
	return &AuxStack{
		Points:  make([]Point, 0, capacity),
		Indices: make([]int, 0, capacity),
	}
}

// Push saves pt at tree index idx.
func (s *AuxStack) Push(pt Point, idx int) {
	s.Points = append(s.Points, pt)
	s.Indices = append(s.Indices, idx)
}

// Pop removes and returns the most recently pushed (point, index) pair.
func (s *AuxStack) Pop() (Point, int) {
	n := len(s.Points) - 1
	pt, idx := s.Points[n], s.Indices[n]
	s.Points = s.Points[:n]
	s.Indices = s.Indices[:n]
	return pt, idx
}

// Len reports how many pairs remain on the stack.
func (s *AuxStack) Len() int {
	return len(s.Points)
}
