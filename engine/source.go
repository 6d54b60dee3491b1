package engine

import "math/rand/v2"

// PieceSource deals the sequence of piece types a game spawns.
type PieceSource interface {
	Next() PieceType
}

// UniformSource picks each piece independently and uniformly from the seven types.
type UniformSource struct {
	rng *rand.Rand
}

// NewUniformSource returns a deterministic uniform source for the given seed.
func NewUniformSource(seed uint64) *UniformSource {
	return &UniformSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *UniformSource) Next() PieceType {
	return PieceTypes[s.rng.IntN(len(PieceTypes))]
}

// BagSource deals all seven types in a shuffled order before repeating any.
type BagSource struct {
	rng *rand.Rand
	bag []PieceType
}

// NewBagSource returns a deterministic 7-bag source for the given seed.
func NewBagSource(seed uint64) *BagSource {
	return &BagSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bag: make([]PieceType, 0, len(PieceTypes)),
	}
}

func (s *BagSource) Next() PieceType {
	if len(s.bag) == 0 {
		s.bag = append(s.bag[:0], PieceTypes[:]...)
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	p := s.bag[0]
	s.bag = s.bag[1:]
	return p
}

// RandomPiece returns a uniformly chosen piece at the spawn point, using the
// process-wide random generator.
func RandomPiece() Piece {
	return NewPiece(PieceTypes[rand.IntN(len(PieceTypes))])
}
