package engine_test

import "github.com/plus3/blockfall/engine"

// sequence deals a fixed list of piece types, cycling when exhausted.
type sequence struct {
	types []engine.PieceType
	next  int
}

func deal(types ...engine.PieceType) *sequence {
	return &sequence{types: types}
}

func (s *sequence) Next() engine.PieceType {
	p := s.types[s.next%len(s.types)]
	s.next++
	return p
}
