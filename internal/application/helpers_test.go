package application

// scriptedSource replays fixed values, wrapping around when exhausted.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.calls%len(s.values)] % n
	s.calls++
	return v
}

func zeroSource() *scriptedSource {
	return &scriptedSource{values: []int{0}}
}
