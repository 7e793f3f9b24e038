package ports

// RandomSource picks piece types. Implementations return a value in [0, n).
type RandomSource interface {
	Intn(n int) int
}
