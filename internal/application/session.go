package application

import (
	"fmt"

	"github.com/bnema/tstack/internal/domain"
	"github.com/bnema/tstack/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns one piece queue, one reserve stack and the factory that feeds
// them. It is not safe for concurrent use.
type Session struct {
	id      string
	queue   *domain.PieceQueue
	stack   *domain.ReserveStack
	factory *PieceFactory
	logger  *zap.Logger
	history []Command
}

// NewSession starts a session with an empty stack and a full queue of fresh
// pieces, ids 1..QueueCapacity in creation order.
func NewSession(rng ports.RandomSource, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		id:      uuid.NewString(),
		queue:   domain.NewPieceQueue(),
		stack:   domain.NewReserveStack(),
		factory: NewPieceFactory(rng),
	}
	s.logger = logger.With(zap.String("session", s.id))

	for !s.queue.IsFull() {
		s.queue.Enqueue(s.factory.Generate())
	}

	s.logger.Info("session started", zap.Int("queued", s.queue.Len()))

	return s
}

func (s *Session) ID() string {
	return s.id
}

// Play takes the queue front and refills the queue with a fresh piece.
func (s *Session) Play() (played, generated domain.Piece, err error) {
	played, ok := s.queue.Dequeue()
	if !ok {
		return domain.Piece{}, domain.Piece{}, domain.ErrQueueEmpty
	}

	generated = s.refill()
	return played, generated, nil
}

// Reserve moves the queue front onto the stack and refills the queue.
// An empty queue and a full stack are reported as distinct errors.
func (s *Session) Reserve() (reserved, generated domain.Piece, err error) {
	if s.queue.IsEmpty() {
		return domain.Piece{}, domain.Piece{}, domain.ErrQueueEmpty
	}
	if s.stack.IsFull() {
		return domain.Piece{}, domain.Piece{}, domain.ErrStackFull
	}

	reserved, _ = s.queue.Dequeue()
	s.stack.Push(reserved)
	generated = s.refill()

	return reserved, generated, nil
}

func (s *Session) UseReserved() (domain.Piece, error) {
	used, ok := s.stack.Pop()
	if !ok {
		return domain.Piece{}, domain.ErrStackEmpty
	}

	return used, nil
}

func (s *Session) SwapFrontWithTop() (Swap, error) {
	front, _ := s.queue.Front()
	top, _ := s.stack.Top()

	if err := domain.SwapFrontWithTop(s.queue, s.stack); err != nil {
		return Swap{}, err
	}

	return Swap{Queue: front, Stack: top}, nil
}

func (s *Session) SwapTriple() ([]Swap, error) {
	queued := s.queue.Pieces()
	reserved := s.stack.Pieces()

	if err := domain.SwapTriple(s.queue, s.stack); err != nil {
		return nil, err
	}

	swaps := make([]Swap, 0, len(reserved))
	for i := range reserved {
		// reserved is top-to-bottom; pair queue offset i with stack slot i from the bottom
		swaps = append(swaps, Swap{Queue: queued[i], Stack: reserved[len(reserved)-1-i]})
	}

	return swaps, nil
}

// Execute runs one command and reports its outcome. Quit is a no-op here;
// ending the loop is the caller's job.
func (s *Session) Execute(cmd Command) Result {
	result := Result{Command: cmd}

	if cmd.Valid() && cmd != CommandQuit {
		s.history = append(s.history, cmd)
	}

	switch cmd {
	case CommandQuit:
	case CommandPlay:
		played, generated, err := s.Play()
		result.Err = err
		if err == nil {
			result.Moved, result.Generated = &played, &generated
		}
	case CommandReserve:
		reserved, generated, err := s.Reserve()
		result.Err = err
		if err == nil {
			result.Moved, result.Generated = &reserved, &generated
		}
	case CommandUseReserved:
		used, err := s.UseReserved()
		result.Err = err
		if err == nil {
			result.Moved = &used
		}
	case CommandSwapFront:
		swap, err := s.SwapFrontWithTop()
		result.Err = err
		if err == nil {
			result.Swapped = []Swap{swap}
		}
	case CommandSwapTriple:
		swaps, err := s.SwapTriple()
		result.Err = err
		result.Swapped = swaps
	default:
		result.Err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	s.logResult(result)
	return result
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		SessionID:     s.id,
		Queue:         s.queue.Pieces(),
		Stack:         s.stack.Pieces(),
		QueueCapacity: s.queue.Cap(),
		StackCapacity: s.stack.Cap(),
		Issued:        s.factory.Issued(),
	}
}

func (s *Session) refill() domain.Piece {
	generated := s.factory.Generate()
	s.queue.Enqueue(generated)
	return generated
}

func (s *Session) logResult(result Result) {
	fields := []zap.Field{
		zap.String("command", result.Command.Name()),
		zap.Bool("ok", result.OK()),
		zap.Int("queued", s.queue.Len()),
		zap.Int("reserved", s.stack.Len()),
	}
	if result.Err != nil {
		fields = append(fields, zap.Error(result.Err))
	}

	s.logger.Debug("command executed", fields...)
}
