package application

// Script is a recorded or hand-written sequence of commands. Replaying it
// against a session built from the same seed reproduces the same board.
type Script struct {
	Seed     int64
	Commands []Command
}

// Replay executes commands in order and stops after the first quit.
func (s *Session) Replay(commands []Command) []Result {
	results := make([]Result, 0, len(commands))
	for _, cmd := range commands {
		results = append(results, s.Execute(cmd))
		if cmd == CommandQuit {
			break
		}
	}

	return results
}

// History returns the commands executed so far, quit excluded.
func (s *Session) History() []Command {
	history := make([]Command, len(s.history))
	copy(history, s.history)
	return history
}
