// Package states implements the application state machine.
package states

// Phase identifies an application state.
type Phase uint8

const (
	Loading Phase = iota
	Playing
	GameOver
	Win
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// State is one application state (loading, playing, game over, win).
type State interface {
	// Phase identifies the state.
	Phase() Phase

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every tick.
	Update(dt float64) error
}

// Manager manages state transitions. Changes are scheduled and applied at
// the start of the next Update, so a state never exits while it is running.
type Manager struct {
	current State
	next    State
	done    bool
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change.
func (m *Manager) Change(next State) {
	m.next = next
}

// Finish schedules the end of the run. The current state exits on the next
// Update and none replaces it.
func (m *Manager) Finish() {
	m.done = true
}

// Done reports whether the run has ended.
func (m *Manager) Done() bool {
	return m.done && m.current == nil
}

// Update processes state changes and updates the current state.
func (m *Manager) Update(dt float64) error {
	if m.done {
		return m.shutdown()
	}

	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

func (m *Manager) shutdown() error {
	m.next = nil
	if m.current == nil {
		return nil
	}
	cur := m.current
	m.current = nil
	return cur.Exit()
}
