package server

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/blackjack"
)

// Session owns one game per connected client. The engine itself is not
// safe for concurrent commands, so the session serialises them.
type Session struct {
	mu      sync.Mutex
	newGame func() *blackjack.Game
	game    *blackjack.Game
	logger  *log.Logger
}

// NewSession creates a session holding a fresh game
func NewSession(newGame func() *blackjack.Game, logger *log.Logger) *Session {
	return &Session{
		newGame: newGame,
		game:    newGame(),
		logger:  logger.WithPrefix("session"),
	}
}

// Welcome returns the greeting sent on connect: the house rules plus the
// available fixture deck names.
func (s *Session) Welcome() *ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.game.Config()
	return &ServerMessage{
		Type: TypeWelcome,
		Welcome: &Welcome{
			HitSoft17:        cfg.HitSoft17,
			AllowResplitAces: cfg.AllowResplitAces,
			TestDecks:        blackjack.TestDeckNames(),
		},
	}
}

// HandleMessage applies a client command and returns the messages to
// send back: one state message per snapshot the engine appended, so a
// client can replay the dealer's draws at its own pace. Invalid commands
// return an error message and no state change, matching the engine's
// no-op contract.
func (s *Session) HandleMessage(msg ClientMessage) []*ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case TypePlay:
		play, err := blackjack.ParsePlay(msg.Play)
		if err != nil {
			return []*ServerMessage{{Type: TypeError, Error: err.Error()}}
		}

		before := len(s.game.History())
		s.game.Next(play)
		appended := s.game.History()[before:]
		s.logger.Debug("applied play", "play", play, "states", len(appended))

		if len(appended) == 0 {
			// The play was a defined no-op; echo the unchanged state
			appended = []blackjack.State{s.game.State()}
		}

		out := make([]*ServerMessage, len(appended))
		for i, st := range appended {
			out[i] = s.stateMessage(st)
		}
		return out

	case TypeNewRound:
		s.game = s.newGame()
		s.logger.Info("started new round")
		return []*ServerMessage{s.stateMessage(s.game.State())}

	default:
		return []*ServerMessage{{Type: TypeError, Error: "unknown message type"}}
	}
}

// CurrentState returns the current snapshot message
func (s *Session) CurrentState() *ServerMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateMessage(s.game.State())
}

func (s *Session) stateMessage(st blackjack.State) *ServerMessage {
	return &ServerMessage{
		Type:  TypeState,
		State: NewStateSnapshot(st, s.game.Config().AllowResplitAces),
	}
}
