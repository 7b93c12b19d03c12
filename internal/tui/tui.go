// Package tui is the interactive terminal table for blackjack, built on
// Bubble Tea. It drives a Game through key presses and replays the
// engine's appended snapshots one at a time, so the dealer's draws
// appear card by card instead of all at once.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// revealDelay is the pause between dealer snapshot reveals
const revealDelay = 600 * time.Millisecond

// Model is the Bubble Tea model for a blackjack session
type Model struct {
	newGame func() *blackjack.Game
	game    *blackjack.Game
	logger  *log.Logger
	clock   quartz.Clock

	// shown lags the engine state while dealer reveals are pending
	shown   blackjack.State
	pending []blackjack.State

	logViewport viewport.Model
	gameLog     []string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// revealMsg advances the reveal queue by one snapshot
type revealMsg struct{}

// New creates a TUI model. newGame is called once per round so that a
// fixture deck or fixed seed replays identically on each new round.
func New(newGame func() *blackjack.Game, logger *log.Logger, clock quartz.Clock) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	game := newGame()
	return &Model{
		newGame:     newGame,
		game:        game,
		logger:      logger.WithPrefix("tui"),
		clock:       clock,
		shown:       game.State(),
		logViewport: vp,
		gameLog:     []string{"Let's play some blackjack! Press d to deal."},
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = max(msg.Width-4, 1)
		m.logViewport.Height = max(msg.Height-tableHeight, 1)
		m.initialized = true
		return m, nil

	case revealMsg:
		return m, m.advanceReveal()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// tableHeight reserves rows for the table pane above the log viewport
const tableHeight = 14

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	}

	// Ignore input while dealer reveals are playing out
	if len(m.pending) > 0 {
		return m, nil
	}

	switch msg.String() {
	case "d":
		if m.shown.Node() == blackjack.Ready {
			return m, m.apply(blackjack.Deal)
		}
	case "n":
		if m.shown.Over() {
			m.game = m.newGame()
			m.shown = m.game.State()
			m.addLog("New round. Press d to deal.")
			return m, nil
		}
	case "h":
		return m, m.apply(blackjack.Hit)
	case "s":
		return m, m.apply(blackjack.Stay)
	case "p":
		if m.game.CanSplit() {
			return m, m.apply(blackjack.Split)
		}
	}

	return m, nil
}

// apply sends a play to the engine and queues any extra appended
// snapshots (dealer auto-play) for timed reveal
func (m *Model) apply(play blackjack.Play) tea.Cmd {
	before := len(m.game.History())
	m.game.Next(play)
	appended := m.game.History()[before:]

	if len(appended) == 0 {
		return nil
	}

	m.logger.Debug("applied play", "play", play, "states", len(appended))
	m.show(appended[0], play)

	m.pending = appended[1:]
	if len(m.pending) > 0 {
		return m.scheduleReveal()
	}
	return nil
}

func (m *Model) advanceReveal() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	m.describeDealerStep(m.shown, next)
	m.shown = next

	if len(m.pending) > 0 {
		return m.scheduleReveal()
	}
	return nil
}

// scheduleReveal waits one reveal delay on the injected clock, so tests
// can drive reveals through a mock clock
func (m *Model) scheduleReveal() tea.Cmd {
	return func() tea.Msg {
		timer := m.clock.NewTimer(revealDelay)
		<-timer.C
		return revealMsg{}
	}
}

func (m *Model) show(st blackjack.State, play blackjack.Play) {
	prev := m.shown
	m.shown = st

	switch play {
	case blackjack.Deal:
		active := st.ActiveHand()
		m.addLog(fmt.Sprintf("Dealt. You have %s (%d), dealer shows %s.",
			formatCards(active.Cards), active.Total(), formatCard(upCard(st))))
	case blackjack.Hit:
		m.addLog(fmt.Sprintf("You draw %s.", lastCardDrawn(prev, st)))
	case blackjack.Stay:
		m.addLog("You stand.")
	case blackjack.Split:
		if st.HandCount() > prev.HandCount() {
			m.addLog(fmt.Sprintf("You split. Now playing %d hands.", st.HandCount()))
		}
	}

	if st.Over() {
		m.addLog(st.Outcome())
	}
}

func (m *Model) describeDealerStep(prev, next blackjack.State) {
	if len(next.DealerCards()) > len(prev.DealerCards()) {
		drawn := next.DealerCards()[len(next.DealerCards())-1]
		m.addLog(fmt.Sprintf("Dealer draws %s (%d).", formatCard(drawn),
			blackjack.Total(next.DealerCards())))
	}
	if next.Over() {
		m.addLog(next.Outcome())
	}
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(LogStyle.Render(strings.Join(m.gameLog, "\n")))
	m.logViewport.GotoBottom()
}

// View renders the table pane above the session log
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "Loading..."
	}

	header := HeaderStyle.Render(" ♠ ♥ Blackjack ♦ ♣ ")
	table := TableStyle.Width(max(m.width-2, 20)).Render(m.renderTable())
	help := HelpStyle.Render(m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		table,
		help,
		m.logViewport.View(),
	)
}

func (m *Model) renderTable() string {
	st := m.shown
	var b strings.Builder

	if st.Node() == blackjack.Ready {
		b.WriteString("Shuffled deck ready. Press d to deal.")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Dealer: %s\n", m.renderDealer(st)))
	b.WriteString("\n")

	hands := st.PlayerHands()
	for i, hand := range hands {
		label := "Player"
		if len(hands) > 1 {
			label = fmt.Sprintf("Hand %d", i+1)
		}
		line := fmt.Sprintf("%s: %s (%d)", label, formatCards(hand.Cards), hand.Total())

		switch {
		case len(hands) > 1 && i == st.ActiveIndex() && !st.Over():
			line = ActiveHandStyle.Render(line + "  ← active")
		case hand.Complete && len(hands) > 1:
			line = DoneHandStyle.Render(line + "  [done]")
		}
		b.WriteString(line + "\n")
	}

	if st.Over() {
		b.WriteString("\n" + OutcomeStyle.Render(st.Outcome()))
	}

	b.WriteString(fmt.Sprintf("\n%d cards left in the deck", st.DeckRemaining()))
	return b.String()
}

// renderDealer hides the dealer's hole card until the player's turn ends
func (m *Model) renderDealer(st blackjack.State) string {
	cards := st.DealerCards()
	holeHidden := st.Node() == blackjack.PlayersRound || st.Node() == blackjack.PlayersSplitRound

	if holeHidden {
		parts := []string{HiddenCardStyle.Render("??")}
		for _, c := range cards[1:] {
			parts = append(parts, formatCard(c))
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprintf("%s (%d)", formatCards(cards), blackjack.Total(cards))
}

func (m *Model) renderHelp() string {
	st := m.shown
	switch {
	case len(m.pending) > 0:
		return "dealer playing..."
	case st.Node() == blackjack.Ready:
		return "d: deal • q: quit"
	case st.Over():
		return "n: new round • q: quit"
	case m.game.CanSplit():
		return "h: hit • s: stay • p: split • q: quit"
	default:
		return "h: hit • s: stay • q: quit"
	}
}

// upCard is the dealer's face-up card (second dealt)
func upCard(st blackjack.State) deck.Card {
	cards := st.DealerCards()
	if len(cards) < 2 {
		return deck.Card{}
	}
	return cards[1]
}

// lastCardDrawn reports the card the active hand just drew. The drawing
// hand is prev's active hand: a split-round bust advances next's index
// past it.
func lastCardDrawn(prev, next blackjack.State) string {
	hand := next.PlayerHands()[prev.ActiveIndex()]
	card := hand.Cards[len(hand.Cards)-1]
	return fmt.Sprintf("%s (%d)", formatCard(card), hand.Total())
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = formatCard(c)
	}
	return strings.Join(parts, " ")
}

func formatCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return WhiteCardStyle.Render(c.String())
}
