package blackjack

import (
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// Config controls house rules and deck setup. It is fixed at game
// construction and immutable afterward.
type Config struct {
	// HitSoft17 makes the dealer draw on a soft 17 (standard casino rule)
	HitSoft17 bool

	// AllowResplitAces permits splitting a hand that itself came from
	// splitting Aces
	AllowResplitAces bool

	// InitialDeck, when set, is used instead of a fresh shuffle. Used for
	// deterministic play against the named fixture decks.
	InitialDeck *deck.Deck

	// Seed drives the shuffle when no InitialDeck is given; zero means
	// seed from the clock
	Seed int64
}

// DefaultConfig returns the standard house rules: dealer hits soft 17,
// no resplitting of aces, fresh shuffled deck.
func DefaultConfig() Config {
	return Config{HitSoft17: true}
}

// Game drives a single blackjack round as a state machine. Each accepted
// command appends a new immutable State to the history; invalid commands
// in any node are defined no-ops that return the current state unchanged.
// The dealer's turn runs automatically whenever the player's turn
// concludes.
//
// Game is not safe for concurrent use: one interactive session owns one
// Game at a time. The State snapshots it produces are immutable and may
// be shared freely.
type Game struct {
	cfg     Config
	history []State
}

// New creates a game in the Ready node, holding a fresh shuffled deck or
// the configured deterministic deck.
func New(cfg Config) *Game {
	var d deck.Deck
	if cfg.InitialDeck != nil {
		d = cfg.InitialDeck.Clone()
	} else {
		rng := randutil.Auto()
		if cfg.Seed != 0 {
			rng = randutil.New(cfg.Seed)
		}
		d = deck.Shuffle(deck.New(), rng)
	}

	initial := NewState(Ready, NewPlayersHand(nil), NewDealersHand(nil), d)
	return &Game{
		cfg:     cfg,
		history: []State{initial},
	}
}

// Config returns the game's rule configuration
func (g *Game) Config() Config {
	return g.cfg
}

// State returns the current snapshot
func (g *Game) State() State {
	return g.history[len(g.history)-1]
}

// History returns every snapshot produced so far, oldest first. The
// initial Ready state is always the first element.
func (g *Game) History() []State {
	history := make([]State, len(g.history))
	copy(history, g.history)
	return history
}

// CanSplit reports whether splitting is legal in the current state under
// this game's rules
func (g *Game) CanSplit() bool {
	return g.State().CanSplit(g.cfg.AllowResplitAces)
}

// Next applies a player command and returns the resulting snapshot. A
// command not valid for the current node leaves the game unchanged.
func (g *Game) Next(play Play) State {
	current := g.State()

	switch current.Node() {
	case Ready:
		if play == Deal {
			g.deal(current)
		}

	case PlayersRound:
		switch play {
		case Hit:
			g.playersHit(current)
		case Stay:
			g.push(DealersRound, current.Players(), current.Dealer(), current.Deck())
			g.playDealerTurn()
		case Split:
			g.playersSplit(current)
		}

	case PlayersSplitRound:
		switch play {
		case Hit:
			g.splitRoundHit(current)
		case Stay:
			g.splitRoundStay(current)
		case Split:
			g.playersSplit(current)
		}

	case DealersRound:
		// Entered and exited only via the internal dealer auto-play; no
		// player command is accepted here.
	}

	return g.State()
}

// deal starts the round: two cards each, interleaved player, dealer,
// player, dealer. A natural 21 ends the round immediately, the player's
// taking precedence.
func (g *Game) deal(current State) {
	d := current.Deck()
	playerCards := []deck.Card{dealOne(&d)}
	dealerCards := []deck.Card{dealOne(&d)}
	playerCards = append(playerCards, dealOne(&d))
	dealerCards = append(dealerCards, dealOne(&d))

	node := PlayersRound
	if Total(playerCards) == 21 {
		node = GameOverPlayerWins
	} else if Total(dealerCards) == 21 {
		node = GameOverDealerWins
	}

	g.push(node, NewPlayersHand(playerCards), NewDealersHand(dealerCards), d)
}

func (g *Game) playersHit(current State) {
	d := current.Deck()
	players := current.Players()
	players.AddToActive(dealOne(&d))

	node := PlayersRound
	if players.ActiveBusted() {
		node = GameOverPlayerBusts
	}
	g.push(node, players, current.Dealer(), d)
}

// playersSplit handles Split in both the first round and the split
// round. An illegal split is a no-op. Splitting Aces completes both
// hands immediately; if that finishes the player's whole turn the dealer
// plays out, otherwise play moves to the next open hand.
func (g *Game) playersSplit(current State) {
	if !current.CanSplit(g.cfg.AllowResplitAces) {
		return
	}

	d := current.Deck()
	players := current.Players()
	splitAces := players.ActiveCards()[0].Rank == deck.Ace

	players.Split(dealOne(&d), dealOne(&d))

	if !splitAces {
		g.push(PlayersSplitRound, players, current.Dealer(), d)
		return
	}

	switch {
	case players.AllBusted():
		g.push(GameOverPlayerBusts, players, current.Dealer(), d)
	case players.AllComplete():
		g.push(DealersRound, players, current.Dealer(), d)
		g.playDealerTurn()
	default:
		players.AdvanceToNextIncomplete()
		g.push(PlayersSplitRound, players, current.Dealer(), d)
	}
}

func (g *Game) splitRoundHit(current State) {
	d := current.Deck()
	players := current.Players()

	players.AddToActive(dealOne(&d))
	if players.ActiveBusted() {
		players.MarkActiveComplete()
		players.AdvanceToNextIncomplete()
	}

	g.settleSplitRound(players, current.Dealer(), d)
}

func (g *Game) splitRoundStay(current State) {
	players := current.Players()
	players.MarkActiveComplete()
	players.AdvanceToNextIncomplete()

	g.settleSplitRound(players, current.Dealer(), current.Deck())
}

// settleSplitRound applies the common completion checks after any split
// round action
func (g *Game) settleSplitRound(players PlayersHand, dealer DealersHand, d deck.Deck) {
	switch {
	case players.AllBusted():
		g.push(GameOverPlayerBusts, players, dealer, d)
	case players.AllComplete():
		g.push(DealersRound, players, dealer, d)
		g.playDealerTurn()
	default:
		g.push(PlayersSplitRound, players, dealer, d)
	}
}

// playDealerTurn runs the house policy to completion: hit below 17, hit
// a soft 17 when configured, otherwise stand and compare totals. One
// state is appended per card drawn plus one for the final comparison, so
// observers can replay the dealer's reveals. The loop always reaches a
// terminal node: every iteration either draws (bust is detected at once)
// or stands into a comparison.
func (g *Game) playDealerTurn() {
	for g.State().Node() == DealersRound {
		current := g.State()
		dealer := current.Dealer()
		value := dealer.Value()

		mustHit := value.Total < 17 ||
			(value.Total == 17 && value.IsSoft && g.cfg.HitSoft17)

		// Unreachable with a full deck, but a short injected deck must not
		// leave the dealer drawing forever: stand once the deck runs dry.
		if current.DeckRemaining() == 0 {
			mustHit = false
		}

		if mustHit {
			d := current.Deck()
			dealer.Add(dealOne(&d))

			node := DealersRound
			if dealer.Total() > 21 {
				node = GameOverDealerBusts
			}
			g.push(node, current.Players(), dealer, d)
			continue
		}

		playerTotal := current.Players().ActiveTotal()
		var node Node
		switch {
		case playerTotal > value.Total:
			node = GameOverPlayerWins
		case value.Total > playerTotal:
			node = GameOverDealerWins
		default:
			node = GameOverDraw
		}
		g.push(node, current.Players(), current.Dealer(), current.Deck())
	}
}

func (g *Game) push(node Node, players PlayersHand, dealer DealersHand, d deck.Deck) {
	g.history = append(g.history, NewState(node, players, dealer, d))
}

// dealOne draws the top card. Deck exhaustion mid-round is not reachable
// with a standard 52-card deck at single-player depth; with a short
// injected deck the zero Card (scoring nothing) stands in for the
// missing draw.
func dealOne(d *deck.Deck) deck.Card {
	cards := d.Deal(1)
	if len(cards) == 0 {
		return deck.Card{}
	}
	return cards[0]
}
