package blackjack

// Node identifies where the game is in its round lifecycle. The five
// GameOver values are terminal: no command is accepted from them.
type Node int

const (
	Ready Node = iota
	PlayersRound
	PlayersSplitRound
	DealersRound
	GameOverPlayerBusts
	GameOverPlayerWins
	GameOverDealerBusts
	GameOverDealerWins
	GameOverDraw
)

// String returns the node name
func (n Node) String() string {
	switch n {
	case Ready:
		return "ready"
	case PlayersRound:
		return "players_round"
	case PlayersSplitRound:
		return "players_split_round"
	case DealersRound:
		return "dealers_round"
	case GameOverPlayerBusts:
		return "game_over_player_busts"
	case GameOverPlayerWins:
		return "game_over_player_wins"
	case GameOverDealerBusts:
		return "game_over_dealer_busts"
	case GameOverDealerWins:
		return "game_over_dealer_wins"
	case GameOverDraw:
		return "game_over_draw"
	default:
		return "unknown"
	}
}

// Terminal returns true for the five GameOver nodes
func (n Node) Terminal() bool {
	switch n {
	case GameOverPlayerBusts, GameOverPlayerWins, GameOverDealerBusts,
		GameOverDealerWins, GameOverDraw:
		return true
	}
	return false
}

// Outcome returns a human-readable label for a terminal node, or an
// empty string while the game is still running.
func (n Node) Outcome() string {
	switch n {
	case GameOverPlayerBusts:
		return "Player busts. Dealer wins."
	case GameOverPlayerWins:
		return "Player wins!"
	case GameOverDealerBusts:
		return "Dealer busts. Player wins!"
	case GameOverDealerWins:
		return "Dealer wins."
	case GameOverDraw:
		return "Push."
	default:
		return ""
	}
}
