package main

import (
	"fmt"
	"strings"

	"github.com/lox/blackjack/internal/blackjack"
)

// DecksCmd lists the named fixture decks available for --deck
type DecksCmd struct{}

func (c *DecksCmd) Run() error {
	for _, name := range blackjack.TestDeckNames() {
		d, _ := blackjack.TestDeck(name)
		cards := make([]string, 0, d.Size())
		for _, card := range d.Cards() {
			cards = append(cards, card.String())
		}
		fmt.Printf("%-18s %s\n", name, strings.Join(cards, " "))
	}
	return nil
}
