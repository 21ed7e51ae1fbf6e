package poker

import "errors"

var (
	// ErrNoPlayers is returned when a pot is resolved without any player.
	ErrNoPlayers = errors.New("no players to resolve")
	// ErrFaceDownCard is returned when a showdown involves a card that was never dealt.
	ErrFaceDownCard = errors.New("face down or invalid card at showdown")
	// ErrIncompleteBoard is returned when a showdown is requested before the river.
	ErrIncompleteBoard = errors.New("board must hold 5 cards at showdown")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrUnknownAction     = errors.New("unknown action")
)
