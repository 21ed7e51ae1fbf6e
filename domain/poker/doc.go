// Package poker implements the hand evaluation and showdown resolution of a
// Texas Hold'em style game, together with the small table loop that feeds it.
//
// # Hand Evaluation
//
// Classify maps 5 cards to one of ten HandCategory values, checked in a fixed
// priority order. BestHand picks the strongest of the 21 five-card combinations
// of 2 pocket cards and 5 community cards. Aces are valued 1: A-2-3-4-5 is a
// straight, an unsuited 10-J-Q-K-A is not.
//
// # Showdown
//
// Resolve compares the best hands of the players still in a pot, applies the
// category tie-breaks (kickers, pair/trip/quad ranks) and reports every player
// sharing the best hand, so a pot can be split. ResolveStandard does the same
// with a full 7-card evaluator.
//
// # Game Flow
//
// A Session plays hands through PreFlop → Flop → Turn → River → Showdown.
// Start shuffles and deals, Apply records bets and folds, NextRound deals the
// community cards and FinishRound resolves the main pot and the side pots and
// pays the winners.
package poker
