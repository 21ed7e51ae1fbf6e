package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/holdem-showdown/domain/poker"
	"github.com/luca-patrignani/holdem-showdown/ledger"
)

func renderBanner(out io.Writer) error {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hold", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("em", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, banner)
	return err
}

// renderHand prints the players, the board and the showdown of a finished hand.
func renderHand(out io.Writer, s *poker.Session, outcome poker.Outcome) error {
	var panels []pterm.Panel
	for _, p := range s.Players {
		panels = append(panels, pterm.Panel{Data: printPlayerInfo(p)})
	}
	board := pterm.Panel{Data: printBoardInfo(outcome)}
	winners := getWinnerPanel(s, outcome)

	rendered, err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{board},
		{winners},
	}).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}

func getWinnerPanel(s *poker.Session, outcome poker.Outcome) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	ids := make([]int, 0, len(outcome.Payouts))
	for id := range outcome.Payouts {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	infoString := ""
	for _, id := range ids {
		infoString += printSingleWinnerInfo(s, outcome, id)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(infoString)}
}

func printSingleWinnerInfo(s *poker.Session, outcome poker.Outcome, id int) string {
	idx := s.FindPlayerIndex(id)
	p := s.Players[idx]
	amount := outcome.Payouts[id]
	for _, pot := range outcome.Pots {
		h, ok := pot.Hands[id]
		if !ok || !pot.Contested {
			continue
		}
		cards := make([]string, len(h.Cards))
		for i, c := range h.Cards {
			cards[i] = c.String()
		}
		line := pterm.Sprintf("%s won %d with %s (%s)", pterm.LightCyan(p.Name), amount, h.Category, strings.Join(cards, " "))
		if desc, err := s.DescribeHand(idx); err == nil {
			line += pterm.Sprintf(", %s", desc)
		}
		return line + "\n"
	}
	return pterm.Sprintfln("%s won %d taking down the pot", pterm.LightCyan(p.Name), amount)
}

func printPlayerInfo(p poker.Player) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var active string
	if p.HasFolded {
		active = pterm.LightRed("Folded")
	} else {
		active = pterm.LightGreen("Active")
	}
	hand := pterm.BgGreen.Sprintf("%s - %s", p.Hand[0].String(), p.Hand[1].String())
	return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf("%s\nBankroll: %d\n%s\n", active, p.BankRoll, hand)
}

func printBoardInfo(outcome poker.Outcome) string {
	board := ""
	for _, c := range outcome.Board {
		board += c.String() + " - "
	}
	for i, p := range outcome.Pots {
		board += " Pot" + strconv.Itoa(i) + ": " + strconv.Itoa(int(p.Pot)) + " | "
	}

	return pterm.BgGreen.Sprint("\n" + board + "\n")
}

// renderHistory prints one row per recorded hand.
func renderHistory(out io.Writer, s *poker.Session, history *ledger.Blockchain) error {
	data := pterm.TableData{{"#", "Board", "Winners", "Hand", "Pot", "Deck"}}
	for i, rec := range history.Records() {
		deck := rec.DeckCommitment
		if len(deck) > 12 {
			deck = deck[:12]
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strings.Join(rec.Board, " "),
			strings.Join(winnerNames(s, rec.Winners), ", "),
			rec.Category,
			strconv.Itoa(int(rec.Pot)),
			deck,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, table)
	return err
}

func winnerNames(s *poker.Session, ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if idx := s.FindPlayerIndex(id); idx != -1 {
			names = append(names, s.Players[idx].Name)
		}
	}
	return names
}
