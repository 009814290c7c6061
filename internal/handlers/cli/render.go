package cli

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/services/tracker"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true)

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))
)

func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", 100*p)
}

func formatEV(ev float64) string {
	s := fmt.Sprintf("%+.4f", ev)
	if ev > 0 {
		return positiveStyle.Render(s)
	}
	return negativeStyle.Render(s)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

// renderDisplay shows the odds board for the next round
func renderDisplay(session *tracker.Session, output *tracker.GetDisplayOutput) string {
	board := newTable("Bet", "Payout", "Win %", "EV / unit")
	for _, side := range models.BetSides() {
		board.Row(
			string(side),
			fmt.Sprintf("%g:1", output.Payouts.For(side)),
			formatPercent(output.Probabilities.For(side)),
			formatEV(output.EVs.For(side)),
		)
	}

	ranks := newTable("Rank", "Left")
	for i, n := range output.RemainingByRank {
		ranks.Row(models.Rank(i+1).String(), fmt.Sprintf("%d", n))
	}

	best := fmt.Sprintf("best bet: %s", output.BestBet)
	if output.BestBetPositive {
		best = positiveStyle.Render(best + " (player edge)")
	} else {
		best = infoStyle.Render(best + " (no positive EV)")
	}

	info := session.Info()
	shoeLine := infoStyle.Render(fmt.Sprintf("%d-deck shoe   rounds dealt: %d", info.DeckCount, session.Rounds()))
	summary := infoStyle.Render(fmt.Sprintf("cards left: %d   bankroll: %s   tie rule: %s",
		output.RemainingCards, formatMoney(output.Bankroll), output.TieRule))

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("Dragon vs Tiger"),
		shoeLine,
		summary,
		lipgloss.JoinHorizontal(lipgloss.Top, board.String(), " ", ranks.String()),
		best,
	)
}

// renderExhausted explains why no numbers can be shown
func renderExhausted(remaining int) string {
	return infoStyle.Render(fmt.Sprintf("only %d card(s) left in the shoe, not enough for a round. Use reset to start a new shoe.", remaining))
}

// renderSettled summarises a just-settled round
func renderSettled(output *tracker.SubmitRoundOutput) string {
	entry := output.Entry
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s vs %s %s -> %s",
		"Dragon", entry.DragonCard, "Tiger", entry.TigerCard, entry.Result)

	if entry.BetSide != models.BetSideNone && entry.BetAmount > 0 {
		change := formatMoney(entry.BankrollDelta)
		if entry.BankrollDelta > 0 {
			change = positiveStyle.Render("+" + change)
		} else if entry.BankrollDelta < 0 {
			change = negativeStyle.Render(change)
		}
		fmt.Fprintf(&b, "   bet %s %s: %s, bankroll %s",
			entry.BetSide, formatMoney(entry.BetAmount), change, formatMoney(entry.BankrollAfter))
	}

	for _, missing := range []struct {
		found bool
		label string
		card  models.Card
	}{
		{output.DragonFound, "Dragon", entry.DragonCard},
		{output.TigerFound, "Tiger", entry.TigerCard},
	} {
		if !missing.found {
			fmt.Fprintf(&b, "\n%s", errorStyle.Render(fmt.Sprintf("warning: %s card %s was not in the shoe", missing.label, missing.card)))
		}
	}

	return b.String()
}

// renderHistory lists settled rounds oldest first
func renderHistory(entries []*models.LedgerEntry) string {
	if len(entries) == 0 {
		return infoStyle.Render("No rounds yet.")
	}

	history := newTable("#", "Dragon", "Tiger", "Result", "Bet", "Change", "Bankroll")
	for _, entry := range entries {
		bet := string(entry.BetSide)
		if entry.BetSide != models.BetSideNone {
			bet = fmt.Sprintf("%s %s", entry.BetSide, formatMoney(entry.BetAmount))
		}
		history.Row(
			fmt.Sprintf("%d", entry.Sequence),
			entry.DragonCard.String(),
			entry.TigerCard.String(),
			string(entry.Result),
			bet,
			formatMoney(entry.BankrollDelta),
			formatMoney(entry.BankrollAfter),
		)
	}

	return history.String()
}
