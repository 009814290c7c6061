package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/services/tracker"
)

func defaultCommands() []CommandHandler {
	return []CommandHandler{
		&showCommand{BaseCommand{Name: "show", Usage: "show                      probabilities and EVs for the next round"}},
		&roundCommand{BaseCommand{Name: "round", Usage: "round <dragon> <tiger> [side amount]   e.g. round K♠ 10h tiger 25"}},
		&historyCommand{BaseCommand{Name: "history", Usage: "history                   rounds dealt from this shoe"}},
		&resetCommand{BaseCommand{Name: "reset", Usage: "reset [decks]             shuffle a new shoe"}},
		&setCommand{BaseCommand{Name: "set", Usage: "set payout <side> <x> | set tie <push|lose> | set bankroll <x>"}},
		&helpCommand{BaseCommand{Name: "help", Usage: "help                      list commands"}},
		&quitCommand{BaseCommand{Name: "quit", Usage: "quit                      leave the tracker"}},
	}
}

type showCommand struct{ BaseCommand }

func (cmd *showCommand) Handle(ctx context.Context, c *Console, args []string) error {
	output, err := c.service.GetDisplay(ctx, &tracker.GetDisplayInput{Session: c.session})
	if errors.Is(err, tracker.ErrInsufficientShoe) {
		fmt.Fprintln(c.out, renderExhausted(c.session.RemainingCards()))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, renderDisplay(c.session, output))
	return nil
}

type roundCommand struct{ BaseCommand }

func (cmd *roundCommand) Handle(ctx context.Context, c *Console, args []string) error {
	if len(args) != 2 && len(args) != 4 {
		return fmt.Errorf("usage: %s", cmd.Usage)
	}

	dragon, err := models.ParseCard(args[0])
	if err != nil {
		return err
	}
	tiger, err := models.ParseCard(args[1])
	if err != nil {
		return err
	}

	input := &tracker.SubmitRoundInput{
		Session:    c.session,
		DragonCard: dragon,
		TigerCard:  tiger,
		BetSide:    models.BetSideNone,
	}

	if len(args) == 4 {
		side, err := models.ParseBetSide(args[2])
		if err != nil {
			return err
		}
		amount, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("bad bet amount %q", args[3])
		}
		input.BetSide = side
		input.BetAmount = amount
	}

	output, err := c.service.SubmitRound(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, renderSettled(output))

	// refresh after every round
	return c.Execute(ctx, "show")
}

type historyCommand struct{ BaseCommand }

func (cmd *historyCommand) Handle(ctx context.Context, c *Console, args []string) error {
	output, err := c.service.GetHistory(ctx, &tracker.GetHistoryInput{Session: c.session})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, renderHistory(output.Entries))
	return nil
}

type resetCommand struct{ BaseCommand }

func (cmd *resetCommand) Handle(ctx context.Context, c *Console, args []string) error {
	input := &tracker.ResetInput{Session: c.session}
	if len(args) > 0 {
		decks, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad deck count %q", args[0])
		}
		input.DeckCount = &decks
	}

	output, err := c.service.Reset(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, infoStyle.Render(fmt.Sprintf("new %d-deck shoe, %d cards", output.Info.DeckCount, c.session.RemainingCards())))
	return c.Execute(ctx, "show")
}

type setCommand struct{ BaseCommand }

func (cmd *setCommand) Handle(ctx context.Context, c *Console, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: %s", cmd.Usage)
	}

	input := &tracker.UpdateSettingsInput{Session: c.session}

	switch strings.ToLower(args[0]) {
	case "payout":
		if len(args) != 3 {
			return fmt.Errorf("usage: set payout <side> <x>")
		}
		side, err := models.ParseBetSide(args[1])
		if err != nil || side == models.BetSideNone {
			return fmt.Errorf("unknown bet side %q", args[1])
		}
		x, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("bad payout %q", args[2])
		}
		payouts := c.session.Settings().Payouts.With(side, x)
		input.Payouts = &payouts
	case "tie":
		rule := models.TieRule(strings.ToLower(args[1]))
		input.TieRule = &rule
	case "bankroll":
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad bankroll %q", args[1])
		}
		input.Bankroll = &x
	default:
		return fmt.Errorf("usage: %s", cmd.Usage)
	}

	if _, err := c.service.UpdateSettings(ctx, input); err != nil {
		return err
	}

	return c.Execute(ctx, "show")
}

type helpCommand struct{ BaseCommand }

func (cmd *helpCommand) Handle(ctx context.Context, c *Console, args []string) error {
	var b strings.Builder
	for _, name := range c.commandNames() {
		b.WriteString("  " + c.commands[name].GetUsage() + "\n")
	}
	fmt.Fprint(c.out, b.String())
	return nil
}

type quitCommand struct{ BaseCommand }

func (cmd *quitCommand) Handle(ctx context.Context, c *Console, args []string) error {
	return errQuit
}
