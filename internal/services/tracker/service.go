package tracker

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dragontiger/internal/common/clock"
	"github.com/KirkDiggler/dragontiger/internal/common/uuid"
	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/odds"
	"github.com/KirkDiggler/dragontiger/internal/outcome"
	"github.com/KirkDiggler/dragontiger/internal/repositories/ledger"
	"github.com/KirkDiggler/dragontiger/internal/shoe"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	ledgerRepo    ledger.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        zerolog.Logger
	seed          int64
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &service{
		ledgerRepo:    cfg.LedgerRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With().Str("component", "tracker").Logger(),
		seed:          cfg.Seed,
	}, nil
}

// NewSession validates settings and deals a fresh shoe
func (s *service) NewSession(ctx context.Context, input *NewSessionInput) (*NewSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := input.Settings.Validate(); err != nil {
		return nil, err
	}

	fresh, info, err := s.newShoe(input.Settings.DeckCount)
	if err != nil {
		return nil, err
	}

	session := &Session{
		info:     info,
		shoe:     fresh,
		bankroll: input.Settings.Bankroll,
		settings: input.Settings,
	}

	s.logger.Info().
		Str("session_id", info.ID).
		Int("decks", info.DeckCount).
		Float64("bankroll", session.bankroll).
		Msg("session started")

	return &NewSessionOutput{
		Session: session,
	}, nil
}

// Reset deals a new shoe and drops the old shoe's ledger
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Session == nil {
		return nil, ErrNilSession
	}

	deckCount := input.Session.settings.DeckCount
	if input.DeckCount != nil {
		deckCount = *input.DeckCount
	}

	if err := validateDeckCount(deckCount); err != nil {
		return nil, err
	}

	fresh, info, err := s.newShoe(deckCount)
	if err != nil {
		return nil, err
	}

	// Clear the old ledger before swapping so a failure leaves the session intact
	oldID := input.Session.info.ID
	if err := s.ledgerRepo.ClearEntries(ctx, &ledger.ClearEntriesInput{SessionID: oldID}); err != nil {
		return nil, fmt.Errorf("failed to clear ledger: %w", err)
	}

	input.Session.info = info
	input.Session.shoe = fresh
	input.Session.settings.DeckCount = deckCount
	input.Session.rounds = 0

	s.logger.Info().
		Str("session_id", info.ID).
		Str("previous_session_id", oldID).
		Int("decks", deckCount).
		Msg("shoe reset")

	return &ResetOutput{
		Info: info,
	}, nil
}

// GetDisplay computes exact probabilities and EVs over the remaining shoe
func (s *service) GetDisplay(ctx context.Context, input *GetDisplayInput) (*GetDisplayOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session := input.Session
	if session == nil {
		return nil, ErrNilSession
	}

	probs, err := odds.Compute(session.shoe.Counts())
	if err != nil {
		return nil, err
	}

	evs, err := odds.ComputeEV(probs, session.settings.Payouts, session.settings.TieRule)
	if err != nil {
		return nil, err
	}

	best, positive := evs.Best()

	output := &GetDisplayOutput{
		Probabilities:   probs,
		EVs:             evs,
		BestBet:         best,
		BestBetPositive: positive,
		RemainingCards:  session.shoe.RemainingCount(),
		Bankroll:        session.bankroll,
		Payouts:         session.settings.Payouts,
		TieRule:         session.settings.TieRule,
	}
	for rank := models.RankAce; rank <= models.RankKing; rank++ {
		output.RemainingByRank[rank-1] = session.shoe.RemainingOfRank(rank)
	}

	return output, nil
}

// SubmitRound resolves and settles a round. The ledger append happens before
// any in-memory change, so a failed append leaves the session untouched.
func (s *service) SubmitRound(ctx context.Context, input *SubmitRoundInput) (*SubmitRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session := input.Session
	if session == nil {
		return nil, ErrNilSession
	}

	if !input.DragonCard.Valid() || !input.TigerCard.Valid() {
		return nil, fmt.Errorf("%w: cards %v and %v", ErrInvalidRound, input.DragonCard, input.TigerCard)
	}

	side := input.BetSide
	if side == "" {
		side = models.BetSideNone
	}
	if !side.Valid() {
		return nil, fmt.Errorf("%w: unknown bet side %q", ErrInvalidRound, side)
	}
	if input.BetAmount < MinBetAmount || input.BetAmount > MaxBetAmount {
		return nil, fmt.Errorf("%w: bet amount %g outside [%d, %d]", ErrInvalidRound, input.BetAmount, MinBetAmount, MaxBetAmount)
	}

	result := outcome.Resolve(input.DragonCard, input.TigerCard)
	delta := bankrollDelta(result, side, input.BetAmount, session.settings.Payouts, session.settings.TieRule)

	entry := &models.LedgerEntry{
		ID:            s.uuidGenerator.NewUUID(),
		SessionID:     session.info.ID,
		Sequence:      session.rounds + 1,
		DragonCard:    input.DragonCard,
		TigerCard:     input.TigerCard,
		Result:        result,
		BetSide:       side,
		BetAmount:     input.BetAmount,
		BankrollDelta: delta,
		BankrollAfter: session.bankroll + delta,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.ledgerRepo.AppendEntry(ctx, &ledger.AppendEntryInput{Entry: entry}); err != nil {
		return nil, fmt.Errorf("failed to record round: %w", err)
	}

	dragonFound := session.shoe.Remove(input.DragonCard)
	tigerFound := session.shoe.Remove(input.TigerCard)
	session.bankroll = entry.BankrollAfter
	session.rounds++

	if !dragonFound || !tigerFound {
		s.logger.Warn().
			Str("session_id", session.info.ID).
			Str("dragon", input.DragonCard.String()).
			Bool("dragon_found", dragonFound).
			Str("tiger", input.TigerCard.String()).
			Bool("tiger_found", tigerFound).
			Msg("card already exhausted from shoe")
	}

	s.logger.Debug().
		Str("session_id", session.info.ID).
		Int("round", entry.Sequence).
		Str("result", string(result)).
		Str("bet", string(side)).
		Float64("delta", delta).
		Float64("bankroll", session.bankroll).
		Int("remaining", session.shoe.RemainingCount()).
		Msg("round settled")

	return &SubmitRoundOutput{
		Entry:       entry,
		DragonFound: dragonFound,
		TigerFound:  tigerFound,
	}, nil
}

// GetHistory returns the current shoe's ledger
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Session == nil {
		return nil, ErrNilSession
	}

	output, err := s.ledgerRepo.ListEntries(ctx, &ledger.ListEntriesInput{
		SessionID: input.Session.info.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &GetHistoryOutput{
		Entries: output.Entries,
	}, nil
}

// UpdateSettings validates every provided field before applying any of them
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session := input.Session
	if session == nil {
		return nil, ErrNilSession
	}

	updated := session.settings
	if input.Payouts != nil {
		updated.Payouts = *input.Payouts
	}
	if input.TieRule != nil {
		updated.TieRule = *input.TieRule
	}
	if input.Bankroll != nil {
		updated.Bankroll = *input.Bankroll
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	session.settings = updated
	if input.Bankroll != nil {
		session.bankroll = *input.Bankroll
	}

	return &UpdateSettingsOutput{
		Settings: session.settings,
		Bankroll: session.bankroll,
	}, nil
}

func (s *service) newShoe(deckCount int) (*shoe.Shoe, models.Session, error) {
	fresh, err := shoe.New(&shoe.Config{
		DeckCount: deckCount,
		Seed:      s.seed,
	})
	if err != nil {
		return nil, models.Session{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	info := models.Session{
		ID:        s.uuidGenerator.NewUUID(),
		DeckCount: deckCount,
		CreatedAt: s.clock.Now(),
	}

	return fresh, info, nil
}
