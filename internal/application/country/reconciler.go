package country

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// Reconciler brings a stored country up to date before any read or mutation.
// Every trigger point (fetch country, production, building status, construction,
// flag edit) goes through it so advancement and persistence happen together.
type Reconciler struct {
	repo     country.CountryRepository
	engine   *country.AdvancementEngine
	clock    shared.Clock
	recorder GameRecorder
}

// NewReconciler creates a reconciler. A nil clock means real time, a nil recorder discards.
func NewReconciler(
	repo country.CountryRepository,
	engine *country.AdvancementEngine,
	clock shared.Clock,
	recorder GameRecorder,
) *Reconciler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if recorder == nil {
		recorder = NoopRecorder{}
	}
	return &Reconciler{
		repo:     repo,
		engine:   engine,
		clock:    clock,
		recorder: recorder,
	}
}

// Clock returns the time source used for advancements
func (r *Reconciler) Clock() shared.Clock {
	return r.clock
}

// Engine returns the advancement engine
func (r *Reconciler) Engine() *country.AdvancementEngine {
	return r.engine
}

// Recorder returns the game event recorder
func (r *Reconciler) Recorder() GameRecorder {
	return r.recorder
}

// Find loads the caller's country without advancing it
func (r *Reconciler) Find(ctx context.Context, userID shared.UserID) (*country.Country, error) {
	c, err := r.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, r.storageError(ctx, userID, "failed to load country", err)
	}
	return c, nil
}

// Load finds the caller's country and advances it to now, persisting any change
func (r *Reconciler) Load(ctx context.Context, userID shared.UserID) (*country.Country, error) {
	c, err := r.Find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := r.Advance(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Advance runs the engine on c and saves it when something changed
func (r *Reconciler) Advance(ctx context.Context, c *country.Country) error {
	result := r.engine.Advance(c, r.clock.Now())
	return r.Commit(ctx, c, result)
}

// Commit records the advancement and persists c if it advanced
func (r *Reconciler) Commit(ctx context.Context, c *country.Country, result country.AdvanceResult) error {
	r.recorder.RecordAdvancement(result)

	if !result.Advanced {
		return nil
	}

	logging.FromContext(ctx).Debug("country advanced",
		"country_id", c.ID(),
		"hours", result.HoursElapsed,
		"completed", len(result.Completed),
	)

	return r.Save(ctx, c)
}

// Save writes the whole aggregate
func (r *Reconciler) Save(ctx context.Context, c *country.Country) error {
	if err := r.repo.Save(ctx, c); err != nil {
		return r.storageError(ctx, c.UserID(), "failed to save country", err)
	}
	return nil
}

// storageError logs unexpected repository failures. Not-found passes through quietly.
func (r *Reconciler) storageError(ctx context.Context, userID shared.UserID, msg string, err error) error {
	if !shared.IsNotFoundError(err) {
		logging.FromContext(ctx).Error(msg, "user_id", userID.Value(), "error", err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
