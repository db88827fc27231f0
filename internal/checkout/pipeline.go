package checkout

import (
	"context"
	"errors"
	"sync"

	"mystore/internal/cart"
	"mystore/internal/model"
	"mystore/internal/session"

	"github.com/rs/zerolog"
)

// Pipeline states.
type State string

const (
	StateIdle      State = "idle"
	StateSaving    State = "saving"
	StateNotifying State = "notifying"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// Outcome tags a finished submission. A failed notification after a
// successful save is a distinct outcome: the order exists and must never be
// reported as "not placed".
type Outcome string

const (
	// OutcomePlaced: order saved and confirmation email sent.
	OutcomePlaced Outcome = "placed"

	// OutcomePlacedEmailFailed: order durably saved, notification failed.
	OutcomePlacedEmailFailed Outcome = "placed_email_failed"

	// OutcomeFailed: order was not saved.
	OutcomeFailed Outcome = "failed"
)

var (
	// ErrNotSignedIn aborts a submission before any network call when no
	// shopper identity is present; the caller routes to re-authenticate.
	ErrNotSignedIn = errors.New("no registered email found, please log in again")

	// ErrSubmissionInFlight rejects a Submit issued while another is
	// outstanding. This is the duplicate-order guard: a double click
	// produces exactly one save call.
	ErrSubmissionInFlight = errors.New("an order submission is already in progress")
)

// OrderAPI is the backend surface the pipeline drives, in order: durable
// persistence first, then the confirmation notification.
type OrderAPI interface {
	SaveOrder(ctx context.Context, req model.OrderRequest) error
	SendOrderEmail(ctx context.Context, req model.OrderRequest) error
}

// Result is the report surfaced to the user after a submission attempt.
type Result struct {
	Outcome Outcome
	Message string
	Err     error
}

// Pipeline runs the order submission state machine
// Idle -> Saving -> Notifying -> Done, with Failed reachable from Saving
// and Notifying. One submission per user confirmation; no automatic
// retries.
type Pipeline struct {
	api     OrderAPI
	cart    *cart.Cart
	session *session.Session
	logger  zerolog.Logger

	mu       sync.Mutex
	state    State
	inFlight bool
}

// NewPipeline creates a submission pipeline in the Idle state.
func NewPipeline(api OrderAPI, c *cart.Cart, s *session.Session, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		api:     api,
		cart:    c,
		session: s,
		logger:  logger.With().Str("component", "order-pipeline").Logger(),
		state:   StateIdle,
	}
}

// State returns the pipeline's current state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Submit runs the snapshot through the pipeline. It requires a signed-in
// shopper, rejects concurrent submissions, and on full success clears the
// cart. The returned Result always distinguishes "not placed" from "placed
// but not notified".
func (p *Pipeline) Submit(ctx context.Context, snap Snapshot) (Result, error) {
	email, ok := p.session.ShopperEmail()
	if !ok || email == "" {
		return Result{}, ErrNotSignedIn
	}

	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return Result{}, ErrSubmissionInFlight
	}
	p.inFlight = true
	p.state = StateSaving
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	req := model.OrderRequest{
		Email:      email,
		FullName:   snap.Address.FullName,
		Items:      snap.Items,
		TotalPrice: snap.TotalPrice,
		Address:    snap.Address,
	}

	if err := p.api.SaveOrder(ctx, req); err != nil {
		p.setState(StateFailed)
		p.logger.Error().Err(err).Msg("order save failed")
		return Result{
			Outcome: OutcomeFailed,
			Message: "Something went wrong while placing your order.",
			Err:     err,
		}, nil
	}

	p.setState(StateNotifying)

	if err := p.api.SendOrderEmail(ctx, req); err != nil {
		// The order is already durably saved; only the notification failed.
		p.setState(StateFailed)
		p.logger.Warn().Err(err).Msg("order saved but confirmation email failed")
		p.cart.Clear()
		return Result{
			Outcome: OutcomePlacedEmailFailed,
			Message: "Order placed, but we could not send the confirmation email.",
			Err:     err,
		}, nil
	}

	p.setState(StateDone)
	p.cart.Clear()
	p.logger.Info().Str("email", email).Float64("total", snap.TotalPrice).Msg("order placed")

	return Result{
		Outcome: OutcomePlaced,
		Message: "Order placed successfully! Confirmation email sent.",
	}, nil
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}
