package dashboard

import (
	"context"

	"mystore/internal/model"
	"mystore/internal/session"

	"github.com/rs/zerolog"
)

// SignupAPI is the slice of the backend client the application form needs.
type SignupAPI interface {
	SellerSignup(ctx context.Context, req model.SellerSignupRequest) error
}

// ApplicationForm handles the seller application. The in-progress form is
// autosaved to the local session so an abandoned or failed attempt can be
// resumed later; the draft is cleared only once an application is accepted
// by the backend.
type ApplicationForm struct {
	api     SignupAPI
	session *session.Session
	logger  zerolog.Logger
}

// NewApplicationForm creates a seller application form.
func NewApplicationForm(api SignupAPI, sess *session.Session, logger zerolog.Logger) *ApplicationForm {
	return &ApplicationForm{
		api:     api,
		session: sess,
		logger:  logger.With().Str("component", "seller-signup").Logger(),
	}
}

// Load returns the saved draft, or a zero form when none exists.
func (f *ApplicationForm) Load() model.SellerSignupRequest {
	draft, ok := f.session.SellerDraft()
	if !ok {
		return model.SellerSignupRequest{}
	}
	return draft
}

// Save autosaves the in-progress form.
func (f *ApplicationForm) Save(form model.SellerSignupRequest) {
	f.session.SaveSellerDraft(form)
}

// Submit sends the application. The form is saved first so a failed
// submission keeps the draft intact; it is cleared only on success.
func (f *ApplicationForm) Submit(ctx context.Context, form model.SellerSignupRequest) error {
	f.session.SaveSellerDraft(form)

	if err := f.api.SellerSignup(ctx, form); err != nil {
		f.logger.Warn().Err(err).Str("email", form.Email).Msg("seller application failed")
		return err
	}

	f.session.ClearSellerDraft()
	f.logger.Info().Str("email", form.Email).Msg("seller application submitted")
	return nil
}
