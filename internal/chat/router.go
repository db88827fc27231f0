// Package chat implements the storefront chat widget: a deterministic
// intent router over an ordered rule list, with a backend product search
// as the fallback, and an in-memory append-only transcript.
package chat

import (
	"context"
	"strings"
	"time"

	"mystore/internal/model"

	"github.com/rs/zerolog"
)

// Greeting opens a fresh transcript.
const Greeting = "Hi! I'm Emma, your shopping assistant! How can I help you today?"

// ClearedGreeting opens a transcript after the user clears it.
const ClearedGreeting = "Chat cleared! How can I help you today?"

// FallbackReply is appended when the product search itself fails.
const FallbackReply = "Sorry, I'm having trouble right now. Please try again or contact support@mystore.com"

// Searcher is the backend product search used when no intent rule matches.
type Searcher interface {
	ChatProductSearch(ctx context.Context, message string) (model.ChatSearchResponse, error)
}

// rule is one (predicate, response) pair. Rules are evaluated in order and
// the first match short-circuits with its canned template.
type rule struct {
	name     string
	keywords []string
	response string
}

// defaultRules in priority order: login, signup, seller, orders, contact.
var defaultRules = []rule{
	{
		name:     "login",
		keywords: []string{"login", "log in", "sign in", "signin"},
		response: "To login to MyStore:\n\n" +
			"Already have an account? [Click here to Login](/login)\n" +
			"Don't have an account yet? [Sign up here](/signup)\n\n" +
			"Forgot your password? Use the \"Forgot Password\" link on the login page.",
	},
	{
		name:     "signup",
		keywords: []string{"signup", "sign up", "register", "create account", "new account", "join"},
		response: "Create your MyStore account:\n\n" +
			"[Create your account here](/signup) - enter your name and email, choose a " +
			"password, then verify your email with the code we send.\n\n" +
			"Already have an account? [Login here](/login)",
	},
	{
		name:     "seller",
		keywords: []string{"sell", "seller", "become a seller", "start selling", "merchant"},
		response: "Become a seller on MyStore:\n\n" +
			"[Apply to become a seller](/seller-signup) - submit your application and " +
			"wait for admin approval (24-48 hours). Once approved, add your products.\n\n" +
			"Already a seller? [Seller Login](/seller-login)\n" +
			"Questions about selling? [Contact Support](/contactus)",
	},
	{
		name:     "orders",
		keywords: []string{"my orders", "my order", "track order", "order history", "view orders"},
		response: "To see your order history, visit the [My Orders Page](/my-orders).\n\n" +
			"You must be logged in to view your orders. Not logged in? [Login here](/login)",
	},
	{
		name:     "contact",
		keywords: []string{"contact", "support", "help", "customer service"},
		response: "Contact MyStore Support:\n\n" +
			"[Contact Us Form](/contactus)\n" +
			"Email: support@mystore.com\n" +
			"Call: 1-800-MYSTORE (Mon-Fri 9 AM - 6 PM, Sat 10 AM - 4 PM)",
	},
}

// Widget is a chat session: the intent router plus its transcript. The
// transcript lives only in memory for the lifetime of the widget.
type Widget struct {
	searcher Searcher
	rules    []rule
	messages []model.ChatMessage
	logger   zerolog.Logger
	now      func() time.Time
}

// NewWidget creates a widget with a greeted, otherwise empty transcript.
func NewWidget(searcher Searcher, logger zerolog.Logger) *Widget {
	w := &Widget{
		searcher: searcher,
		rules:    defaultRules,
		logger:   logger.With().Str("component", "chat-widget").Logger(),
		now:      time.Now,
	}
	w.append(model.RoleAssistant, Greeting, nil)
	return w
}

// Send appends the user's message, classifies it and appends the reply,
// which is also returned. Intent matches never touch the backend; only the
// fallback issues a search call, and a failed search degrades to a canned
// support reply rather than an error.
func (w *Widget) Send(ctx context.Context, text string) model.ChatMessage {
	w.append(model.RoleUser, text, nil)

	lowered := strings.ToLower(text)
	for _, r := range w.rules {
		if matches(lowered, r.keywords) {
			w.logger.Debug().Str("intent", r.name).Msg("intent matched")
			return w.append(model.RoleAssistant, r.response, nil)
		}
	}

	res, err := w.searcher.ChatProductSearch(ctx, text)
	if err != nil {
		w.logger.Warn().Err(err).Msg("product search failed")
		return w.append(model.RoleAssistant, FallbackReply, nil)
	}

	reply := res.Reply
	if reply == "" {
		reply = "I'm here to help!"
	}
	return w.append(model.RoleAssistant, reply, res.Products)
}

// Transcript returns a copy of the conversation so far.
func (w *Widget) Transcript() []model.ChatMessage {
	msgs := make([]model.ChatMessage, len(w.messages))
	copy(msgs, w.messages)
	return msgs
}

// Clear resets the transcript to a fresh greeting. Explicit user action
// only; nothing is persisted.
func (w *Widget) Clear() {
	w.messages = nil
	w.append(model.RoleAssistant, ClearedGreeting, nil)
}

func (w *Widget) append(role, content string, products []model.Product) model.ChatMessage {
	msg := model.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: w.now(),
		Products:  products,
	}
	w.messages = append(w.messages, msg)
	return msg
}

func matches(lowered string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}
