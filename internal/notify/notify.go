// Package notify sends transactional email: OTP codes, order
// confirmations, seller application updates and contact form copies.
// Delivery failures are reported to callers, who decide whether the
// surrounding operation survives them.
package notify

import (
	"context"
	"fmt"
	"strings"

	"mystore/internal/model"
)

// Mailer delivers a single plain-text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NopMailer drops every message. Used when mail is disabled and in tests.
type NopMailer struct{}

func (NopMailer) Send(ctx context.Context, to, subject, body string) error {
	return nil
}

// OTPBody formats the verification code email.
func OTPBody(code string) (subject, body string) {
	return "Your MyStore verification code",
		fmt.Sprintf("Your one-time verification code is %s.\n\nIt expires in 5 minutes. If you did not request this code, you can ignore this email.\n", code)
}

// OrderConfirmationBody formats the order confirmation email with a line
// per purchased item.
func OrderConfirmationBody(req model.OrderRequest) (subject, body string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\nThank you for shopping with MyStore! Your order has been placed.\n\n", req.FullName)
	sb.WriteString("Order summary:\n")
	for _, item := range req.Items {
		fmt.Fprintf(&sb, "  - %s x%d @ $%.2f\n", item.Title, item.Quantity, item.Price)
	}
	fmt.Fprintf(&sb, "\nTotal: $%.2f\n\n", req.TotalPrice)
	fmt.Fprintf(&sb, "Delivery address:\n%s\n%s, %s %s\n",
		req.Address.Address, req.Address.City, req.Address.State, req.Address.Pincode)
	return "Your MyStore order confirmation", sb.String()
}

// ProductActivityBody formats the email a seller receives after one of
// their products changes. A freshly created product is reported as a saved
// draft; every other action is echoed verbatim.
func ProductActivityBody(action, title string) (subject, body string) {
	if action == model.ActionCreated {
		return "Your MyStore product draft is saved",
			fmt.Sprintf("Your product %q has been saved as a draft. Publish it from the seller dashboard when it's ready to go live.\n", title)
	}
	return fmt.Sprintf("Your MyStore product was %s", action),
		fmt.Sprintf("Your product %q has been %s.\n", title, action)
}

// SellerApplicationBody formats the acknowledgement sent to a new seller
// applicant.
func SellerApplicationBody(name, storeName string) (subject, body string) {
	return "Your MyStore seller application",
		fmt.Sprintf("Hi %s,\n\nWe received your application for the store %q. Our team will review it and let you know once a decision is made.\n", name, storeName)
}

// SellerDecisionBody formats the approval or rejection email.
func SellerDecisionBody(name, status string) (subject, body string) {
	if status == model.SellerApproved {
		return "Your MyStore seller account is approved",
			fmt.Sprintf("Hi %s,\n\nGood news: your seller account has been approved. You can now sign in to the seller dashboard and start listing products.\n", name)
	}
	return "Update on your MyStore seller application",
		fmt.Sprintf("Hi %s,\n\nAfter review, we are unable to approve your seller application at this time.\n", name)
}

// ContactCopyBody formats the admin copy of a contact form submission.
func ContactCopyBody(req model.ContactRequest) (subject, body string) {
	subject = req.Subject
	if subject == "" {
		subject = "General inquiry"
	}
	return "Contact form: " + subject,
		fmt.Sprintf("From: %s <%s>\n\n%s\n", req.Name, req.Email, req.Message)
}
