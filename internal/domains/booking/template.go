package booking

import (
	"strings"
	"time"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/infrastructure/email"
)

const (
	DefaultAdminSubject    = "New Appointment Booking Request"
	DefaultCustomerSubject = "Thank You for Booking Your Appointment"
	NoMessage              = "No message provided"
	FallbackFromEmail      = "onboarding@resend.dev"
	DateLayout             = "1/2/2006, 3:04:05 PM"
)

var DefaultAdminBody = "New Appointment Booking Request\n\n" +
	"Name: {name}\n" +
	"Email: {email}\n" +
	"Phone: {phone}\n" +
	"Service: {service}\n" +
	"Message: {message}\n\n" +
	"Submitted on: {date}"

var DefaultCustomerBody = "Dear {name},\n\n" +
	"Thank you for booking an appointment with us!\n\n" +
	"We have received your appointment request for: {service}\n\n" +
	"Our team will contact you soon to confirm your appointment.\n\n" +
	"Best regards,\nDr Baig's Clinic"

// Booking is one appointment request from the public contact form.
type Booking struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// FromRequest converts the preview DTO.
func FromRequest(req model.PreviewRequest) Booking {
	return Booking{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	}
}

// Render replaces every {name} {email} {phone} {service} {message} {date}
// placeholder in tpl. Unknown placeholders are left as written.
func Render(tpl string, b Booking, now time.Time) string {
	message := b.Message
	if strings.TrimSpace(message) == "" {
		message = NoMessage
	}

	r := strings.NewReplacer(
		"{name}", b.Name,
		"{email}", b.Email,
		"{phone}", b.Phone,
		"{service}", b.Service,
		"{message}", message,
		"{date}", now.Format(DateLayout),
	)
	return r.Replace(tpl)
}

// Addresses are the configured fallbacks used when the CMS leaves them blank.
type Addresses struct {
	BookingEmail string
	FromEmail    string
}

// Preview is the pair of notifications a booking produces.
type Preview struct {
	Admin    email.Message `json:"admin"`
	Customer email.Message `json:"customer"`
}

// Compose renders both notifications from the contact section. Blank CMS
// templates fall back to the built-in defaults.
func Compose(contact model.Contact, addrs Addresses, b Booking, now time.Time) Preview {
	from := firstNonBlank(addrs.FromEmail, FallbackFromEmail)
	recipient := firstNonBlank(contact.Email, addrs.BookingEmail)

	adminSubject := firstNonBlank(contact.EmailSubject, DefaultAdminSubject)
	adminBody := firstNonBlank(contact.EmailBody, DefaultAdminBody)
	customerSubject := firstNonBlank(contact.CustomerEmailSubject, DefaultCustomerSubject)
	customerBody := firstNonBlank(contact.CustomerEmailBody, DefaultCustomerBody)

	return Preview{
		Admin: email.Message{
			From:    from,
			To:      []string{recipient},
			Subject: Render(adminSubject, b, now),
			Body:    Render(adminBody, b, now),
		},
		Customer: email.Message{
			From:    from,
			To:      []string{b.Email},
			Subject: Render(customerSubject, b, now),
			Body:    Render(customerBody, b, now),
		},
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
