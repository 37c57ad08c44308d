package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) configured() bool {
	return c.Host != "" && c.Port != 0 && c.Username != "" && c.Password != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends plain-text booking confirmations. Without SMTP settings
// it only logs what it would have sent.
type SMTPMailer struct {
	cfg    SMTPConfig
	send   sendFunc
	logger logger.Logger
}

func NewSMTPMailer(cfg SMTPConfig, logger logger.Logger) *SMTPMailer {
	if !cfg.configured() {
		logger.Warn("smtp is not configured, confirmation emails are logged only")
	}
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, logger: logger}
}

func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, b *domain.Booking) error {
	if !m.cfg.configured() {
		m.logger.Info("mock email",
			logger.String("to", b.Email),
			logger.String("booking_number", b.BookingNumber),
			logger.Int64("total_amount", b.TotalAmount),
		)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := m.send(addr, auth, from, []string{b.Email}, confirmationMessage(from, b)); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", b.Email, err)
	}

	m.logger.Info("confirmation email sent",
		logger.String("booking_number", b.BookingNumber),
	)
	return nil
}

func confirmationMessage(from string, b *domain.Booking) []byte {
	// Header values come from user input.
	safe := func(s string) string {
		return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", safe(from))
	fmt.Fprintf(&sb, "To: %s\r\n", safe(b.Email))
	fmt.Fprintf(&sb, "Subject: Booking %s received\r\n", safe(b.BookingNumber))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&sb, "Dear %s,\r\n\r\n", safe(b.CustomerName))
	fmt.Fprintf(&sb, "Booking number: %s\r\n", b.BookingNumber)
	fmt.Fprintf(&sb, "Tour: %s\r\n", safe(b.TourTitle))
	fmt.Fprintf(&sb, "Departure: %s\r\n", b.DepartureDate.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Participants: %d\r\n", b.Participants)
	fmt.Fprintf(&sb, "Total: %d\r\n", b.TotalAmount)
	fmt.Fprintf(&sb, "Pay by: %s\r\n", b.PaymentDueDate.Format("2006-01-02 15:04 MST"))
	return []byte(sb.String())
}
