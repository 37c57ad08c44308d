package notification

import (
	"context"
	"fmt"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type AdminAlerter interface {
	NotifyAdmin(ctx context.Context, title, message, referenceID string) error
}

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, b *domain.Booking) error
}

// Notifier fans booking events out to the admin chat and the customer's
// mailbox. Failures end here: they are logged and never returned.
type Notifier struct {
	alerter AdminAlerter
	mailer  Mailer
	logger  logger.Logger
}

func New(alerter AdminAlerter, mailer Mailer, logger logger.Logger) *Notifier {
	return &Notifier{alerter: alerter, mailer: mailer, logger: logger}
}

func (n *Notifier) BookingCreated(ctx context.Context, b *domain.Booking) {
	n.alert(ctx, "New booking",
		fmt.Sprintf("%s booked %q for %d (%s). Total %d, pay by %s.",
			b.CustomerName, b.TourTitle, b.Participants, b.Phone,
			b.TotalAmount, b.PaymentDueDate.Format("2006-01-02 15:04")),
		b.BookingNumber,
	)

	if err := n.mailer.SendBookingConfirmation(ctx, b); err != nil {
		n.logger.Error("failed to send booking confirmation",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (n *Notifier) BookingCancelRequested(ctx context.Context, b *domain.Booking) {
	n.alert(ctx, "Cancellation requested",
		fmt.Sprintf("%s asked to cancel %q (departure %s). Reason: %s",
			b.CustomerName, b.TourTitle, b.DepartureDate.Format("2006-01-02"), b.CancelReason),
		b.BookingNumber,
	)
}

func (n *Notifier) BookingCancelled(ctx context.Context, b *domain.Booking) {
	n.alert(ctx, "Booking cancelled",
		fmt.Sprintf("%s, %q: %d seats released.", b.CustomerName, b.TourTitle, b.Participants),
		b.BookingNumber,
	)
}

func (n *Notifier) ApplicationSubmitted(ctx context.Context, a *domain.Application) {
	n.alert(ctx, "New "+string(a.Type)+" application",
		fmt.Sprintf("User %s requested %s of %d.", a.UserID, a.Type, a.Amount),
		a.ID,
	)
}

func (n *Notifier) alert(ctx context.Context, title, message, ref string) {
	if err := n.alerter.NotifyAdmin(ctx, title, message, ref); err != nil {
		n.logger.Error("failed to send admin alert",
			logger.String("title", title),
			logger.String("reference", ref),
			logger.String("error", err.Error()),
		)
	}
}
