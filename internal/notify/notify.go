package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gamemarket/internal/domain"
	"github.com/GlebRadaev/gamemarket/pkg/metrics"
	"github.com/GlebRadaev/gamemarket/pkg/validate"
)

const sendTimeout = 10 * time.Second

type Kind string

const (
	KindSignup   Kind = "signup"
	KindCheckout Kind = "checkout"
	KindVisitor  Kind = "visitor"
)

type Event struct {
	Kind Kind
	At   time.Time

	Email    string
	Name     string
	Role     string
	Provider string

	OrderNumber string
	Total       decimal.Decimal
	Cashback    decimal.Decimal
	Items       int

	Visit domain.Visit
}

func SignupEvent(user *domain.User, provider string) Event {
	return Event{
		Kind:     KindSignup,
		At:       time.Now(),
		Email:    user.Email,
		Name:     strings.TrimSpace(user.FirstName + " " + user.LastName),
		Role:     user.Role.String(),
		Provider: provider,
	}
}

func CheckoutEvent(user *domain.User, order *domain.Order) Event {
	e := Event{
		Kind:        KindCheckout,
		At:          time.Now(),
		OrderNumber: order.OrderNumber,
		Total:       order.TotalAmount,
		Cashback:    order.TotalCashback,
	}
	if user != nil {
		e.Email = user.Email
		e.Name = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}
	for _, item := range order.Items {
		e.Items += item.Quantity
	}
	return e
}

func VisitorEvent(v domain.Visit) Event {
	return Event{Kind: KindVisitor, At: time.Now(), Visit: v}
}

// Format renders the event as Telegram HTML. All user supplied values are sanitized.
func Format(e Event) string {
	var b strings.Builder
	line := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<b>%s:</b> %s\n", label, validate.SanitizeText(value))
	}

	switch e.Kind {
	case KindSignup:
		b.WriteString("🆕 <b>New user</b>\n")
		line("Name", e.Name)
		line("Email", e.Email)
		line("Role", e.Role)
		line("Via", e.Provider)
	case KindCheckout:
		b.WriteString("🛒 <b>New order</b>\n")
		line("Order", e.OrderNumber)
		line("Customer", e.Name)
		line("Email", e.Email)
		line("Items", fmt.Sprint(e.Items))
		line("Total", e.Total.StringFixed(2)+" EUR")
		line("Cashback", e.Cashback.StringFixed(2)+" EUR")
	case KindVisitor:
		b.WriteString("👀 <b>New visitor</b>\n")
		line("Page", e.Visit.Page)
		line("Referrer", e.Visit.Referrer)
		line("Language", e.Visit.Language)
		line("Screen", e.Visit.Screen)
		line("User agent", e.Visit.UserAgent)
		line("IP", e.Visit.IP)
	default:
		line("Event", string(e.Kind))
	}
	if !e.At.IsZero() {
		line("Time", e.At.UTC().Format(time.RFC3339))
	}
	return strings.TrimRight(b.String(), "\n")
}

type NotifierI interface {
	Notify(ctx context.Context, e Event)
}

type Sender interface {
	Send(ctx context.Context, text string) error
}

// Notifier delivers events in the background. Delivery is best effort: when the queue is
// full the event is dropped, and send failures are only logged.
type Notifier struct {
	pool   WorkerPoolI
	sender Sender
}

func New(pool WorkerPoolI, sender Sender) *Notifier {
	return &Notifier{
		pool:   pool,
		sender: sender,
	}
}

func (n *Notifier) Notify(ctx context.Context, e Event) {
	text := Format(e)
	base := context.WithoutCancel(ctx)

	queued := n.pool.TryAddTask(func() error {
		ctx, cancel := context.WithTimeout(base, sendTimeout)
		defer cancel()
		if err := n.sender.Send(ctx, text); err != nil {
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			return fmt.Errorf("send %s notification: %w", e.Kind, err)
		}
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		return nil
	})
	if !queued {
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		zap.L().Warn("notification dropped", zap.String("kind", string(e.Kind)))
	}
}
