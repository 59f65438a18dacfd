package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gamemarket/internal/domain"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		contains []string
		excludes []string
	}{
		{
			name: "signup",
			event: Event{
				Kind:     KindSignup,
				Email:    "ann@example.com",
				Name:     "Ann Lee",
				Role:     "seller",
				Provider: "google",
			},
			contains: []string{"<b>New user</b>", "<b>Email:</b> ann@example.com", "<b>Role:</b> seller", "<b>Via:</b> google"},
		},
		{
			name: "checkout",
			event: Event{
				Kind:        KindCheckout,
				OrderNumber: "12345678903",
				Total:       decimal.RequireFromString("27.3"),
				Cashback:    decimal.RequireFromString("2.46"),
				Items:       3,
			},
			contains: []string{"<b>New order</b>", "<b>Order:</b> 12345678903", "<b>Total:</b> 27.30 EUR", "<b>Cashback:</b> 2.46 EUR", "<b>Items:</b> 3"},
		},
		{
			name: "visitor values are sanitized",
			event: Event{
				Kind:  KindVisitor,
				Visit: domain.Visit{Page: "/games<b>x</b>", Language: "lt-LT"},
			},
			contains: []string{"<b>New visitor</b>", "<b>Page:</b> /gamesx", "<b>Language:</b> lt-LT"},
			excludes: []string{"Referrer", "<b>x</b>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.event)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestCheckoutEvent(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "ann@example.com", FirstName: "Ann", LastName: "Lee"}
	order := &domain.Order{
		OrderNumber:   "12345678903",
		TotalAmount:   decimal.RequireFromString("27.30"),
		TotalCashback: decimal.RequireFromString("2.46"),
		Items:         []domain.OrderItem{{Quantity: 2}, {Quantity: 1}},
	}

	e := CheckoutEvent(user, order)

	assert.Equal(t, KindCheckout, e.Kind)
	assert.Equal(t, "Ann Lee", e.Name)
	assert.Equal(t, 3, e.Items)
	assert.Equal(t, "27.30", e.Total.StringFixed(2))
}

func TestSignupEvent(t *testing.T) {
	e := SignupEvent(&domain.User{Email: "a@b.c", FirstName: "Ann", Role: domain.RoleBuyer}, "local")

	assert.Equal(t, KindSignup, e.Kind)
	assert.Equal(t, "Ann", e.Name)
	assert.Equal(t, "buyer", e.Role)
	assert.Equal(t, "local", e.Provider)
}

func TestNotifier_Notify(t *testing.T) {
	tests := []struct {
		name        string
		closePool   bool
		prepareMock func(sender *MockSender, done chan struct{})
	}{
		{
			name: "Delivered in background",
			prepareMock: func(sender *MockSender, done chan struct{}) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, text string) error {
					defer close(done)
					assert.NoError(t, ctx.Err())
					assert.Contains(t, text, "New visitor")
					return nil
				})
			},
		},
		{
			name: "Send failure is swallowed",
			prepareMock: func(sender *MockSender, done chan struct{}) {
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) error {
					close(done)
					return errors.New("telegram down")
				})
			},
		},
		{
			name:      "Dropped when pool is closed",
			closePool: true,
			prepareMock: func(_ *MockSender, done chan struct{}) {
				close(done)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sender := NewMockSender(ctrl)
			done := make(chan struct{})
			tt.prepareMock(sender, done)

			pool := NewWorkerPool(1, 4)
			if tt.closePool {
				pool.Close()
			}
			n := New(pool, sender)

			ctx, cancel := context.WithCancel(context.Background())
			n.Notify(ctx, VisitorEvent(domain.Visit{Page: "/"}))
			cancel()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("notification was not processed")
			}
			pool.Close()
		})
	}
}
