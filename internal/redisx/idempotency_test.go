package redisx

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyStore_Reserve(t *testing.T) {
	userID := uuid.New()
	key := checkoutKey(userID, "abc")

	tests := []struct {
		name         string
		mockSetup    func(m *MockClient)
		wantValue    string
		wantReserved bool
		wantErr      bool
	}{
		{
			name: "Fresh key is reserved",
			mockSetup: func(m *MockClient) {
				m.EXPECT().SetNX(gomock.Any(), key, Pending, TTLIdempotency).Return(redis.NewBoolResult(true, nil))
			},
			wantReserved: true,
		},
		{
			name: "Completed key returns order number",
			mockSetup: func(m *MockClient) {
				m.EXPECT().SetNX(gomock.Any(), key, Pending, TTLIdempotency).Return(redis.NewBoolResult(false, nil))
				m.EXPECT().Get(gomock.Any(), key).Return(redis.NewStringResult("12345678903", nil))
			},
			wantValue: "12345678903",
		},
		{
			name: "In flight key returns pending",
			mockSetup: func(m *MockClient) {
				m.EXPECT().SetNX(gomock.Any(), key, Pending, TTLIdempotency).Return(redis.NewBoolResult(false, nil))
				m.EXPECT().Get(gomock.Any(), key).Return(redis.NewStringResult(Pending, nil))
			},
			wantValue: Pending,
		},
		{
			name: "Key expired between calls",
			mockSetup: func(m *MockClient) {
				gomock.InOrder(
					m.EXPECT().SetNX(gomock.Any(), key, Pending, TTLIdempotency).Return(redis.NewBoolResult(false, nil)),
					m.EXPECT().Get(gomock.Any(), key).Return(redis.NewStringResult("", redis.Nil)),
					m.EXPECT().SetNX(gomock.Any(), key, Pending, TTLIdempotency).Return(redis.NewBoolResult(true, nil)),
				)
			},
			wantReserved: true,
		},
		{
			name: "Redis error",
			mockSetup: func(m *MockClient) {
				m.EXPECT().SetNX(gomock.Any(), key, Pending, TTLIdempotency).Return(redis.NewBoolResult(false, errors.New("connection refused")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := NewMockClient(ctrl)
			tt.mockSetup(client)

			val, reserved, err := NewIdempotencyStore(client).Reserve(context.Background(), userID, "abc")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantValue, val)
			assert.Equal(t, tt.wantReserved, reserved)
		})
	}
}

func TestIdempotencyStore_CompleteAndRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	key := checkoutKey(userID, "abc")
	client := NewMockClient(ctrl)
	client.EXPECT().Set(gomock.Any(), key, "12345678903", TTLIdempotency).Return(redis.NewStatusResult("OK", nil))
	client.EXPECT().GetDel(gomock.Any(), key).Return(redis.NewStringResult("", redis.Nil))

	store := NewIdempotencyStore(client)
	assert.NoError(t, store.Complete(context.Background(), userID, "abc", "12345678903"))
	assert.NoError(t, store.Release(context.Background(), userID, "abc"))
}

func TestCheckoutKey(t *testing.T) {
	id := uuid.MustParse("5b0a4b8e-3f5c-4b8f-9f5e-8f0a4b8e3f5c")
	assert.Equal(t, "idem:checkout:5b0a4b8e-3f5c-4b8f-9f5e-8f0a4b8e3f5c:abc", checkoutKey(id, "abc"))
}
