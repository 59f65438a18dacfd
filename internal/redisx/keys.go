package redisx

import "time"

const (
	// idem:checkout:{user_id}:{idempotency_key} -> order number, or Pending while in flight
	KeyIdemCheckout = "idem:checkout:%s:%s"
)

var TTLIdempotency = 24 * time.Hour
