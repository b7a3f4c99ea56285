package configs

import "time"

// Engine tunes the delivery engine's accounting path and the per-source
// rate limit on the delivery endpoints.
type Engine struct {
	// MaxDeliveryAttempts bounds how often a request is retried against
	// fallback selection after losing a quota race.
	MaxDeliveryAttempts int `env:"MAX_DELIVERY_ATTEMPTS" envDefault:"3"`
	// AccountingTimeout bounds how long one accounting step may block on
	// storage before the delivery fails as retryable.
	AccountingTimeout time.Duration `env:"ACCOUNTING_TIMEOUT" envDefault:"2s"`
	// RateLimitRPS caps deliveries per second per request source. Zero
	// disables limiting.
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	// RateLimitBurst is the burst size of the per-source limiter.
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}
