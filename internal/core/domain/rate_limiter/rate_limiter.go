package ratelimiter

import (
	"context"
	"errors"
	"time"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

type Interval struct {
	value int
}

var (
	Minute = Interval{}
	Hour   = Interval{value: 1}
)

func (i Interval) Duration() time.Duration {
	if i == Hour {
		return time.Hour
	}
	return time.Minute
}

// Limit is the number of external API calls a feature may make per interval.
type Limit struct {
	Value    uint16
	Interval Interval
}

// IsUnlimited reports whether the limit disables counting.
func (l Limit) IsUnlimited() bool {
	return l.Value == 0
}

type Result struct {
	IsAllowed bool
}

func Allowed() Result {
	return Result{IsAllowed: true}
}

func NotAllowed() Result {
	return Result{IsAllowed: false}
}

// RateLimiter counts calls per feature key in fixed windows aligned to the
// clock minute or hour.
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit Limit) Result
}
