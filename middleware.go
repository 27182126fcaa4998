package formy

import (
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Middleware wraps a field validator with cross-cutting behavior (logging,
// input cleanup). Middlewares see the raw value handed to the validator;
// the raw values stored on the form are never rewritten, so failed fields
// still repopulate with the user's original input.
type Middleware func(ValidatorFunc) ValidatorFunc

// WithLogging returns a middleware that logs each field validation with its
// duration, and failed checks with their message.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ValidatorFunc) ValidatorFunc {
		return func(c *Checker, raw RawValue, args ...any) any {
			start := time.Now()
			defer func() {
				if p := recover(); p != nil {
					if fail, ok := p.(checkFailed); ok {
						logger.Info("field check failed", "field", c.Field(), "message", fail.message)
					}
					panic(p)
				}
			}()
			v := next(c, raw, args...)
			logger.Debug("field validated", "field", c.Field(), "duration", time.Since(start))
			return v
		}
	}
}

// WithTrimmed returns a middleware that strips leading and trailing
// whitespace from every raw string before the validator sees it.
func WithTrimmed() Middleware {
	return func(next ValidatorFunc) ValidatorFunc {
		return func(c *Checker, raw RawValue, args ...any) any {
			return next(c, raw.transform(strings.TrimSpace), args...)
		}
	}
}

// WithSanitized returns a middleware that runs every raw string through the
// bluemonday policy before the validator sees it. A nil policy defaults to
// bluemonday.StrictPolicy, which strips all HTML.
func WithSanitized(policy *bluemonday.Policy) Middleware {
	if policy == nil {
		policy = bluemonday.StrictPolicy()
	}
	return func(next ValidatorFunc) ValidatorFunc {
		return func(c *Checker, raw RawValue, args ...any) any {
			return next(c, raw.transform(policy.Sanitize), args...)
		}
	}
}
