package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// Gateway secret keys: sk_test_..., sk_live_...
	secretKeyPattern = regexp.MustCompile(`^sk_(test|live)_[A-Za-z0-9]+$`)

	// Primary account numbers, unformatted.
	cardNumberPattern = regexp.MustCompile(`^[0-9]{12,19}$`)

	// Basic auth header value; the gateway key is its username.
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)

	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)
)

// DefaultRedactOptions returns the masq options applied to every log record.
// Extend with project-specific options:
//
//	opts := append(logging.DefaultRedactOptions(),
//	    masq.WithFieldName("Iban"),
//	)
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("auth"),
		masq.WithFieldName("secretKey"),
		masq.WithFieldName("secret_key"),
		masq.WithFieldName("SecretKey"),

		// Cardholder data, as attr keys and as struct field names.
		masq.WithFieldName("number"),
		masq.WithFieldName("Number"),
		masq.WithFieldName("cvc"),
		masq.WithFieldName("Cvc"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(secretKeyPattern),
		masq.WithRegex(cardNumberPattern),
		masq.WithRegex(basicAuthPattern),
		masq.WithRegex(bearerPattern),
	}
}

// NewReplaceAttr creates a ReplaceAttr function for slog.HandlerOptions
// that redacts sensitive data, on top of DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
