package definition

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Option configures loading and set construction.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	messages func(field.Config) field.Message
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the logger used while loading definitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMessages supplies the message override of fields that declare none,
// for example a localized catalog.
func WithMessages(fn func(field.Config) field.Message) Option {
	return func(o *options) {
		o.messages = fn
	}
}
