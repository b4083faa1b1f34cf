// SPDX-License-Identifier: MIT

package tracker

import "github.com/rs/zerolog"

// Option configures a tracker.
type Option func(*options)

type options struct {
	logger  zerolog.Logger
	degrees bool
}

// WithLogger sets the logger for update failures. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithDegrees makes a phase tracker report degrees instead of radians.
// Other trackers ignore it.
func WithDegrees() Option {
	return func(o *options) { o.degrees = true }
}

func gatherOptions(user ...Option) options {
	o := options{logger: zerolog.Nop()}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
