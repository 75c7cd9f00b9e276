package log

import (
	"github.com/cockroachdb/errors"
)

// marshalStack is installed as zerolog.ErrorStackMarshaler. It emits the
// stack trace that cockroachdb/errors recorded when the error was created.
func marshalStack(err error) interface{} {
	if stack := extractStacktrace(err); stack != "" {
		return stack
	}
	return nil
}

func extractStacktrace(err error) string {
	for e := err; e != nil; e = errors.UnwrapOnce(e) {
		if details := errors.GetSafeDetails(e).SafeDetails; len(details) > 0 {
			return details[0]
		}
	}
	return ""
}
