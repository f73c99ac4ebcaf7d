package grammar

import "fmt"

// traceListeners holds the callbacks registered via RegisterTraceListener.
// Invocation is synchronous, unbuffered, in registration order -- there is
// no logging library in this package's dependency stack, matching the rest
// of this module's ambient diagnostics.
var traceListeners []func(string)

// RegisterTraceListener registers a callback invoked with a human-readable
// line each time the nullable solver marks a symbol nullable or the FIRST
// or FOLLOW solver grows a symbol's set. Returns a function that
// unregisters the listener.
func RegisterTraceListener(fn func(string)) (unregister func()) {
	traceListeners = append(traceListeners, fn)
	idx := len(traceListeners) - 1
	return func() {
		traceListeners[idx] = nil
	}
}

func notifyTrace(format string, args ...interface{}) {
	if len(traceListeners) == 0 {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	for _, fn := range traceListeners {
		if fn != nil {
			fn(msg)
		}
	}
}
