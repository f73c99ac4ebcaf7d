package automaton

import "fmt"

var traceListeners []func(string)

// RegisterTraceListener registers a callback invoked with a human-readable
// line each time the builder discovers a new canonical state. Returns a
// function that unregisters the listener.
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
	msg := fmt.Sprintf(format, args...)
	for _, fn := range traceListeners {
		if fn != nil {
			fn(msg)
		}
	}
}
