package core

// Notifier receives achievement messages from a game.
// Notify is called synchronously when the event is detected and must not block.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) {
	f(msg)
}

// Discard is a Notifier that drops every message.
var Discard Notifier = NotifierFunc(func(string) {})

// OrDiscard returns n, or Discard when n is nil.
func OrDiscard(n Notifier) Notifier {
	if n == nil {
		return Discard
	}
	return n
}
