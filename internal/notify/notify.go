package notify

// Notifier surfaces operation outcomes to the user. Every mutating console
// operation emits exactly one notification per invocation; reads never notify.
type Notifier interface {
	Success(title, description string)
	Failure(title, description string)
}

// Nop returns a no-op Notifier.
func Nop() Notifier {
	return nopNotifier{}
}

type nopNotifier struct{}

func (nopNotifier) Success(string, string) {}
func (nopNotifier) Failure(string, string) {}

var _ Notifier = nopNotifier{}
