// Package notify is the one-way notification boundary. The gateway fires a
// notification for every failed call; what renders it (toast, alert, log
// line) is up to the installed Notifier.
package notify

import "go.uber.org/zap"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

//go:generate mockgen -destination=notifymocks_test.go -package=notify_test github.com/fynlo/fynlo-go/notify Notifier
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// Ensure LogNotifier implements the Notifier interface
var _ Notifier = &LogNotifier{}

// LogNotifier renders notifications as log lines. It is the default sink
// when no UI-facing notifier is installed.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(title, message string, severity Severity) {
	sugar := zap.S().With("title", title, "severity", severity)

	switch severity {
	case SeverityError:
		sugar.Errorw(message)
	case SeverityWarning:
		sugar.Warnw(message)
	default:
		sugar.Infow(message)
	}
}
