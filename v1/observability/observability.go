package observability

import "time"

// OperationContext describes one finished operation of an instrumented
// component.
type OperationContext struct {
	// Component is the reporting package, e.g. "datasource".
	Component string

	// Operation is the action performed, e.g. "find_all" or "insert".
	Operation string

	// Resource is the primary object the operation acted on. For database
	// operations this is the datasource name.
	Resource string

	// SubResource carries additional context, e.g. the table name.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the operation's failure, or nil on success.
	Error error

	// Size is an operation-specific magnitude, e.g. rows returned.
	Size int64

	// Metadata holds arbitrary additional attributes.
	Metadata map[string]interface{}
}

// Observer receives operation reports. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// NoopObserver discards every report.
type NoopObserver struct{}

// NewNoopObserver returns an observer that does nothing.
func NewNoopObserver() *NoopObserver {
	return &NoopObserver{}
}

// ObserveOperation implements Observer.
func (NoopObserver) ObserveOperation(OperationContext) {}
