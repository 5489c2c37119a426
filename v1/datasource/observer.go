package datasource

import (
	"time"

	"github.com/Aleph-Alpha/dal/v1/observability"
)

// observeOperation notifies the observer about a finished statement if one
// is configured. The datasource name is the resource.
func (c *Conn) observeOperation(operation string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "datasource",
		Operation: operation,
		Resource:  c.name,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
