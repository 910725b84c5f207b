// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Injected so use cases stay
// deterministic under test; implementations return UTC.
type Clock interface {
	Now() time.Time
}
