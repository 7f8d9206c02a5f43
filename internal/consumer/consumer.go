// Package consumer contains interface of upstream directory consumer.
package consumer

import (
	"context"

	"github.com/fritter-net/pheme/internal/health"
)

// Consumer keeps local reference copies of externally-owned entities
// up to date.
type Consumer interface {
	health.Pinger

	Run(ctx context.Context) error
}
