package services

import (
	"context"
	"time"
)

// Default deadline for a single collaborator call when none is configured.
const defaultCollaboratorTimeout = 5 * time.Second

// callBounded runs one attempt against an external collaborator under a
// bounded deadline. No retries: a failed attempt maps straight to the
// caller's fallback or sentinel, keeping lookup latency predictable.
func callBounded(parent context.Context, timeout time.Duration, call func(ctx context.Context) error) error {
	if timeout <= 0 {
		timeout = defaultCollaboratorTimeout
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	return call(ctx)
}
