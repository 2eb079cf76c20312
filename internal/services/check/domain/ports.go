package domain

import "context"

// CheckerPort is the external port for running diff spell checks
type CheckerPort interface {
	CheckDiff(ctx context.Context, in Input) (Report, error)
}
