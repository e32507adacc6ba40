// Package scheduler provides the background interval loop that keeps domain
// warmup promotion running independently of the cron triggers.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")
)
