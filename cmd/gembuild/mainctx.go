package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"gitlab.com/aquachain/gembuild/common/log"
	"gitlab.com/aquachain/gembuild/common/sense"
)

func parseTypicalDuration(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		// all digits means seconds
		if d, err = time.ParseDuration(s + "s"); err != nil {
			log.Error("failed to parse duration", "duration", s, "error", err)
			return 0
		}
	}
	return d
}

// mainContext is cancelled by SIGINT, SIGTERM or SIGHUP, or after
// SCHEDULE_TIMEOUT if that is set.
func mainContext() (context.Context, context.CancelFunc) {
	c := context.Background()
	var stopTimeout context.CancelFunc = func() {}
	if tm := parseTypicalDuration(sense.Getenv("SCHEDULE_TIMEOUT")); tm > 0 {
		log.Warn("scheduling timeout", "timeout", tm, "at", time.Now().Add(tm).Format(time.RFC3339))
		c, stopTimeout = context.WithTimeoutCause(c, tm, fmt.Errorf("on schedule"))
	}
	c, stopSignals := signal.NotifyContext(c, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	return c, func() {
		stopSignals()
		stopTimeout()
	}
}
