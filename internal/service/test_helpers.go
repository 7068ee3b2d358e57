package service

import (
	"context"
	"time"

	"github.com/pfdash/backend/internal/auth"
)

// testNow is the instant every service test evaluates against.
var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

// testContextWithUser creates a context with authenticated user claims for testing
func testContextWithUser(userID string) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UID:   userID,
		Email: userID + "@test.local",
	})
}

// testSchedulerContext creates a context authenticated as Cloud Scheduler.
func testSchedulerContext() context.Context {
	return auth.WithScheduler(context.Background())
}
