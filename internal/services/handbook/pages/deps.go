package pages

import (
	"context"
	"time"

	"github.com/louisbranch/hooks.handbook/internal/platform/timeouts"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/demoapi"
)

// DemoSource supplies the resources listed by the useEffect demo.
type DemoSource interface {
	Users(ctx context.Context) ([]demoapi.User, error)
	Posts(ctx context.Context) ([]demoapi.Post, error)
	Comments(ctx context.Context) ([]demoapi.Comment, error)
}

// FetchRecorder observes demo fetch outcomes.
type FetchRecorder interface {
	DemoFetched(resource string, err error)
}

// Deps carries what the live demos need at render time.
type Deps struct {
	Demo         DemoSource
	Recorder     FetchRecorder
	FetchTimeout time.Duration
}

func (d Deps) fetchTimeout() time.Duration {
	if d.FetchTimeout > 0 {
		return d.FetchTimeout
	}
	return timeouts.DemoFetch
}
