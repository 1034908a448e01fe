package pages

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	apperrors "github.com/louisbranch/hooks.handbook/internal/platform/errors"
	"github.com/louisbranch/hooks.handbook/internal/platform/requestctx"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/demoapi"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/templates"
	"golang.org/x/sync/errgroup"
)

// effectDemo fetches the three demo resources concurrently on every render.
// A failed resource renders its empty state; the page itself still renders.
type effectDemo struct {
	deps Deps
}

func (d effectDemo) Render(ctx context.Context, w io.Writer) error {
	return templates.EffectDemo(d.load(ctx)).Render(ctx, w)
}

func (d effectDemo) load(ctx context.Context) templates.EffectDemoView {
	var view templates.EffectDemoView
	if d.deps.Demo == nil {
		return view
	}
	ctx, cancel := context.WithTimeout(ctx, d.deps.fetchTimeout())
	defer cancel()

	// Each goroutine owns one field of view and never returns an error: a
	// failing resource must not cancel its siblings.
	var g errgroup.Group
	g.Go(func() error {
		users, err := d.deps.Demo.Users(ctx)
		if d.observe(ctx, demoapi.ResourceUsers, err) {
			view.Users = userRows(users)
		}
		return nil
	})
	g.Go(func() error {
		posts, err := d.deps.Demo.Posts(ctx)
		if d.observe(ctx, demoapi.ResourcePosts, err) {
			view.Posts = postRows(posts)
		}
		return nil
	})
	g.Go(func() error {
		comments, err := d.deps.Demo.Comments(ctx)
		if d.observe(ctx, demoapi.ResourceComments, err) {
			view.Comments = commentRows(comments)
		}
		return nil
	})
	_ = g.Wait()
	return view
}

func (d effectDemo) observe(ctx context.Context, resource demoapi.Resource, err error) bool {
	if d.deps.Recorder != nil {
		d.deps.Recorder.DemoFetched(string(resource), err)
	}
	if err != nil {
		log.Printf("demo fetch failed resource=%s code=%s request_id=%s err=%v", resource, apperrors.CodeOf(err), requestctx.RequestIDFromContext(ctx), err)
		return false
	}
	return true
}

func userRows(users []demoapi.User) []templates.DemoUser {
	rows := make([]templates.DemoUser, 0, len(users))
	for _, user := range users {
		rows = append(rows, templates.DemoUser{
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Phone:    user.Phone,
			Company:  user.Company.Name,
		})
	}
	return rows
}

func postRows(posts []demoapi.Post) []templates.DemoPost {
	rows := make([]templates.DemoPost, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, templates.DemoPost{Title: post.Title, Body: post.Body, UserID: post.UserID})
	}
	return rows
}

func commentRows(comments []demoapi.Comment) []templates.DemoComment {
	rows := make([]templates.DemoComment, 0, len(comments))
	for _, comment := range comments {
		rows = append(rows, templates.DemoComment{
			Name:   comment.Name,
			Email:  comment.Email,
			Body:   comment.Body,
			PostID: comment.PostID,
		})
	}
	return rows
}

// expensiveIterations sizes the memo demo's deliberately slow loop.
const expensiveIterations = 50_000_000

func expensiveCalculation() int {
	result := 0
	for i := 0; i < expensiveIterations; i++ {
		result++
	}
	return result
}

// memoDemo computes its value on first render and reuses it afterwards.
type memoDemo struct {
	value func() int
}

func newMemoDemo(compute func() int) memoDemo {
	return memoDemo{value: sync.OnceValue(compute)}
}

func (d memoDemo) Render(ctx context.Context, w io.Writer) error {
	return templates.MemoDemo(d.value()).Render(ctx, w)
}

// idDemo issues fresh identifiers on every render.
type idDemo struct {
	newID func() string
}

func (d idDemo) Render(ctx context.Context, w io.Writer) error {
	newID := d.newID
	if newID == nil {
		newID = uuid.NewString
	}
	prefix := newID()
	return templates.IDDemo(prefix+"-email", prefix+"-password").Render(ctx, w)
}

var (
	_ templ.Component = effectDemo{}
	_ templ.Component = memoDemo{}
	_ templ.Component = idDemo{}
)
