package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// DemoUser is one user row of the effect demo.
type DemoUser struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Company  string
}

// DemoPost is one post row of the effect demo.
type DemoPost struct {
	Title  string
	Body   string
	UserID int
}

// DemoComment is one comment row of the effect demo.
type DemoComment struct {
	Name   string
	Email  string
	Body   string
	PostID int
}

// EffectDemoView holds whatever the demo API returned. An empty list renders
// the resource's empty state.
type EffectDemoView struct {
	Users    []DemoUser
	Posts    []DemoPost
	Comments []DemoComment
}

// EffectDemo renders the three fetched resources side by side.
func EffectDemo(view EffectDemoView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="data">`)

		openResource(ctx, hw, "users", "demo.users")
		if len(view.Users) == 0 {
			emptyState(ctx, hw)
		} else {
			hw.raw("<ul>")
			for _, user := range view.Users {
				hw.raw(`<li class="data-item user-item"><h2>`)
				hw.text(user.Name)
				hw.raw(" <small>(@")
				hw.text(user.Username)
				hw.raw(")</small></h2>")
				labeled(ctx, hw, "demo.email", user.Email)
				labeled(ctx, hw, "demo.phone", user.Phone)
				labeled(ctx, hw, "demo.company", user.Company)
				hw.raw("</li>")
			}
			hw.raw("</ul>")
		}
		hw.raw("</div>")

		openResource(ctx, hw, "posts", "demo.posts")
		if len(view.Posts) == 0 {
			emptyState(ctx, hw)
		} else {
			hw.raw("<ul>")
			for _, post := range view.Posts {
				hw.raw(`<li class="data-item post-item"><h3>`)
				hw.text(post.Title)
				hw.raw("</h3><p>")
				hw.text(post.Body)
				hw.raw("</p><small>")
				hw.text(T(ctx, "demo.by_user", post.UserID))
				hw.raw("</small></li>")
			}
			hw.raw("</ul>")
		}
		hw.raw("</div>")

		openResource(ctx, hw, "comments", "demo.comments")
		if len(view.Comments) == 0 {
			emptyState(ctx, hw)
		} else {
			hw.raw("<ul>")
			for _, comment := range view.Comments {
				hw.raw(`<li class="data-item comment-item"><p><strong>`)
				hw.text(comment.Name)
				hw.raw("</strong> <em>(")
				hw.text(comment.Email)
				hw.raw(")</em></p><p>")
				hw.text(comment.Body)
				hw.raw("</p><small>")
				hw.text(T(ctx, "demo.on_post", comment.PostID))
				hw.raw("</small></li>")
			}
			hw.raw("</ul>")
		}
		hw.raw("</div></div>")
		return hw.err
	})
}

func openResource(ctx context.Context, hw *htmlWriter, id, headingKey string) {
	hw.raw(`<div class="resource"`)
	hw.attr("id", "demo-"+id)
	hw.raw("><h4>")
	hw.text(T(ctx, headingKey))
	hw.raw("</h4>")
}

func labeled(ctx context.Context, hw *htmlWriter, labelKey, value string) {
	hw.raw("<p><strong>")
	hw.text(T(ctx, labelKey))
	hw.raw("</strong> ")
	hw.text(value)
	hw.raw("</p>")
}

func emptyState(ctx context.Context, hw *htmlWriter) {
	hw.raw(`<p class="empty">`)
	hw.text(T(ctx, "demo.empty"))
	hw.raw("</p>")
}

// MemoDemo shows a memoized result.
func MemoDemo(result int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<p class="memo-result"`)
		hw.attr("data-result", strconv.Itoa(result))
		hw.raw(">")
		hw.text(T(ctx, "demo.memo_result", result))
		hw.raw(`</p><p class="hint">`)
		hw.text(T(ctx, "demo.memo_note"))
		hw.raw("</p>")
		return hw.err
	})
}

// IDDemo renders a small form whose labels point at inputs through the
// given identifiers.
func IDDemo(emailID, passwordID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<form class="id-demo"><label`)
		hw.attr("for", emailID)
		hw.raw(">")
		hw.text(T(ctx, "demo.id_email"))
		hw.raw(`</label><input type="email"`)
		hw.attr("id", emailID)
		hw.raw("><label")
		hw.attr("for", passwordID)
		hw.raw(">")
		hw.text(T(ctx, "demo.id_password"))
		hw.raw(`</label><input type="password"`)
		hw.attr("id", passwordID)
		hw.raw(`></form><p class="hint">`)
		hw.text(T(ctx, "demo.id_hint"))
		hw.raw("</p>")
		return hw.err
	})
}
