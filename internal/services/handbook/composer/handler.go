package composer

import (
	"bytes"
	"context"
	"log"
	"net/http"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/hooks.handbook/internal/platform/errors"
	"github.com/louisbranch/hooks.handbook/internal/platform/requestctx"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/platform/httpx"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/platform/i18n"
	"github.com/louisbranch/hooks.handbook/internal/services/handbook/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/hooks.handbook/internal/services/handbook/composer"

// Recorder observes page responses.
type Recorder interface {
	PageRendered(route string, statusCode int)
}

// HandlerOptions configures how a route table serves requests.
type HandlerOptions struct {
	Recorder Recorder
	// Tracer defaults to the global OpenTelemetry provider.
	Tracer trace.Tracer
}

// Handler serves the route table: GET and HEAD on a registered path render
// that route inside the page layout; anything else is a localized 404 or a
// 405.
func (t *RouteTable) Handler(opts HandlerOptions) http.Handler {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &routeHandler{table: t, recorder: opts.Recorder, tracer: tracer}
}

type routeHandler struct {
	table    *RouteTable
	recorder Recorder
	tracer   trace.Tracer
}

func (h *routeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !httpx.IsReadMethod(r) {
		httpx.MethodNotAllowed(w, http.MethodGet, http.MethodHead)
		h.record("", http.StatusMethodNotAllowed)
		return
	}

	loc, tag := i18n.ResolveLocalizer(r)
	ctx := templates.WithLocalizer(httpx.RequestContext(r), loc, tag)

	route, ok := h.table.Lookup(r.URL.Path)
	if !ok {
		h.writeError(ctx, w, http.StatusNotFound)
		h.record("", http.StatusNotFound)
		return
	}

	ctx, span := h.tracer.Start(ctx, "handbook.render_page", trace.WithAttributes(
		attribute.String("handbook.route", route.Path),
		attribute.String("handbook.page", route.Name),
	))
	defer span.End()

	body, err := renderPage(ctx, route.Name, route.Renderer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		status := apperrors.HTTPStatus(err)
		log.Printf("render page failed path=%s code=%s request_id=%s err=%v", route.Path, apperrors.CodeOf(err), requestctx.RequestIDFromContext(ctx), err)
		h.writeError(ctx, w, status)
		h.record(route.Path, status)
		return
	}
	if err := httpx.WriteHTML(w, http.StatusOK, body); err != nil {
		log.Printf("write page failed path=%s err=%v", route.Path, err)
	}
	h.record(route.Path, http.StatusOK)
}

func (h *routeHandler) record(route string, statusCode int) {
	if h.recorder != nil {
		h.recorder.PageRendered(route, statusCode)
	}
}

func (h *routeHandler) writeError(ctx context.Context, w http.ResponseWriter, statusCode int) {
	body, err := renderPage(ctx, templates.T(ctx, templates.ErrorTitleKey(statusCode)), templates.ErrorState(statusCode))
	if err != nil {
		log.Printf("render error page failed status=%d err=%v", statusCode, err)
		_ = httpx.WriteText(w, statusCode, http.StatusText(statusCode))
		return
	}
	_ = httpx.WriteHTML(w, statusCode, body)
}

// renderPage buffers the full document so a failing renderer never leaves a
// half-written 200 response.
func renderPage(ctx context.Context, title string, body templ.Component) ([]byte, error) {
	if body == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeRendererMissing, "page has no renderer", map[string]string{"title": title})
	}
	var buf bytes.Buffer
	if err := templates.Layout(title).Render(templ.WithChildren(ctx, body), &buf); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeRenderFailed, "render page "+title, err)
	}
	return buf.Bytes(), nil
}
