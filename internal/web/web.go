// Package web serves the server-rendered BMI form.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"massiohealth/internal/bmi"
	"massiohealth/internal/calculator"
	"massiohealth/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var tracer = otel.Tracer("web")

// page is the data rendered by templates/index.html.
type page struct {
	Form         bmi.Form
	CanCalculate bool
	Reference    []bmi.Band
}

// Handler renders the form. It keeps no state between requests: each POST
// carries the inputs and gets back the page for that interaction.
type Handler struct {
	tmpl *template.Template
}

// NewHandler parses the embedded templates.
func NewHandler() (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{tmpl: tmpl}, nil
}

// RegisterRoutes mounts the form pages.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Post("/calculate", h.Calculate)
	r.Post("/reset", h.Reset)
}

// Index handles GET / with an empty form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, bmi.Form{})
}

// Calculate handles POST /calculate. Invalid or incomplete input renders the
// form back without a result.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "web.calculate",
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	defer span.End()

	if err := r.ParseForm(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := bmi.Form{
		Weight: r.PostFormValue("weight"),
		Height: r.PostFormValue("height"),
	}

	start := time.Now()
	if form.Calculate() {
		elapsed := float64(time.Since(start).Microseconds()) / 1000.0
		calculator.Observe(ctx, "form", *form.Result, elapsed)

		span.SetAttributes(
			attribute.Float64("bmi.value", form.Result.Value),
			attribute.String("bmi.category", form.Result.Category.String()),
		)
		logger.Debug("form bmi computed",
			zap.Float64("bmi", form.Result.Value),
			zap.String("category", form.Result.Category.String()),
		)
	} else {
		span.AddEvent("computation.skipped")
	}
	span.SetStatus(codes.Ok, "")

	h.render(w, r, form)
}

// Reset handles POST /reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var form bmi.Form
	form.Reset()
	h.render(w, r, form)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, form bmi.Form) {
	data := page{
		Form:         form,
		CanCalculate: form.CanCalculate(),
		Reference:    bmi.Reference(),
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("render form", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// MustNewHandler is NewHandler for embedded templates known to parse.
func MustNewHandler() *Handler {
	h, err := NewHandler()
	if err != nil {
		panic(err)
	}
	return h
}
