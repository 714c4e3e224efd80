package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"massiohealth/internal/bmi"
	"massiohealth/internal/handlers"
	"massiohealth/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

const maxBodyBytes = 1 << 20

// Timed runs bmi.Calculate and returns its duration in milliseconds.
func Timed(m bmi.Measurement) (bmi.Result, float64, error) {
	start := time.Now()
	res, err := bmi.Calculate(m)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0
	return res, elapsed, err
}

// ---------------------------------------------------------------------------
// Handler: single computation
// ---------------------------------------------------------------------------

// CalculateBMI handles POST /calculator/bmi
//
// @Summary Calculate BMI
// @Description Computes weight / height² rounded to one decimal and classifies the unrounded value.
// @Tags calculator
// @Accept json
// @Produce json
// @Param payload body BMIRequest true "Weight in kg and height in m, both > 0"
// @Success 200 {object} BMIResponse
// @Failure 400 {object} ErrorResponse
// @Router /calculator/bmi [post]
func CalculateBMI(w http.ResponseWriter, r *http.Request) {
	const opName = "bmi"

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.bmi",
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req BMIRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("bmi.weight", req.Weight),
		attribute.Float64("bmi.height", req.Height),
	)

	res, elapsed, err := Timed(req.measurement())
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	Observe(ctx, "api", res, elapsed)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("bmi", res.Value),
		attribute.String("category", res.Category.String()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.Float64("bmi.value", res.Value),
		attribute.String("bmi.category", res.Category.String()),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("bmi computed",
		zap.Float64("weight", req.Weight),
		zap.Float64("height", req.Height),
		zap.Float64("bmi", res.Value),
		zap.Float64("raw", res.Raw),
		zap.String("category", res.Category.String()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, NewBMIResponse(req, res))
}

// ---------------------------------------------------------------------------
// Handler: batch computation (one child span per measurement)
// ---------------------------------------------------------------------------

// CalculateBatch handles POST /calculator/bmi/batch. Every measurement gets its
// own child span; the first invalid one fails the whole request.
//
// @Summary Calculate BMI for several measurements
// @Tags calculator
// @Accept json
// @Produce json
// @Param payload body BatchRequest true "Up to 100 measurements"
// @Success 200 {object} BatchResponse
// @Failure 400 {object} ErrorResponse
// @Router /calculator/bmi/batch [post]
func CalculateBatch(w http.ResponseWriter, r *http.Request) {
	const opName = "batch"

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.bmi.batch",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	switch n := len(req.Measurements); {
	case n == 0:
		observability.RecordError(ctx, span, logger, errorCounter, opName, "no measurements provided", errors.New("measurements array is empty"), http.StatusBadRequest, w)
		return
	case n > maxBatchSize:
		observability.RecordError(ctx, span, logger, errorCounter, opName, fmt.Sprintf("at most %d measurements per batch", maxBatchSize), fmt.Errorf("batch size %d", n), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.size", len(req.Measurements)))

	results := make([]BMIResponse, 0, len(req.Measurements))

	for i, m := range req.Measurements {
		_, itemSpan := tracer.Start(ctx, fmt.Sprintf("calculator.bmi.batch.item.%d", i),
			trace.WithAttributes(
				attribute.Int("batch.item.index", i),
				attribute.Float64("bmi.weight", m.Weight),
				attribute.Float64("bmi.height", m.Height),
			),
		)

		res, elapsed, err := Timed(m.measurement())
		if err != nil {
			err = fmt.Errorf("measurement %d: %w", i, err)

			itemSpan.RecordError(err)
			itemSpan.SetStatus(codes.Error, err.Error())
			itemSpan.End()

			span.RecordError(err)
			span.SetStatus(codes.Error, fmt.Sprintf("failed at measurement %d", i))

			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", opName)))

			logger.Error("batch measurement rejected",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("request_id", requestID),
			)

			handlers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		Observe(ctx, opName, res, elapsed)

		itemSpan.SetAttributes(
			attribute.Float64("bmi.value", res.Value),
			attribute.String("bmi.category", res.Category.String()),
		)
		itemSpan.SetStatus(codes.Ok, "")
		itemSpan.End()

		results = append(results, NewBMIResponse(m, res))
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("total", len(results)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("bmi batch computed",
		zap.Int("count", len(results)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, BatchResponse{
		Count:   len(results),
		Results: results,
	})
}

// ---------------------------------------------------------------------------
// Handler: reference table
// ---------------------------------------------------------------------------

// Categories handles GET /calculator/categories
//
// @Summary BMI reference table
// @Tags calculator
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /calculator/categories [get]
func Categories(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "calculator.categories")
	defer span.End()

	handlers.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: bmi.Reference()})
}
