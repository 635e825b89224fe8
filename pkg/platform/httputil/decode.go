package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "credmgr/pkg/domain-errors"
)

// DecodeJSON reads one JSON document from the body into a new T. A missing
// or malformed body is answered with bad_request and DecodeJSON reports false.
//
// Usage:
//
//	req, ok := httputil.DecodeJSON[models.KeyAndPassword](w, r, h.logger, ctx, requestID)
//	if !ok {
//	    return
//	}
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	err := json.NewDecoder(r.Body).Decode(&req)
	if err == nil {
		return &req, true
	}
	logger.WarnContext(ctx, "failed to decode request body",
		"error", err,
		"request_id", requestID,
	)
	msg := "invalid request body"
	if errors.Is(err, io.EOF) {
		msg = "request body is required"
	}
	WriteError(w, dErrors.New(dErrors.CodeBadRequest, msg))
	return nil, false
}

// Validatable is implemented by request types that support validation.
type Validatable interface {
	Validate() error
}

// Normalizable is implemented by request types that support normalization.
type Normalizable interface {
	Normalize()
}

// PrepareRequest normalizes then validates req when it supports either step.
func PrepareRequest(req any) error {
	if n, ok := req.(Normalizable); ok {
		n.Normalize()
	}
	if v, ok := req.(Validatable); ok {
		return v.Validate()
	}
	return nil
}

// DecodeAndPrepare combines JSON decoding with PrepareRequest. Validation
// failures that are not already domain errors are reported as validation_failed.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	req, ok := DecodeJSON[T](w, r, logger, ctx, requestID)
	if !ok {
		return nil, false
	}

	if err := PrepareRequest(req); err != nil {
		logger.WarnContext(ctx, "invalid request",
			"error", err,
			"request_id", requestID,
		)
		var domainErr *dErrors.Error
		if errors.As(err, &domainErr) {
			WriteError(w, err)
		} else {
			WriteError(w, dErrors.New(dErrors.CodeValidation, err.Error()))
		}
		return nil, false
	}

	return req, true
}
