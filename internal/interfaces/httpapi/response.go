package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

const (
	internalErrorMessage = "Erro interno"
	routeNotFoundMessage = "Rota não encontrada"

	// statusClientClosedRequest is logged when the caller went away mid request.
	statusClientClosedRequest = 499
)

type errorBody struct {
	Error string `json:"error"`
}

type mappedError struct {
	HTTPStatus int
	Message    string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, logger *logging.Logger, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed",
			"status", mapped.HTTPStatus,
			"error", err,
		)
	}
	writeJSON(ctx, w, mapped.HTTPStatus, errorBody{Error: mapped.Message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: internalErrorMessage})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	message, ok := usecase.PublicMessage(err)
	if !ok {
		message = internalErrorMessage
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: message}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Message: message}
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{HTTPStatus: http.StatusForbidden, Message: message}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{HTTPStatus: http.StatusServiceUnavailable, Message: message}
	case errors.Is(err, usecase.ErrUpstream):
		return mappedError{HTTPStatus: http.StatusBadGateway, Message: message}
	case usecase.IsCanceled(err):
		return mappedError{HTTPStatus: statusClientClosedRequest, Message: "Requisição cancelada"}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Message: internalErrorMessage}
	}
}
