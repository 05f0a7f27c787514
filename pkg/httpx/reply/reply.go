package reply

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"price_checker/pkg/contextx"
	"price_checker/pkg/errcodes"
	"price_checker/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// codedError is an error that carries its own code and display message.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
	ErrorMessage() string
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var coded codedError
	if errors.As(err, &coded) {
		response.Code = cmp.Or(response.Code, coded.ErrorCode().String())
		response.Message = cmp.Or(response.Message, coded.ErrorMessage())
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		writeError(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		writeError(ctx, w, http.StatusNotFound, response)
	case failure.IsUnprocessableEntityError(err):
		writeError(ctx, w, http.StatusUnprocessableEntity, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		writeError(ctx, w, http.StatusInternalServerError, response)
	}
}

// TooManyRequests replies 429 without logging, rejected requests are expected.
func TooManyRequests(ctx context.Context, w http.ResponseWriter) {
	writeError(ctx, w, http.StatusTooManyRequests, errorResponse{
		Code:      errcodes.TooManyRequests.String(),
		SupportID: supportID(ctx),
	})
}

// NotFound replies 404 for a resource that is switched off rather than missing.
func NotFound(ctx context.Context, w http.ResponseWriter, code failure.ErrorCode, message string) {
	writeError(ctx, w, http.StatusNotFound, errorResponse{
		Code:      code.String(),
		Message:   message,
		SupportID: supportID(ctx),
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, statusCode int, response errorResponse) {
	response.Error = cmp.Or(response.Message, strings.ToLower(http.StatusText(statusCode)))

	JSON(ctx, w, statusCode, response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
