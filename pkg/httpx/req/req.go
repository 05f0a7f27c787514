package req

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// Validate checks a decoded query struct against its validate tags.
func Validate(ctx context.Context, dest any, code failure.ErrorCode) error {
	if err := validate.StructCtx(ctx, dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(code),
			failure.WithDescription(describe(err)),
		)
	}

	return nil
}

// describe renders field errors as "limit must satisfy max=100" instead of the
// validator's struct-qualified text.
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	return strings.Join(lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
		if fe.Param() == "" {
			return fmt.Sprintf("%s must satisfy %s", strings.ToLower(fe.Field()), fe.Tag())
		}

		return fmt.Sprintf("%s must satisfy %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param())
	}), "; ")
}

// IntQuery reads an optional integer query parameter.
func IntQuery(r *http.Request, name string, fallback int, code failure.ErrorCode) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.NewInvalidArgumentError(
			"invalid "+name,
			failure.WithCode(code),
			failure.WithDescription(name+" must be an integer"),
		)
	}

	return n, nil
}
