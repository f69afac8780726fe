package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// validationError turns validator output into one readable line.
func validationError(err error) *apperrors.Error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Validation(fmt.Sprintf("validation error: %v", err))
	}

	msgs := make([]string, 0, len(fieldErrs))

	for _, e := range fieldErrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}

	return apperrors.Validation(fmt.Sprintf("validation error: %s", strings.Join(msgs, ", ")))
}

func respondWithSuccess(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, code int, error error) {
	respondWithSuccess(w, code, models.ErrorResponse{Error: error.Error()})
}

func respondWithAppError(w http.ResponseWriter, err *apperrors.Error) {
	respondWithSuccess(w, err.HTTPStatus(), models.ErrorResponse{Error: err.Message})
}

// respondWithServiceError writes a service failure. Tagged errors carry their
// own status and message; anything else is logged and hidden behind a 500.
func (a *Api) respondWithServiceError(w http.ResponseWriter, err error, service string) {
	var appErr *apperrors.Error

	if !apperrors.As(err, &appErr) || appErr.Code == apperrors.CodeInternal {
		a.logger.Error(err.Error(), "service", service)
		respondWithError(w, http.StatusInternalServerError, apperrors.ErrInternal)
		return
	}

	a.logger.Warn(appErr.Message, "service", service)
	respondWithAppError(w, appErr)
}

func decodeJson(r *http.Request, params any) error {
	if err := json.NewDecoder(r.Body).Decode(params); err != nil {
		return fmt.Errorf("error decoding json: %v", err)
	}

	return nil
}

// decodeAndValidate decodes the body into params and validates it, writing a
// 400 and returning false when either step fails.
func (a *Api) decodeAndValidate(w http.ResponseWriter, r *http.Request, params any, service string) bool {
	if err := decodeJson(r, params); err != nil {
		a.logger.Warn(err.Error(), "service", service)
		respondWithAppError(w, apperrors.Validation(err.Error()))
		return false
	}

	if err := validate.Struct(params); err != nil {
		appErr := validationError(err)
		a.logger.Warn(appErr.Message, "service", service)
		respondWithAppError(w, appErr)
		return false
	}

	return true
}
