package httperr

import (
	"net/http"

	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/go-chi/render"
)

type HttpError struct {
	Reason string `json:"reason"`
}

func NewHttpError(reason string) HttpError {
	return HttpError{Reason: reason}
}

// StatusOf maps the core's error kinds onto HTTP statuses. Unknown errors are
// reported as 500 without leaking their message.
func StatusOf(err error) int {
	switch domain.ErrorKindOf(err) {
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict, domain.KindState:
		return http.StatusConflict
	case domain.KindDependency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Render(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	render.Status(r, status)
	render.JSON(w, r, NewHttpError(message))
}
