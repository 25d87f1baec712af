package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fixway/fixway-jobs-service/internal/domain"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"authentication", domain.NewAuthenticationError("no identity"), http.StatusUnauthorized},
		{"authorization", domain.NewAuthorizationError("not yours"), http.StatusForbidden},
		{"not found", domain.NewNotFoundError("gone"), http.StatusNotFound},
		{"validation", domain.NewValidationError("bad input"), http.StatusBadRequest},
		{"conflict", domain.NewConflictError("raced"), http.StatusConflict},
		{"state", domain.NewOperationStateError("start", domain.StatusPending), http.StatusConflict},
		{"dependency", domain.NewDependencyError("rule service", errors.New("down")), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusOf(tc.err); got != tc.want {
				t.Errorf("StatusOf = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRenderMasksInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	Render(w, r, errors.New("pq: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "connection refused") {
		t.Errorf("internal detail leaked: %s", body)
	}
	if !strings.Contains(body, "internal error") {
		t.Errorf("body = %s, want the generic reason", body)
	}
}
