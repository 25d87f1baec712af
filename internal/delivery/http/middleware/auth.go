package middleware

import (
	"context"
	"net/http"

	"github.com/fixway/fixway-jobs-service/internal/delivery/http/httperr"
	"github.com/fixway/fixway-jobs-service/internal/domain"
	"github.com/go-chi/render"
)

type actorKey struct{}

// Auth trusts the gateway-injected identity headers. Requests without a valid
// actor never reach a handler.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := r.Header.Get("X-Actor-ID")
		role := domain.Role(r.Header.Get("X-Actor-Role"))

		if actorID == "" || !domain.ValidRole(role) {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, httperr.NewHttpError("missing or invalid actor identity"))
			return
		}

		ctx := context.WithValue(r.Context(), actorKey{}, domain.Actor{ID: actorID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ActorFrom(r *http.Request) domain.Actor {
	actor, _ := r.Context().Value(actorKey{}).(domain.Actor)
	return actor
}
