package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
)

// IDParam is the route parameter that names a single todo.
const IDParam = "id"

// ObjectID returns middleware that rejects requests whose URL parameter is
// not a 24-character hex ObjectID. Rejected requests get a 400 "Invalid id"
// and never reach the handler.
func ObjectID(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !primitive.IsValidObjectID(chi.URLParam(r, param)) {
				dto.WriteErrorResponse(w, r, dto.NewStatusError(http.StatusBadRequest, dto.MsgInvalidID))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
