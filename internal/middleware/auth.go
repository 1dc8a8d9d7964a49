package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindscape-app/backend/internal/services"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth verifies the bearer token on every request it wraps and binds
// the verified user id to the request context. A missing token and an invalid
// one produce the same 401 body, so callers learn nothing about why a
// credential was rejected.
func RequireAuth(tokens *services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				respondUnauthenticated(w)
				return
			}

			userIDHex, err := tokens.Verify(token)
			if err != nil {
				respondUnauthenticated(w)
				return
			}

			userID, err := primitive.ObjectIDFromHex(userIDHex)
			if err != nil {
				respondUnauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user's id bound by RequireAuth. Handlers
// behind the gate must scope all data access to this identity, never to a
// client-supplied field.
func UserID(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(userIDKey).(primitive.ObjectID)
	return id, ok
}

// extractBearerToken returns the token from an "Authorization: Bearer <t>"
// header value, or "" when the header is absent or not bearer-shaped.
func extractBearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func respondUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Authentication required"})
}
