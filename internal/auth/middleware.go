package auth

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	apperrors "hoteladmin/pkg/errors"
	httputil "hoteladmin/pkg/http"
)

// RequireAdmin guards a route: it runs before the handler body and
// short-circuits with 401 when the bearer token is absent, malformed,
// expired, or signature-invalid. No state is touched on rejection.
func (s *Service) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.reject(w, apperrors.Unauthorized("Authorization token missing"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			s.reject(w, apperrors.Unauthorized("Invalid authorization header format"))
			return
		}

		if _, err := s.VerifyToken(parts[1]); err != nil {
			s.reject(w, err)
			return
		}

		next(w, r, ps)
	}
}

func (s *Service) reject(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		s.log.Error("failed to write error response", "middleware", "RequireAdmin", "error", writeErr)
	}
}
