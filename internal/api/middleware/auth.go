package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	msgTokenMissing = "Authorization token missing."
	msgUnauthorized = "Unauthorized."
	msgForbidden    = "Forbidden."
)

var errInvalidClaims = errors.New("invalid token claims")

// Claims полезная нагрузка токена: sub - ID пользователя, role - admin или customer
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer токен (HS256) и кладет пользователя в контекст
func Auth(secret string, logger Logger) func(http.Handler) http.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgTokenMissing)
				return
			}

			actor, err := parseActor(parser, key, token)
			if err != nil {
				logger.Warn("%s %s - rejected token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireAdmin пропускает только администраторов, ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		if !ok || !actor.IsAdmin() {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func parseActor(parser *jwt.Parser, key []byte, raw string) (domain.Actor, error) {
	claims := &Claims{}
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}); err != nil {
		return domain.Actor{}, err
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: sub: %v", errInvalidClaims, err)
	}

	role := domain.Role(claims.Role)
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return domain.Actor{}, fmt.Errorf("%w: unknown role %q", errInvalidClaims, claims.Role)
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}
