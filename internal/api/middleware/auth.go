package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/staysuite/pricing-service/internal/api/handlers"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя.
// Заголовок проставляет API gateway после проверки токена.
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "отсутствует ID пользователя"

type contextKey string

const userIDKey contextKey = "userID"

// Auth проверяет наличие X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(UserIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
