package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers"
)

type contextKey string

const tenantIDKey contextKey = "tenantID"

// Заголовки аутентификации. Сервис работает за API gateway консоли,
// который проставляет тенанта после проверки сессии.
const (
	HeaderTenantID = "X-Tenant-Id"
	HeaderAPIKey   = "X-API-Key"
)

const (
	msgMissingAPIKey   = "chave de API ausente ou inválida"
	msgMissingTenantID = "identificador do tenant ausente ou inválido"
)

// Auth проверяет API ключ и извлекает тенанта из заголовка запроса.
// Пустой apiKey отключает проверку ключа (локальная разработка).
func Auth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey != "" && r.Header.Get(HeaderAPIKey) != apiKey {
				handlers.RespondUnauthorized(w, msgMissingAPIKey)
				return
			}

			tenantID, err := uuid.Parse(r.Header.Get(HeaderTenantID))
			if err != nil || tenantID == uuid.Nil {
				handlers.RespondUnauthorized(w, msgMissingTenantID)
				return
			}

			ctx := context.WithValue(r.Context(), tenantIDKey, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantID извлекает тенанта из контекста запроса
func TenantID(ctx context.Context) (uuid.UUID, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	return tenantID, ok
}
