package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// DefaultAllowOrigins - источники по умолчанию для локальной разработки фронтенда
var DefaultAllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// CORS - middleware для настройки Cross-Origin Resource Sharing. API только читает
// данные, поэтому разрешены GET и OPTIONS. Пустой список origins - DefaultAllowOrigins.
func CORS(origins []string) fiber.Handler {
	if len(origins) == 0 {
		origins = DefaultAllowOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:  strings.Join(origins, ","),
		AllowMethods:  "GET,OPTIONS",
		AllowHeaders:  "Content-Type,Accept,Accept-Language," + RequestIDHeader,
		ExposeHeaders: RequestIDHeader,
	})
}
