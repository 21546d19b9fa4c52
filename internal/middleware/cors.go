package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ekthaa/internal/config"
)

// CORS returns a middleware that allows the configured web origins. The archive
// headers and Content-Disposition are exposed so browsers can read the download
// name of a generated invoice.
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length", "X-Request-ID", "X-Archive-Key", "X-Archive-URL"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
