package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders adds security headers. Rendered variations are served by the media
// CDN, so images are allowed from any https origin.
func SecurityHeaders() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("X-Frame-Options", "DENY")
		ctx.Header("X-Content-Type-Options", "nosniff")
		ctx.Header("Referrer-Policy", "no-referrer")
		ctx.Header("Content-Security-Policy", "default-src 'self'; img-src 'self' https: data:; style-src 'self' 'unsafe-inline'")
		ctx.Next()
	}
}
