package middleware

import (
	"log"

	"AdoptionTutorial_API/internal/auth"
	"AdoptionTutorial_API/internal/tutorial"

	"github.com/gin-gonic/gin"
)

const AdminKeyHeader = "admin_key"

// 관리자 엔드포인트 보호. 헤더 값이 SECRET과 정확히 같아야 통과
func AdminKeyMiddleware(secret *auth.AdminSecret, lessons *tutorial.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !secret.Matches(c.GetHeader(AdminKeyHeader)) {
			log.Printf("AdminKeyMiddleware(): rejected %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			c.AbortWithStatusJSON(lessons.Render(tutorial.AdminUnauthorized, nil))
			return
		}
		c.Next()
	}
}
