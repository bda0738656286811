package middleware

import (
	"log"
	"time"

	"AdoptionTutorial_API/internal/tutorial"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// limiter가 사용되지 않으면 이 시간 뒤에 정리됨
const limiterTTL = time.Hour

// 클라이언트 IP별 요청 제한. rps <= 0 이면 제한 없음
func RateLimitMiddleware(rps float64, burst int, lessons *tutorial.Table) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Limit(rps), burst), limiterTTL
	}, func(c *gin.Context) {
		log.Printf("RateLimitMiddleware(): too many requests from %s", c.ClientIP())
		c.AbortWithStatusJSON(lessons.Render(tutorial.RateLimited, nil))
	})
}
