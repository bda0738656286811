package middleware

import (
	"AdoptionTutorial_API/internal/calllog"

	"github.com/gin-gonic/gin"
)

// 호출 기록의 what 값을 요청에서 꺼내는 함수
type WhatFunc func(c *gin.Context) string

func WhatHeader(name string) WhatFunc {
	return func(c *gin.Context) string { return c.GetHeader(name) }
}

func WhatQuery(name string) WhatFunc {
	return func(c *gin.Context) string { return c.Query(name) }
}

func WhatNone(*gin.Context) string { return calllog.Placeholder }

// 핸들러 실행 전에 호출 기록 한 건을 남긴다
func CallLogMiddleware(rec *calllog.Recorder, where string, what WhatFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec.Record(where, what(c))
		c.Next()
	}
}
