package server

import (
	"AdoptionTutorial_API/docs"
	"AdoptionTutorial_API/internal/auth"
	"AdoptionTutorial_API/internal/calllog"
	"AdoptionTutorial_API/internal/handler"
	"AdoptionTutorial_API/internal/middleware"
	"AdoptionTutorial_API/internal/storage"
	"AdoptionTutorial_API/internal/tutorial"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Options struct {
	Project        string
	ProjectDomain  string
	Secret         string
	RateLimitRPS   float64
	RateLimitBurst int
	AllowOrigins   []string
	// nil이면 무작위 seed
	Seeder *storage.Seeder
}

// NewRouter는 모든 라우트를 등록한 gin 엔진을 만든다.
// 등록되지 않은 method+path는 전부 NoRoute(400)로 간다.
func NewRouter(store storage.Store, opts Options) (*gin.Engine, error) {
	lessons, err := tutorial.Load(opts.Project, opts.ProjectDomain)
	if err != nil {
		return nil, err
	}
	seeder := opts.Seeder
	if seeder == nil {
		seeder = storage.NewSeeder(0)
	}
	hub := calllog.NewHub()
	rec := calllog.NewRecorder(store, hub)
	h := handler.New(store, seeder, lessons, hub, opts.Project)
	docs.SwaggerInfo.Title = opts.Project

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false
	router.Use(gin.Logger(), gin.Recovery())

	config := cors.DefaultConfig()
	if len(opts.AllowOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.AllowOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, handler.APIKeyHeader, middleware.AdminKeyHeader)
	router.Use(cors.New(config))
	router.Use(middleware.RateLimitMiddleware(opts.RateLimitRPS, opts.RateLimitBurst, lessons))

	logged := func(where string, what middleware.WhatFunc) gin.HandlerFunc {
		return middleware.CallLogMiddleware(rec, where, what)
	}
	apiKey := middleware.WhatHeader(handler.APIKeyHeader)

	router.GET("/", logged("GET /", middleware.WhatNone), h.Root)
	router.GET("/begin", logged("GET /begin", middleware.WhatNone), h.Begin)
	router.GET("/record", logged("GET /record", middleware.WhatQuery("id")), h.GetRecord)
	router.GET("/records", logged("GET /records", middleware.WhatNone), h.GetRecords)
	router.POST("/record", logged("POST /record", apiKey), h.AddRecord)
	router.PUT("/record", logged("PUT /record", apiKey), h.UpdateRecord)
	router.DELETE("/record/:id", logged("DEL /record", apiKey), h.DeleteRecord)
	router.GET("/publish", logged("GET /publish", middleware.WhatNone), h.Publish)

	admin := router.Group("/", middleware.AdminKeyMiddleware(auth.NewAdminSecret(opts.Secret), lessons))
	{
		admin.GET("/reset", h.Reset)
		admin.GET("/clear", h.Clear)
		admin.GET("/calls", h.ListCalls)
		admin.DELETE("/calls", h.DeleteCalls)
		admin.GET("/calls/live", h.LiveCalls)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(h.NoRoute)

	return router, nil
}
