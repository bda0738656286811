/**
* Name: 			handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러 (튜토리얼 envelope 응답)
* Workflow: 		저장소 조회/변경 후 레슨 테이블에서 응답 렌더링
 */
package handler

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"AdoptionTutorial_API/internal/calllog"
	"AdoptionTutorial_API/internal/storage"
	"AdoptionTutorial_API/internal/tutorial"

	"github.com/gin-gonic/gin"
)

// 모든 핸들러가 공유하는 의존성
type Handler struct {
	store   storage.Store
	seeder  *storage.Seeder
	lessons *tutorial.Table
	hub     *calllog.Hub
	project string
	landing []byte
}

var landingTemplate = template.Must(template.New("landing").Parse(
	`<h1>{{.}}</h1><p>Oh, hi! There's not much to see here - open the <a href="/swagger/index.html">API docs</a> or import the collection into Postman instead.</p>`,
))

func New(store storage.Store, seeder *storage.Seeder, lessons *tutorial.Table, hub *calllog.Hub, project string) *Handler {
	var buf bytes.Buffer
	if err := landingTemplate.Execute(&buf, project); err != nil {
		log.Printf("handler.New(): failed to render landing page: %v", err)
	}
	return &Handler{
		store:   store,
		seeder:  seeder,
		lessons: lessons,
		hub:     hub,
		project: project,
		landing: buf.Bytes(),
	}
}

func (h *Handler) respond(c *gin.Context, k tutorial.Key, data any) {
	c.JSON(h.lessons.Render(k, data))
}

// 저장소 오류는 로그를 남기고 일반 500 응답
func (h *Handler) internalError(c *gin.Context, where string, err error) {
	log.Printf("[ERROR] %s: %v", where, err)
	h.respond(c, tutorial.InternalError, nil)
}

// NoRoute godoc
// @Summary      잘못된 경로 (Invalid route)
// @Description  등록되지 않은 method+path 조합은 모두 400 invalid route envelope를 받습니다.
// @Tags         Tutorial
// @Produce      json
// @Failure      400 {object} tutorial.Envelope
func (h *Handler) NoRoute(c *gin.Context) {
	h.respond(c, tutorial.RouteInvalid, nil)
}

// Root godoc
// @Summary      시작 페이지 (Root)
// @Description  JSON envelope를 반환합니다. 브라우저(Accept: text/html)에는 간단한 HTML 페이지를 보여줍니다.
// @Tags         Tutorial
// @Produce      json,html
// @Success      200 {object} tutorial.Envelope
// @Router       / [get]
func (h *Handler) Root(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.Data(http.StatusOK, "text/html; charset=utf-8", h.landing)
		return
	}
	h.respond(c, tutorial.RootOK, nil)
}

// Begin godoc
// @Summary      튜토리얼 시작 (Begin learning)
// @Description  과정 이름과 첫 번째 레슨을 반환합니다.
// @Tags         Tutorial
// @Produce      json
// @Success      200 {object} tutorial.Envelope
// @Router       /begin [get]
func (h *Handler) Begin(c *gin.Context) {
	h.respond(c, tutorial.BeginOK, gin.H{"course": h.project})
}

// Publish godoc
// @Summary      워크스페이스 공개 (Publish)
// @Description  워크스페이스와 프로필 공개 방법을 안내합니다.
// @Tags         Tutorial
// @Produce      json
// @Success      200 {object} tutorial.Envelope
// @Router       /publish [get]
func (h *Handler) Publish(c *gin.Context) {
	h.respond(c, tutorial.PublishOK, nil)
}
