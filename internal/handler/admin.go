package handler

import (
	"log"

	"AdoptionTutorial_API/internal/models"
	"AdoptionTutorial_API/internal/storage"
	"AdoptionTutorial_API/internal/tutorial"

	"github.com/gin-gonic/gin"
)

// Reset godoc
// @Summary      저장소 초기화 (Admin)
// @Description  모든 레코드를 지우고 새 기본 레코드 5개를 생성합니다.
// @Tags         Admin
// @Produce      json
// @Security     AdminKeyAuth
// @Success      200 {object} tutorial.Envelope
// @Failure      401 {object} tutorial.Envelope
// @Failure      500 {object} tutorial.Envelope
// @Router       /reset [get]
func (h *Handler) Reset(c *gin.Context) {
	if err := h.store.Replace(h.seeder.Generate(storage.DefaultRecordCount)); err != nil {
		h.internalError(c, "Reset(): failed to reset records", err)
		return
	}
	log.Println("Reset(): Database cleared, default data added")
	h.respond(c, tutorial.ResetOK, nil)
}

// Clear godoc
// @Summary      저장소 비우기 (Admin)
// @Description  모든 레코드를 지웁니다. 새 레코드는 생성하지 않습니다.
// @Tags         Admin
// @Produce      json
// @Security     AdminKeyAuth
// @Success      200 {object} tutorial.Envelope
// @Failure      401 {object} tutorial.Envelope
// @Failure      500 {object} tutorial.Envelope
// @Router       /clear [get]
func (h *Handler) Clear(c *gin.Context) {
	if err := h.store.Replace(nil); err != nil {
		h.internalError(c, "Clear(): failed to clear records", err)
		return
	}
	log.Println("Clear(): Database cleared")
	h.respond(c, tutorial.ClearOK, nil)
}

// ListCalls godoc
// @Summary      호출 기록 조회 (Admin)
// @Description  지금까지의 호출 기록을 호출 순서대로 반환합니다.
// @Tags         Admin
// @Produce      json
// @Security     AdminKeyAuth
// @Success      200 {object} tutorial.Envelope "data: []Call"
// @Failure      401 {object} tutorial.Envelope
// @Failure      500 {object} tutorial.Envelope
// @Router       /calls [get]
func (h *Handler) ListCalls(c *gin.Context) {
	calls, err := h.store.Calls()
	if err != nil {
		h.internalError(c, "ListCalls(): failed to read calls", err)
		return
	}
	if calls == nil {
		calls = []models.Call{}
	}
	h.respond(c, tutorial.CallsList, calls)
}

// DeleteCalls godoc
// @Summary      호출 기록 삭제 (Admin)
// @Tags         Admin
// @Produce      json
// @Security     AdminKeyAuth
// @Success      200 {object} tutorial.Envelope
// @Failure      401 {object} tutorial.Envelope
// @Failure      500 {object} tutorial.Envelope
// @Router       /calls [delete]
func (h *Handler) DeleteCalls(c *gin.Context) {
	if err := h.store.ClearCalls(); err != nil {
		h.internalError(c, "DeleteCalls(): failed to clear calls", err)
		return
	}
	h.respond(c, tutorial.CallsDeleted, nil)
}
