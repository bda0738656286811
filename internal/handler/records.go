package handler

import (
	"AdoptionTutorial_API/internal/models"
	"AdoptionTutorial_API/internal/tutorial"

	"github.com/gin-gonic/gin"
)

// GetRecord godoc
// @Summary      레코드 조회 (Get item)
// @Description  쿼리 파라미터 id가 있으면 저장소에서 **무작위** 레코드 하나를 반환합니다 (id로 찾지 않음).
// @Description  id가 없으면 404를 반환합니다.
// @Tags         Records
// @Produce      json
// @Param        id query string false "Record id to retrieve"
// @Success      200 {object} tutorial.Envelope "data: {record: Record}"
// @Failure      404 {object} tutorial.Envelope "Item not specified"
// @Failure      500 {object} tutorial.Envelope
// @Router       /record [get]
func (h *Handler) GetRecord(c *gin.Context) {
	if c.Query("id") == "" {
		h.respond(c, tutorial.RecordMissingID, nil)
		return
	}

	rec, ok, err := h.store.Random()
	if err != nil {
		h.internalError(c, "GetRecord(): failed to pick record", err)
		return
	}
	// 저장소가 비어 있으면 record: null
	var record any
	if ok {
		record = rec
	}
	h.respond(c, tutorial.RecordFound, gin.H{"record": record})
}

// GetRecords godoc
// @Summary      레코드 목록 (Get list)
// @Description  저장소의 모든 레코드를 필터 없이 반환합니다.
// @Tags         Records
// @Produce      json
// @Success      200 {object} tutorial.Envelope "data: {records: []Record}"
// @Failure      500 {object} tutorial.Envelope
// @Router       /records [get]
func (h *Handler) GetRecords(c *gin.Context) {
	records, err := h.store.Records()
	if err != nil {
		h.internalError(c, "GetRecords(): failed to list records", err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}
	h.respond(c, tutorial.RecordsList, gin.H{"records": records})
}

// AddRecord godoc
// @Summary      레코드 추가 (Add item)
// @Description  데모 엔드포인트: 저장소를 변경하지 않습니다.
// @Description  api_key 헤더가 없거나 `{`로 시작하면 401, 본문에 id가 없으면 400.
// @Tags         Records
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body models.Record true "추가할 레코드"
// @Success      201 {object} tutorial.Envelope "Record added"
// @Failure      400 {object} tutorial.Envelope "No body data included"
// @Failure      401 {object} tutorial.Envelope "No API key included"
// @Router       /record [post]
func (h *Handler) AddRecord(c *gin.Context) {
	h.respond(c, runChain(newRequest(c), addChain, tutorial.AddSuccess), nil)
}

// UpdateRecord godoc
// @Summary      레코드 수정 (Update item)
// @Description  데모 엔드포인트: 저장소를 변경하지 않습니다.
// @Description  api_key 헤더 → 쿼리 id → 본문 num 순서로 검사합니다.
// @Tags         Records
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id      query string true "수정할 레코드 id"
// @Param        request body  object{num=int} true "수정할 값"
// @Success      201 {object} tutorial.Envelope "Record updated"
// @Failure      400 {object} tutorial.Envelope "No id included / No body data included"
// @Failure      401 {object} tutorial.Envelope "No API key included"
// @Router       /record [put]
func (h *Handler) UpdateRecord(c *gin.Context) {
	h.respond(c, runChain(newRequest(c), updateChain, tutorial.UpdateSuccess), nil)
}

// DeleteRecord godoc
// @Summary      레코드 삭제 (Remove item)
// @Description  데모 엔드포인트: 경로의 id는 받지만 사용하지 않으며 저장소를 변경하지 않습니다.
// @Tags         Records
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "삭제할 레코드 id"
// @Success      200 {object} tutorial.Envelope "Record removed"
// @Failure      401 {object} tutorial.Envelope "No API key included"
// @Router       /record/{id} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	h.respond(c, runChain(newRequest(c), deleteChain, tutorial.DeleteSuccess), nil)
}
