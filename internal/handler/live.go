package handler

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"AdoptionTutorial_API/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	liveBuffer = 64
	writeWait  = 10 * time.Second
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveCalls godoc
// @Summary      호출 기록 실시간 스트림 (Admin)
// @Description  WebSocket으로 기존 호출 기록을 먼저 보내고, 이후 새 호출을 도착 순서대로 전송합니다.
// @Description  <br> **참고: 표준 HTTP API가 아닙니다.** `ws://` 스킴으로 연결하고 admin_key 헤더를 보내야 합니다.
// @Tags         Admin
// @Security     AdminKeyAuth
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      401 {object} tutorial.Envelope
// @Router       /calls/live [get]
func (h *Handler) LiveCalls(c *gin.Context) {
	// 백로그를 읽기 전에 구독해야 그 사이의 호출을 놓치지 않는다
	feed, unsubscribe := h.hub.Subscribe(liveBuffer)
	defer unsubscribe()

	backlog, err := h.store.Calls()
	if err != nil {
		h.internalError(c, "LiveCalls(): failed to read calls", err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("LiveCalls(): Failed to upgrade to WebSocket from %s: %v", c.ClientIP(), err)
		return
	}
	defer conn.Close()
	log.Printf("LiveCalls(): WebSocket connection established for %s", c.ClientIP())

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)

	// 클라이언트 메시지는 무시, 연결 종료만 감지
	go func() {
		defer wg.Done()
		defer cancel()
		liveReadPump(conn)
	}()

	go func() {
		defer wg.Done()
		defer cancel()
		liveWritePump(ctx, conn, backlog, feed)
	}()

	wg.Wait()
	log.Printf("LiveCalls(): stream ended for %s", c.ClientIP())
}

func liveReadPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// 종료 시 연결을 닫아 read pump도 끝나게 한다
func liveWritePump(ctx context.Context, conn *websocket.Conn, backlog []models.Call, feed <-chan models.Call) {
	defer conn.Close()

	write := func(call models.Call) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(call); err != nil {
			log.Printf("liveWritePump(): Error sending call: %v", err)
			return false
		}
		return true
	}

	for _, call := range backlog {
		if !write(call) {
			return
		}
	}
	for {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case call, ok := <-feed:
			if !ok || !write(call) {
				return
			}
		}
	}
}
