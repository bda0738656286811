package calllog

import (
	"sync"

	"AdoptionTutorial_API/internal/models"
)

// Hub는 새 호출 기록을 실시간 구독자(관리자 websocket)에게 전달한다.
type Hub struct {
	mu   sync.Mutex
	subs map[chan models.Call]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan models.Call]struct{})}
}

// Subscribe는 수신 채널과 구독 해제 함수를 돌려준다. 해제하면 채널이 닫힌다.
func (h *Hub) Subscribe(buffer int) (<-chan models.Call, func()) {
	ch := make(chan models.Call, buffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			close(ch)
			h.mu.Unlock()
		})
	}
}

// 버퍼가 가득 찬 구독자는 건너뛴다 (요청 처리를 막지 않음)
func (h *Hub) Publish(call models.Call) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- call:
		default:
		}
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
