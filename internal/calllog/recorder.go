package calllog

import (
	"log"
	"sync"
	"time"

	"AdoptionTutorial_API/internal/models"
)

// Date.toDateString() + " " + Date.toTimeString() 형태
const TimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// 값이 없을 때 what에 기록하는 자리표시자
const Placeholder = "-"

type Appender interface {
	AppendCall(call models.Call) error
}

type Recorder struct {
	// 저장 순서와 실시간 전달 순서를 같게 유지
	mu    sync.Mutex
	store Appender
	hub   *Hub
	now   func() time.Time
}

func NewRecorder(store Appender, hub *Hub) *Recorder {
	return &Recorder{store: store, hub: hub, now: time.Now}
}

// Record는 호출 기록을 남긴다. 저장 실패는 로그만 남기고 무시 (응답에 영향 없음)
func (r *Recorder) Record(where, what string) models.Call {
	if what == "" {
		what = Placeholder
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	call := models.Call{
		When:  r.now().Format(TimeLayout),
		Where: where,
		What:  what,
	}
	if err := r.store.AppendCall(call); err != nil {
		log.Printf("[WARN] Recorder.Record(): failed to append call %s: %v", where, err)
		return call
	}
	if r.hub != nil {
		r.hub.Publish(call)
	}
	return call
}
