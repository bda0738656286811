package tutorial

import (
	_ "embed"
	"fmt"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var lessonsYAML []byte

// Envelope는 모든 엔드포인트가 돌려주는 공통 응답 구조
type Envelope struct {
	Welcome  string   `json:"welcome"`
	Data     any      `json:"data,omitempty"`
	Tutorial Tutorial `json:"tutorial"`
}

type Tutorial struct {
	Title string `json:"title" yaml:"title"`
	Intro string `json:"intro" yaml:"intro"`
	Steps []Step `json:"steps,omitempty" yaml:"steps"`
	Next  []Step `json:"next,omitempty" yaml:"next"`
}

type Step struct {
	Note    string   `json:"note,omitempty" yaml:"note"`
	Step    string   `json:"step,omitempty" yaml:"step"`
	Pic     string   `json:"pic,omitempty" yaml:"pic"`
	RawData any      `json:"raw_data,omitempty" yaml:"raw_data"`
	JSCode  []string `json:"js_code,omitempty" yaml:"js_code"`
	// true면 응답 data를 raw_data로 보여준다
	EchoData bool `json:"-" yaml:"echo_data"`
}

// Lesson은 (엔드포인트, 결과) 한 쌍에 대한 고정 응답
type Lesson struct {
	Status   int      `yaml:"status"`
	Message  string   `yaml:"message"`
	Tutorial Tutorial `yaml:"tutorial"`
}

type Key struct {
	Endpoint string
	Outcome  string
}

func (k Key) String() string { return k.Endpoint + "/" + k.Outcome }

var (
	RootOK             = Key{"root", "ok"}
	BeginOK            = Key{"begin", "ok"}
	RecordFound        = Key{"record", "found"}
	RecordMissingID    = Key{"record", "missing-id"}
	RecordsList        = Key{"records", "list"}
	AddUnauthorized    = Key{"add", "unauthorized"}
	AddMissingBody     = Key{"add", "missing-body"}
	AddSuccess         = Key{"add", "success"}
	UpdateUnauthorized = Key{"update", "unauthorized"}
	UpdateMissingID    = Key{"update", "missing-id"}
	UpdateMissingBody  = Key{"update", "missing-body"}
	UpdateSuccess      = Key{"update", "success"}
	DeleteUnauthorized = Key{"delete", "unauthorized"}
	DeleteSuccess      = Key{"delete", "success"}
	PublishOK          = Key{"publish", "ok"}
	AdminUnauthorized  = Key{"admin", "unauthorized"}
	ResetOK            = Key{"reset", "ok"}
	ClearOK            = Key{"clear", "ok"}
	CallsList          = Key{"calls", "list"}
	CallsDeleted       = Key{"calls", "deleted"}
	RouteInvalid       = Key{"route", "invalid"}
	RateLimited        = Key{"error", "rate-limited"}
	InternalError      = Key{"error", "internal"}
)

// 핸들러가 사용하는 모든 키, Load 시점에 존재 여부 확인
var Keys = []Key{
	RootOK, BeginOK, RecordFound, RecordMissingID, RecordsList,
	AddUnauthorized, AddMissingBody, AddSuccess,
	UpdateUnauthorized, UpdateMissingID, UpdateMissingBody, UpdateSuccess,
	DeleteUnauthorized, DeleteSuccess, PublishOK,
	AdminUnauthorized, ResetOK, ClearOK, CallsList, CallsDeleted,
	RouteInvalid, RateLimited, InternalError,
}

type Table struct {
	welcome string
	lessons map[Key]Lesson
}

type document struct {
	Welcome string                       `yaml:"welcome"`
	Lessons map[string]map[string]Lesson `yaml:"lessons"`
}

// Load는 내장된 lessons.yaml을 한 번 파싱하고 프로젝트 이름을 채워 넣는다.
func Load(project, domain string) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(lessonsYAML, &doc); err != nil {
		return nil, fmt.Errorf("tutorial.Load(): failed to parse lessons: %w", err)
	}

	r := strings.NewReplacer("{{project}}", project, "{{domain}}", domain)
	t := &Table{
		welcome: r.Replace(doc.Welcome),
		lessons: make(map[Key]Lesson),
	}
	for endpoint, outcomes := range doc.Lessons {
		for outcome, lesson := range outcomes {
			if lesson.Status == 0 {
				lesson.Status = http.StatusOK
			}
			lesson.Tutorial = lesson.Tutorial.expand(r)
			t.lessons[Key{endpoint, outcome}] = lesson
		}
	}

	for _, k := range Keys {
		if _, ok := t.lessons[k]; !ok {
			return nil, fmt.Errorf("tutorial.Load(): missing lesson %s", k)
		}
	}
	return t, nil
}

func (t *Table) Welcome() string { return t.welcome }

func (t *Table) Lesson(k Key) (Lesson, bool) {
	l, ok := t.lessons[k]
	return l, ok
}

// Render는 상태 코드와 응답 envelope를 만든다.
// data가 nil이면 lesson의 message를 {"message": ...}로 사용
func (t *Table) Render(k Key, data any) (int, Envelope) {
	lesson, ok := t.lessons[k]
	if !ok {
		lesson = t.lessons[InternalError]
	}
	if data == nil && lesson.Message != "" {
		data = map[string]string{"message": lesson.Message}
	}

	tut := lesson.Tutorial
	tut.Steps = echo(tut.Steps, data)
	tut.Next = echo(tut.Next, data)

	return lesson.Status, Envelope{Welcome: t.welcome, Data: data, Tutorial: tut}
}

// 테이블 원본을 건드리지 않도록 복사본에만 raw_data를 채운다
func echo(steps []Step, data any) []Step {
	if len(steps) == 0 {
		return steps
	}
	out := make([]Step, len(steps))
	copy(out, steps)
	for i := range out {
		if out[i].EchoData {
			out[i].RawData = data
		}
	}
	return out
}

func (tut Tutorial) expand(r *strings.Replacer) Tutorial {
	tut.Title = r.Replace(tut.Title)
	tut.Intro = r.Replace(tut.Intro)
	for _, steps := range [][]Step{tut.Steps, tut.Next} {
		for i := range steps {
			steps[i].Note = r.Replace(steps[i].Note)
			steps[i].Step = r.Replace(steps[i].Step)
		}
	}
	return tut
}
