package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"AdoptionTutorial_API/internal/tutorial"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "api_key"

// 본문은 필요할 때 한 번만 읽는다
type request struct {
	c      *gin.Context
	body   map[string]any
	parsed bool
}

func newRequest(c *gin.Context) *request {
	return &request{c: c}
}

func (r *request) apiKey() string { return r.c.GetHeader(APIKeyHeader) }

func (r *request) query(name string) string { return r.c.Query(name) }

func (r *request) field(name string) any {
	if !r.parsed {
		r.body = readBody(r.c)
		r.parsed = true
	}
	return r.body[name]
}

// 본문 최대 크기 (100kb), 넘으면 본문이 없는 것으로 처리
const maxBodyBytes = 100 << 10

// application/json 또는 urlencoded form 본문만 map으로 읽는다.
// 그 외 Content-Type(text/plain, 미지정 등)이나 읽을 수 없는 본문은 빈 map
func readBody(c *gin.Context) map[string]any {
	body := map[string]any{}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	switch c.ContentType() {
	case gin.MIMEJSON:
		raw, err := c.GetRawData()
		if err != nil {
			log.Printf("readBody(): failed to read body: %v", err)
			return body
		}
		if len(raw) == 0 {
			return body
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			log.Printf("readBody(): ignoring non-object body: %v", err)
			return map[string]any{}
		}
	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			log.Printf("readBody(): failed to parse form: %v", err)
			return body
		}
		for k, v := range c.Request.PostForm {
			if len(v) > 0 {
				body[k] = v[0]
			}
		}
	}
	return body
}

// 없음, null, false, 0, "" 는 값이 없는 것으로 본다
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// check 하나가 실패하면 failure 결과로 바로 응답 (뒤의 check는 실행 안 함)
type check struct {
	failure tutorial.Key
	pass    func(r *request) bool
}

func runChain(r *request, checks []check, success tutorial.Key) tutorial.Key {
	for _, ch := range checks {
		if !ch.pass(r) {
			return ch.failure
		}
	}
	return success
}

func hasAPIKey(r *request) bool { return r.apiKey() != "" }

// Postman 변수({{auth_key}})가 풀리지 않은 채 전송된 키도 거부
func hasResolvedAPIKey(r *request) bool {
	k := r.apiKey()
	return k != "" && !strings.HasPrefix(k, "{")
}

var (
	addChain = []check{
		{tutorial.AddUnauthorized, hasResolvedAPIKey},
		{tutorial.AddMissingBody, func(r *request) bool { return truthy(r.field("id")) }},
	}
	updateChain = []check{
		{tutorial.UpdateUnauthorized, hasAPIKey},
		{tutorial.UpdateMissingID, func(r *request) bool { return r.query("id") != "" }},
		{tutorial.UpdateMissingBody, func(r *request) bool { return truthy(r.field("num")) }},
	}
	deleteChain = []check{
		{tutorial.DeleteUnauthorized, hasAPIKey},
	}
)
