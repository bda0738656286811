package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"AdoptionTutorial_API/internal/models"
	"AdoptionTutorial_API/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "lesson-admin"

type envelope struct {
	Welcome  string          `json:"welcome"`
	Data     json.RawMessage `json:"data"`
	Tutorial struct {
		Title string `json:"title"`
		Intro string `json:"intro"`
	} `json:"tutorial"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	store  storage.Store
}

func newTestAPI(t *testing.T, opts Options) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.OpenFile(filepath.Join(t.TempDir(), "db.json"), storage.NewSeeder(1))
	require.NoError(t, err)
	return newTestAPIWithStore(t, store, opts)
}

func newTestAPIWithStore(t *testing.T, store storage.Store, opts Options) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if opts.Project == "" {
		opts.Project = "Test Course"
	}
	if opts.Secret == "" {
		opts.Secret = testSecret
	}
	if opts.Seeder == nil {
		opts.Seeder = storage.NewSeeder(7)
	}
	router, err := NewRouter(store, opts)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &testAPI{t: t, router: router, store: store}
}

func (a *testAPI) do(method, path string, headers map[string]string, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) admin(method, path string) *httptest.ResponseRecorder {
	return a.do(method, path, map[string]string{"admin_key": testSecret}, "")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

func (a *testAPI) calls() []models.Call {
	a.t.Helper()
	calls, err := a.store.Calls()
	require.NoError(a.t, err)
	return calls
}

func TestAdminEndpointsRequireSecret(t *testing.T) {
	api := newTestAPI(t, Options{})

	endpoints := []struct{ method, path string }{
		{http.MethodGet, "/reset"},
		{http.MethodGet, "/clear"},
		{http.MethodGet, "/calls"},
		{http.MethodDelete, "/calls"},
	}
	for _, ep := range endpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			w := api.do(ep.method, ep.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Your request is unauthorized! 🚫", decode(t, w).Tutorial.Title)

			for _, wrong := range []string{"", "LESSON-ADMIN", testSecret + " ", "x"} {
				w = api.do(ep.method, ep.path, map[string]string{"admin_key": wrong}, "")
				assert.Equal(t, http.StatusUnauthorized, w.Code, "admin_key %q", wrong)
			}

			w = api.admin(ep.method, ep.path)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAdminRejectsEverythingWithoutConfiguredSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := storage.OpenFile(filepath.Join(t.TempDir(), "db.json"), storage.NewSeeder(1))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	router, err := NewRouter(store, Options{Project: "Test Course"})
	require.NoError(t, err)
	api := &testAPI{t: t, router: router, store: store}

	for _, key := range []string{"", testSecret} {
		w := api.do(http.MethodGet, "/reset", map[string]string{"admin_key": key}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestResetAndClear(t *testing.T) {
	api := newTestAPI(t, Options{})

	for i := 0; i < 3; i++ {
		w := api.admin(http.MethodGet, "/reset")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Database reset", decode(t, w).Tutorial.Title)

		records, err := api.store.Records()
		require.NoError(t, err)
		require.Len(t, records, storage.DefaultRecordCount)
		ids := map[string]bool{}
		for _, r := range records {
			ids[r.ID] = true
		}
		assert.Len(t, ids, storage.DefaultRecordCount, "record ids must be unique")
	}

	w := api.admin(http.MethodGet, "/clear")
	require.Equal(t, http.StatusOK, w.Code)
	records, err := api.store.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetRecord(t *testing.T) {
	api := newTestAPI(t, Options{})

	w := api.do(http.MethodGet, "/record", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Item not specified"}`, string(decode(t, w).Data))

	w = api.do(http.MethodGet, "/record?id=", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	records, err := api.store.Records()
	require.NoError(t, err)
	for _, id := range []string{"1", "not-a-real-id", records[0].ID} {
		w = api.do(http.MethodGet, "/record?id="+id, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Record models.Record `json:"record"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Contains(t, records, data.Record)
	}
}

func TestGetRecordFromEmptyStore(t *testing.T) {
	api := newTestAPI(t, Options{})
	require.Equal(t, http.StatusOK, api.admin(http.MethodGet, "/clear").Code)

	w := api.do(http.MethodGet, "/record?id=1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"record": null}`, string(decode(t, w).Data))
}

func TestGetRecords(t *testing.T) {
	api := newTestAPI(t, Options{})

	w := api.do(http.MethodGet, "/records", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Records []models.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	records, _ := api.store.Records()
	assert.Equal(t, records, data.Records)
}

func TestAddRecordChain(t *testing.T) {
	api := newTestAPI(t, Options{})
	before, _ := api.store.Records()

	tests := []struct {
		name    string
		headers map[string]string
		body    string
		want    int
		title   string
	}{
		{"no key", nil, `{"id": "x"}`, http.StatusUnauthorized, "Oops - You got an unauthorized error response! 🚫"},
		{"empty key", map[string]string{"api_key": ""}, `{"id": "x"}`, http.StatusUnauthorized, "Oops - You got an unauthorized error response! 🚫"},
		{"unresolved variable", map[string]string{"api_key": "{{auth_key}}"}, `{"id": "x"}`, http.StatusUnauthorized, "Oops - You got an unauthorized error response! 🚫"},
		{"no body", map[string]string{"api_key": "abc123"}, "", http.StatusBadRequest, "Your request is incomplete! ✋"},
		{"no id", map[string]string{"api_key": "abc123"}, `{"phrase": "p"}`, http.StatusBadRequest, "Your request is incomplete! ✋"},
		{"zero id", map[string]string{"api_key": "abc123"}, `{"id": 0}`, http.StatusBadRequest, "Your request is incomplete! ✋"},
		{"not an object", map[string]string{"api_key": "abc123"}, `["id"]`, http.StatusBadRequest, "Your request is incomplete! ✋"},
		{"ok", map[string]string{"api_key": "abc123"}, `{"id": "lorem", "num": 10}`, http.StatusCreated, "You added a new record! "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/record", tt.headers, tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, tt.title, decode(t, w).Tutorial.Title)
		})
	}

	after, _ := api.store.Records()
	assert.Equal(t, before, after, "add must not change the store")
}

func TestAddRecordFormBody(t *testing.T) {
	api := newTestAPI(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/record", strings.NewReader("id=lorem&num=3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("api_key", "abc123")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message": "Record added"}`, string(decode(t, w).Data))
}

func TestMutationsIgnoreNonJSONBodies(t *testing.T) {
	api := newTestAPI(t, Options{})

	tests := []struct {
		method      string
		path        string
		body        string
		contentType string
		want        int
	}{
		{http.MethodPost, "/record", `{"id": "lorem"}`, "text/plain", http.StatusBadRequest},
		{http.MethodPost, "/record", `{"id": "lorem"}`, "", http.StatusBadRequest},
		{http.MethodPost, "/record", `{"id": "lorem"}`, "application/json", http.StatusCreated},
		{http.MethodPut, "/record?id=1", `{"num": 5}`, "text/plain", http.StatusBadRequest},
		{http.MethodPut, "/record?id=1", `{"num": 5}`, "", http.StatusBadRequest},
		{http.MethodPut, "/record?id=1", `{"num": 5}`, "application/json", http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.contentType, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			req.Header.Set("api_key", "abc123")
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusBadRequest {
				assert.JSONEq(t, `{"message": "No body data included"}`, string(decode(t, w).Data))
			}
		})
	}
}

func TestUpdateRecordChain(t *testing.T) {
	api := newTestAPI(t, Options{})
	key := map[string]string{"api_key": "abc123"}

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		body    string
		want    int
		message string
	}{
		{"no key with everything else", "/record?id=1", nil, `{"num": 5}`, http.StatusUnauthorized, "No API key included"},
		{"unresolved key passes auth", "/record", map[string]string{"api_key": "{{auth_key}}"}, `{"num": 5}`, http.StatusBadRequest, "No id included"},
		{"no id", "/record", key, `{"num": 5}`, http.StatusBadRequest, "No id included"},
		{"no num", "/record?id=1", key, `{"id": "1"}`, http.StatusBadRequest, "No body data included"},
		{"zero num", "/record?id=1", key, `{"num": 0}`, http.StatusBadRequest, "No body data included"},
		{"ok", "/record?id=1", key, `{"num": 5}`, http.StatusCreated, "Record updated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPut, tt.path, tt.headers, tt.body)
			assert.Equal(t, tt.want, w.Code)
			assert.JSONEq(t, `{"message": "`+tt.message+`"}`, string(decode(t, w).Data))
		})
	}
}

func TestDeleteRecord(t *testing.T) {
	api := newTestAPI(t, Options{})
	before, _ := api.store.Records()

	w := api.do(http.MethodDelete, "/record/abc", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodDelete, "/record/abc", map[string]string{"api_key": "k"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You deleted a record! 🗑️", decode(t, w).Tutorial.Title)

	after, _ := api.store.Records()
	assert.Equal(t, before, after, "delete must not change the store")
}

func TestUnmatchedRoutes(t *testing.T) {
	api := newTestAPI(t, Options{})

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodPatch, "/record"},
		{http.MethodDelete, "/record"},
		{http.MethodPost, "/records"},
		{http.MethodGet, "/records/"},
		{http.MethodGet, "/Records"},
		{http.MethodPut, "/calls"},
	} {
		w := api.do(tt.method, tt.path, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, "Your request is invalid! 🚧", decode(t, w).Tutorial.Title)
	}
	assert.Empty(t, api.calls(), "unmatched routes are not logged")
}

func TestCallLog(t *testing.T) {
	api := newTestAPI(t, Options{})

	api.do(http.MethodGet, "/", nil, "")
	api.do(http.MethodGet, "/begin", nil, "")
	api.do(http.MethodGet, "/record?id=42", nil, "")
	api.do(http.MethodGet, "/record", nil, "")
	api.do(http.MethodGet, "/records", nil, "")
	api.do(http.MethodPost, "/record", map[string]string{"api_key": "abc"}, `{"id": "1"}`)
	api.do(http.MethodPut, "/record", nil, "")
	api.do(http.MethodDelete, "/record/9", map[string]string{"api_key": "xyz"}, "")
	api.do(http.MethodGet, "/publish", nil, "")
	// admin routes are not logged
	api.admin(http.MethodGet, "/reset")

	var got [][2]string
	for _, c := range api.calls() {
		assert.NotEmpty(t, c.When)
		got = append(got, [2]string{c.Where, c.What})
	}
	assert.Equal(t, [][2]string{
		{"GET /", "-"},
		{"GET /begin", "-"},
		{"GET /record", "42"},
		{"GET /record", "-"},
		{"GET /records", "-"},
		{"POST /record", "abc"},
		{"PUT /record", "-"},
		{"DEL /record", "xyz"},
		{"GET /publish", "-"},
	}, got)
}

func TestListAndDeleteCalls(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.do(http.MethodGet, "/begin", nil, "")
	api.do(http.MethodGet, "/records", nil, "")

	w := api.admin(http.MethodGet, "/calls")
	require.Equal(t, http.StatusOK, w.Code)
	var calls []models.Call
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &calls))
	require.Len(t, calls, 2)
	assert.Equal(t, "GET /begin", calls[0].Where)

	require.Equal(t, http.StatusOK, api.admin(http.MethodDelete, "/calls").Code)

	w = api.admin(http.MethodGet, "/calls")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(decode(t, w).Data))
}

func TestRootNegotiation(t *testing.T) {
	api := newTestAPI(t, Options{})

	w := api.do(http.MethodGet, "/", map[string]string{"User-Agent": "PostmanRuntime/7.36.0", "Accept": "*/*"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Test Course", decode(t, w).Tutorial.Title)

	w = api.do(http.MethodGet, "/", map[string]string{"Accept": "text/html,application/xhtml+xml"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<h1>Test Course</h1>")
}

func TestBegin(t *testing.T) {
	api := newTestAPI(t, Options{})

	w := api.do(http.MethodGet, "/begin", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.JSONEq(t, `{"course": "Test Course"}`, string(env.Data))
	assert.Equal(t, "Welcome to Test Course training! 🛰️📣", env.Tutorial.Title)
	assert.Contains(t, env.Welcome, "Test Course course!")
}

func TestRateLimit(t *testing.T) {
	api := newTestAPI(t, Options{RateLimitRPS: 0.001, RateLimitBurst: 2})

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/publish", nil, "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/publish", nil, "").Code)

	w := api.do(http.MethodGet, "/publish", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Slow down! 🐢", decode(t, w).Tutorial.Title)
}

func TestSwaggerDoc(t *testing.T) {
	api := newTestAPI(t, Options{})

	w := api.do(http.MethodGet, "/swagger/doc.json", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Test Course", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/record/{id}")
}

// 저장 실패를 흉내 내는 저장소
type failingStore struct {
	storage.Store
}

var errDiskFull = errors.New("disk full")

func (f failingStore) Replace([]models.Record) error { return errDiskFull }
func (f failingStore) AppendCall(models.Call) error  { return errDiskFull }
func (f failingStore) ClearCalls() error             { return errDiskFull }

func TestStorageFailureReturns500(t *testing.T) {
	inner, err := storage.OpenFile(filepath.Join(t.TempDir(), "db.json"), storage.NewSeeder(1))
	require.NoError(t, err)
	api := newTestAPIWithStore(t, failingStore{Store: inner}, Options{})
	before, _ := inner.Records()

	for _, path := range []string{"/reset", "/clear"} {
		w := api.admin(http.MethodGet, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message": "Something went wrong"}`, string(decode(t, w).Data))
	}
	assert.Equal(t, http.StatusInternalServerError, api.admin(http.MethodDelete, "/calls").Code)

	after, _ := inner.Records()
	assert.Equal(t, before, after)

	// call log failures never change the response
	w := api.do(http.MethodGet, "/records", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
