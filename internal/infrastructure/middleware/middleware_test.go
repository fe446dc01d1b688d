package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"alisa_ai_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type fakeChecker map[string]bool

func (f fakeChecker) Exists(id string) bool { return f[id] }

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecureHeaders())
	r.GET("/ping", Workspace(fakeChecker{"ws-1": true}), func(c *gin.Context) {
		c.String(http.StatusOK, WorkspaceID(c))
	})
	return r
}

func TestWorkspaceFromHeaderAndQuery(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Workspace-Id", "ws-1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "ws-1" {
		t.Fatalf("header: %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("secure headers missing: %v", w.Header())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?workspace_id=ws-1", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ws-1" {
		t.Fatalf("query: %d %s", w.Code, w.Body.String())
	}
}

func TestWorkspaceRejects(t *testing.T) {
	r := newEngine()
	cases := map[string]int{
		"/ping":                    errorx.CodeUnauthorized,
		"/ping?workspace_id=stale": errorx.CodeNotFound,
	}
	for path, code := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s status = %d", path, w.Code)
		}
		var body struct {
			Code int `json:"code"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != code {
			t.Fatalf("%s code = %d", path, body.Code)
		}
	}
}
