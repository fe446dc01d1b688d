package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"alisa_ai_server/internal/dto/request"
	"alisa_ai_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func perform(t *testing.T, h gin.HandlerFunc, body string) envelope {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}

func TestHandleError(t *testing.T) {
	env := perform(t, func(c *gin.Context) { HandleError(c, errorx.ErrTicketClosed) }, "")
	if env.Code != errorx.CodeTicketClosed {
		t.Fatalf("code = %d", env.Code)
	}
	var msg string
	_ = json.Unmarshal(env.Msg, &msg)
	if msg != "Обращение уже закрыто" {
		t.Fatalf("msg = %q", msg)
	}

	env = perform(t, func(c *gin.Context) { HandleError(c, errors.New("disk on fire")) }, "")
	if env.Code != errorx.CodeServerBusy {
		t.Fatalf("unknown error code = %d", env.Code)
	}
}

func TestHandleParamErrorTranslates(t *testing.T) {
	if err := InitTrans("ru"); err != nil {
		t.Fatalf("InitTrans: %v", err)
	}
	bind := func(c *gin.Context) {
		var req request.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleParamError(c, err)
			return
		}
		HandleSuccess(c, req)
	}

	env := perform(t, bind, `{"name":"Аня","phone":"+7","email":"not-an-email"}`)
	if env.Code != errorx.CodeInvalidParam {
		t.Fatalf("code = %d", env.Code)
	}
	var fields map[string]string
	if err := json.Unmarshal(env.Msg, &fields); err != nil {
		t.Fatalf("msg should be a field map: %s", env.Msg)
	}
	if _, ok := fields["email"]; !ok || len(fields) != 1 {
		t.Fatalf("fields = %v", fields)
	}

	env = perform(t, bind, `{broken`)
	if env.Code != errorx.CodeInvalidParam {
		t.Fatalf("syntax error code = %d", env.Code)
	}

	env = perform(t, bind, `{"name":"Аня","phone":"+7","email":"a@b.ru"}`)
	if env.Code != errorx.CodeSuccess {
		t.Fatalf("valid request code = %d", env.Code)
	}
}

func TestInitTransUnknownLocale(t *testing.T) {
	if err := InitTrans("xx"); err == nil {
		t.Fatalf("expected error for unsupported locale")
	}
	if err := InitTrans("ru"); err != nil {
		t.Fatalf("restore: %v", err)
	}
}
