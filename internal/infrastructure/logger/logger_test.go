package logger

import (
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"alisa_ai_server/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestInitAppliesDefaults(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	dir := t.TempDir()
	cfg := &config.LogConfig{LogPath: dir}
	if err := Init(cfg, "release"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.FileName != filepath.Join(dir, "app.log") || cfg.Level != "info" || cfg.MaxSize != 100 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestInitRejectsBadLevel(t *testing.T) {
	if err := Init(&config.LogConfig{LogPath: t.TempDir(), Level: "loud"}, "release"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := Init(nil, "dev"); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestGinRecoveryReturns500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(GinLogger(), GinRecovery(false))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestIsBrokenPipeError(t *testing.T) {
	opErr := &net.OpError{Op: "write", Err: os.NewSyscallError("write", syscall.EPIPE)}
	if !isBrokenPipeError(opErr) {
		t.Fatalf("EPIPE should be detected")
	}
	if isBrokenPipeError(errors.New("other")) {
		t.Fatalf("plain error is not broken pipe")
	}
	if isBrokenPipeError(nil) {
		t.Fatalf("nil is not broken pipe")
	}
}
