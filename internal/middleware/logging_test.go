package middleware

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"FITZEN_BACK-END/internal/logger"
)

func TestRequestLoggerPassesThroughAndLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	closer, err := logger.Init(logger.Config{Level: "info", Format: "json", OutputPath: path})
	if err != nil {
		t.Fatalf("logger.Init: %v", err)
	}
	t.Cleanup(func() {
		logger.Init(logger.Config{Level: "info", Format: "json", OutputPath: "stdout"})
	})

	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/habits/u1", nil))
	closer.Close()

	if rec.Code != http.StatusTeapot || rec.Body.String() != "short" {
		t.Fatalf("response not passed through: %d %q", rec.Code, rec.Body.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var entry struct {
		Msg    string `json:"msg"`
		Method string `json:"method"`
		Path   string `json:"path"`
		Status int    `json:"status"`
		Bytes  int64  `json:"bytes"`
	}
	found := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if err := json.Unmarshal(sc.Bytes(), &entry); err == nil && entry.Msg == "HTTP request" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no access log line written")
	}
	if entry.Method != http.MethodGet || entry.Path != "/api/habits/u1" || entry.Status != http.StatusTeapot || entry.Bytes != 5 {
		t.Fatalf("unexpected access log entry: %+v", entry)
	}
}
