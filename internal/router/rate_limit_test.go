package router

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestKeyByIPAndJSONField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	keyFunc := KeyByIPAndJSONField("email")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"  User@Example.COM ","password":"x"}`))
	key := keyFunc(c)
	if !strings.HasPrefix(key, "user@example.com|") {
		t.Fatalf("expected lowercased email prefix, got %s", key)
	}

	// body 需要可被后续 handler 重新读取
	if got := readJSONField(c, "email"); got != "User@Example.COM" {
		t.Fatalf("body should be re-readable, got %q", got)
	}
}

func TestKeyByIPAndJSONFieldFallsBackToIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	keyFunc := KeyByIPAndJSONField("email")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/login", strings.NewReader(`not-json`))
	if key := keyFunc(c); strings.Contains(key, "|") {
		t.Fatalf("malformed body should fall back to plain IP key, got %s", key)
	}

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":42}`))
	if key := keyFunc(c2); strings.Contains(key, "|") {
		t.Fatalf("non-string field should fall back to plain IP key, got %s", key)
	}
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{Prefix: "login", WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.POST("/login", func(c *gin.Context) {
		c.Status(200)
	})

	// redis 未启用时限流退化为放行
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		if w.Code != 200 {
			t.Fatalf("request %d want 200 got %d", i, w.Code)
		}
	}
}

func TestToInt64(t *testing.T) {
	if v, ok := toInt64(int64(7)); !ok || v != 7 {
		t.Fatalf("int64 want 7 got %d ok=%v", v, ok)
	}
	if v, ok := toInt64(float64(3)); !ok || v != 3 {
		t.Fatalf("float64 want 3 got %d ok=%v", v, ok)
	}
	if _, ok := toInt64("5"); ok {
		t.Fatalf("string should not convert")
	}
}
