package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		query  string
		accept string
		want   string
	}{
		{"query wins", "/?locale=en", "ar-EG", LocaleEnglish},
		{"accept header fallback", "/", "en-US,en;q=0.9", LocaleEnglish},
		{"arabic variants normalize", "/?locale=ar-SA", "", LocaleArabic},
		{"unknown falls back to default", "/?locale=fr", "fr-FR", LocaleArabic},
		{"empty falls back to default", "/", "", LocaleArabic},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", tc.query, nil)
			if tc.accept != "" {
				c.Request.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("locale want %s got %s", tc.want, got)
			}
		})
	}
}

func TestTFallsBackToEnglishThenKey(t *testing.T) {
	if got := T(LocaleEnglish, "error.not_found"); got == "error.not_found" {
		t.Fatalf("expected english message for error.not_found")
	}
	if got := T(LocaleArabic, "error.not_found"); got == "error.not_found" {
		t.Fatalf("expected arabic message for error.not_found")
	}
	if got := T(LocaleArabic, "does.not.exist"); got != "does.not.exist" {
		t.Fatalf("missing key should echo the key, got %s", got)
	}
}

func TestSetDefaultLocale(t *testing.T) {
	prev := DefaultLocale()
	defer SetDefaultLocale(prev)

	SetDefaultLocale("en")
	if DefaultLocale() != LocaleEnglish {
		t.Fatalf("default want %s got %s", LocaleEnglish, DefaultLocale())
	}

	SetDefaultLocale("zz-ZZ")
	if DefaultLocale() != LocaleEnglish {
		t.Fatalf("invalid locale should not change default, got %s", DefaultLocale())
	}
}
