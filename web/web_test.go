package web

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"ofs-panel/logger"
	"ofs-panel/web/locale"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedBotLang struct{}

func (fixedBotLang) GetBotLang() (string, error) { return "en-US", nil }

func TestLocalizerPerRequestLanguage(t *testing.T) {
	logger.InitLogger(logging.DEBUG)
	require.NoError(t, locale.InitLocalizer(i18nFS, fixedBotLang{}))

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(locale.LocalizerMiddleware())
	engine.GET("/welcome", func(c *gin.Context) {
		anyfunc, ok := c.Get("I18n")
		require.True(t, ok)
		i18nFunc := anyfunc.(func(locale.I18nType, string, ...string) string)
		c.String(http.StatusOK, i18nFunc(locale.Web, "auth.welcome"))
	})

	fetch := func(lang string) string {
		req := httptest.NewRequest("GET", "/welcome", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: lang})
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w.Body.String()
	}

	want := map[string]string{
		"en-US": "Welcome to Online Full Service",
		"my-MM": "Online Full Service မှကြိုဆိုပါတယ်",
	}

	// Interleaved languages must never leak between requests.
	langs := []string{"en-US", "my-MM"}
	got := make([]string, 40)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = fetch(langs[i%2])
		}(i)
	}
	wg.Wait()

	for i, body := range got {
		assert.Equal(t, want[langs[i%2]], body)
	}
}
