package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookieHelper(t *testing.T) {
	h := NewCookieHelper(true, "example.com", http.SameSiteStrictMode)

	t.Run("set", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.SetToken(rr, "abc")

		cookies := rr.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			c := cookies[0]
			assert.Equal(t, "token", c.Name)
			assert.Equal(t, "abc", c.Value)
			assert.True(t, c.HttpOnly)
			assert.True(t, c.Secure)
			assert.Equal(t, "example.com", c.Domain)
			assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
		}
	})

	t.Run("clear", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.Clear(rr)

		header := rr.Header().Get("Set-Cookie")
		assert.Contains(t, header, "token=;")
		assert.Contains(t, header, "Max-Age=0")
		assert.Contains(t, header, "Expires=Thu, 01 Jan 1970 00:00:00 GMT")
	})
}
