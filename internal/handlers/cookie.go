package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-expense-tracker/internal/jwt"
)

// CookieHelper writes and clears the session cookie.
type CookieHelper struct {
	Secure   bool
	Domain   string
	SameSite http.SameSite
}

// NewCookieHelper creates a CookieHelper.
func NewCookieHelper(secure bool, domain string, sameSite http.SameSite) *CookieHelper {
	return &CookieHelper{
		Secure:   secure,
		Domain:   domain,
		SameSite: sameSite,
	}
}

// SetToken stores token in the HTTP-only session cookie.
func (h *CookieHelper) SetToken(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.Domain,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: h.SameSite,
	})
}

// Clear overwrites the session cookie with an expired empty one.
func (h *CookieHelper) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: h.SameSite,
	})
}
