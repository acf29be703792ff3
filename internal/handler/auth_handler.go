package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"event-management-api/internal/auth"
	"event-management-api/internal/problem"
)

type loginResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

type whoamiResponse struct {
	Username *string `json:"username"`
	ID       *int64  `json:"id,omitempty"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	var in auth.Credentials
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}

	p, err := h.auth.Register(r.Context(), in)
	h.metrics.AuthAttempt("register", err == nil)
	if err != nil {
		problem.Write(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("user_id", p.ID).Msg("user registered")
	writeJSON(w, http.StatusCreated, okResponse{OK: true})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	var in auth.Credentials
	if err := decodeJSON(w, r, &in); err != nil {
		problem.Write(w, r, err)
		return
	}

	t, err := h.auth.Login(r.Context(), in)
	h.metrics.AuthAttempt("login", err == nil)
	if err != nil {
		problem.Write(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(t.Token, t.ExpiresAt))
	writeJSON(w, http.StatusOK, loginResponse{OK: true, Username: t.Profile.Username, ID: t.Profile.ID})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, who auth.Identity) {
	err := h.auth.Logout(r.Context(), who)
	h.metrics.AuthAttempt("logout", err == nil)
	if err != nil {
		problem.Write(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0)))
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) WhoAmI(w http.ResponseWriter, r *http.Request, who auth.Identity) {
	p := h.auth.WhoAmI(who)
	if p == nil {
		writeJSON(w, http.StatusOK, whoamiResponse{})
		return
	}
	writeJSON(w, http.StatusOK, whoamiResponse{Username: &p.Username, ID: &p.ID})
}

// An empty value clears the cookie.
func (h *Handler) sessionCookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
	} else {
		c.MaxAge = int(time.Until(expires).Seconds())
	}
	return c
}
