// Package flash carries one-shot notices across a redirect in short
// lived cookies, read and cleared on the next page render.
package flash

import (
	"net/http"
	"net/url"
)

const (
	noticeCookie = "flash_notice"
	errorCookie  = "flash_error"
)

// Notice queues an informational message for the next rendered page.
func Notice(w http.ResponseWriter, msg string) {
	set(w, noticeCookie, msg)
}

// Error queues an error message for the next rendered page.
func Error(w http.ResponseWriter, msg string) {
	set(w, errorCookie, msg)
}

// Pop returns and clears any queued messages.
func Pop(w http.ResponseWriter, r *http.Request) (notices, errors []string) {
	if msg := pop(w, r, noticeCookie); msg != "" {
		notices = append(notices, msg)
	}
	if msg := pop(w, r, errorCookie); msg != "" {
		errors = append(errors, msg)
	}
	return notices, errors
}

func set(w http.ResponseWriter, name, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

func pop(w http.ResponseWriter, r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
