package auth

import (
	"net/http"
	"time"
)

const sessionCookie = "_washboard"

func ReadSessionID(r *http.Request, secret []byte) (string, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", err
	}
	return GetSessionID(cookie.Value, secret)
}

func SetSessionCookie(sessionID string, w http.ResponseWriter, secret []byte, ttl time.Duration) error {

	token, err := BuildJWTString(sessionID, secret, ttl)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	return nil
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
}
