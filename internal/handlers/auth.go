package handlers

import (
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/api"
	"github.com/wellywell/washboard/internal/auth"
	"github.com/wellywell/washboard/internal/session"
	"github.com/wellywell/washboard/internal/validate"
)

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {
	var form validate.LoginForm
	if !decodeForm(w, req, &form) {
		return
	}

	s, err := h.session(req)
	if err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	err = s.Login(req.Context(), h.client, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, session.ErrLoginFailed) {
			writeError(w, http.StatusUnauthorized, api.Message(err))
			return
		}
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	user, _ := s.User()
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Logged in", Data: user})
}

func (h *HandlerSet) HandleLogout(w http.ResponseWriter, req *http.Request) {
	s, err := h.session(req)
	if err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if err := s.Logout(req.Context()); err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	auth.ClearSessionCookie(w)
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Logged out"})
}

func (h *HandlerSet) HandleMe(w http.ResponseWriter, req *http.Request) {
	s, err := h.session(req)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Please log in")
		return
	}
	user, ok := s.User()
	if !ok {
		writeError(w, http.StatusUnauthorized, "Please log in")
		return
	}
	writeData(w, http.StatusOK, user)
}
