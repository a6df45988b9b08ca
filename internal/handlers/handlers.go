package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/api"
	"github.com/wellywell/washboard/internal/auth"
	"github.com/wellywell/washboard/internal/order"
	"github.com/wellywell/washboard/internal/session"
	"github.com/wellywell/washboard/internal/validate"
)

type HandlerSet struct {
	client *api.Client
	now    func() time.Time
}

var ErrNoSession = errors.New("no session in request context")

func NewHandlerSet(client *api.Client) *HandlerSet {
	return &HandlerSet{
		client: client,
		now:    time.Now,
	}
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeResponse(w http.ResponseWriter, code int, resp response) {
	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Could not serialize result", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(body)
	if err != nil {
		logger.Errorf("Could not write response: %s", err.Error())
	}
}

func writeData(w http.ResponseWriter, code int, data any) {
	writeResponse(w, code, response{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeResponse(w, code, response{Success: false, Message: message})
}

type normalizer interface {
	Normalize()
}

// decodeForm reads, normalizes and validates a form. It writes the error
// response itself and reports whether the handler may go on.
func decodeForm(w http.ResponseWriter, req *http.Request, form any) bool {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return false
	}
	if err := json.Unmarshal(body, form); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse body")
		return false
	}
	if n, ok := form.(normalizer); ok {
		n.Normalize()
	}
	if err := validate.Struct(form); err != nil {
		var fieldErrs validate.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeResponse(w, http.StatusUnprocessableEntity, response{
				Success: false,
				Message: "Please fix the highlighted fields",
				Data:    fieldErrs,
			})
			return false
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

func fieldError(w http.ResponseWriter, field, message string) {
	writeResponse(w, http.StatusUnprocessableEntity, response{
		Success: false,
		Message: "Please fix the highlighted fields",
		Data:    validate.FieldErrors{field: message},
	})
}

// handleError maps an error from the backend client or the order service to a response.
func handleError(w http.ResponseWriter, req *http.Request, err error) {
	if errors.Is(err, api.ErrUnauthorized) {
		auth.ClearSessionCookie(w)
		writeError(w, http.StatusUnauthorized, "Session expired, please log in again")
		return
	}

	var transitionErr *order.TransitionError
	switch {
	case errors.Is(err, order.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.As(err, &transitionErr):
		writeError(w, http.StatusConflict, transitionErr.Error())
		return
	case errors.Is(err, order.ErrTerminal):
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	logger.WithError(err).WithField("path", req.URL.Path).Warn("Backend request failed")

	code := http.StatusBadGateway
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= http.StatusBadRequest {
		code = apiErr.Status
	}
	writeError(w, code, api.Message(err))
}

// writeList answers with the data even when the fetch failed, so the page can
// render an empty table next to the reason.
func writeList[T any](w http.ResponseWriter, req *http.Request, res api.Result[[]T], keep func(T) bool) {
	if errors.Is(res.Err, api.ErrUnauthorized) {
		handleError(w, req, res.Err)
		return
	}

	items := make([]T, 0, len(res.OrEmpty()))
	for _, item := range res.OrEmpty() {
		if keep == nil || keep(item) {
			items = append(items, item)
		}
	}

	resp := response{Success: res.OK(), Data: items}
	if !res.OK() {
		resp.Message = api.Message(res.Err)
	}
	writeResponse(w, http.StatusOK, resp)
}

func (h *HandlerSet) session(req *http.Request) (*session.Session, error) {
	s, ok := session.FromContext(req.Context())
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// clientFor returns the backend client bound to the request's session.
func (h *HandlerSet) clientFor(w http.ResponseWriter, req *http.Request) (*api.Client, bool) {
	s, err := h.session(req)
	if err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return nil, false
	}
	return h.client.For(s), true
}

func idParam(w http.ResponseWriter, req *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// RequireAuth rejects requests whose session is not logged in.
func (h *HandlerSet) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s, err := h.session(req)
		if err != nil || !s.Authenticated() {
			writeError(w, http.StatusUnauthorized, "Please log in")
			return
		}
		next.ServeHTTP(w, req)
	})
}
