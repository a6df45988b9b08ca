package handlers

import (
	"net/http"

	"github.com/wellywell/washboard/internal/types"
	"github.com/wellywell/washboard/internal/validate"
)

func (h *HandlerSet) HandleListWashermen(w http.ResponseWriter, req *http.Request) {
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}
	q := req.URL.Query().Get("q")
	writeList(w, req, c.ListWashermen(req.Context()), func(wm types.Washerman) bool {
		return wm.Matches(q)
	})
}

func (h *HandlerSet) HandleCreateWasherman(w http.ResponseWriter, req *http.Request) {
	var form validate.WashermanForm
	if !decodeForm(w, req, &form) {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	wm, err := c.CreateWasherman(req.Context(), types.WashermanInput{Username: form.Username, Password: form.Password})
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusCreated, response{Success: true, Message: "Washerman created", Data: wm})
}

// HandleUpdateWasherman keeps the stored password when none is submitted.
func (h *HandlerSet) HandleUpdateWasherman(w http.ResponseWriter, req *http.Request) {
	id, ok := idParam(w, req)
	if !ok {
		return
	}
	var form validate.WashermanUpdateForm
	if !decodeForm(w, req, &form) {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	wm, err := c.UpdateWasherman(req.Context(), id, types.WashermanInput{Username: form.Username, Password: form.Password})
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Washerman updated", Data: wm})
}

func (h *HandlerSet) HandleDeleteWasherman(w http.ResponseWriter, req *http.Request) {
	id, ok := idParam(w, req)
	if !ok {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	if err := c.DeleteWasherman(req.Context(), id); err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Washerman deleted"})
}
