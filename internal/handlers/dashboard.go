package handlers

import (
	"net/http"

	"github.com/wellywell/washboard/internal/stats"
)

func (h *HandlerSet) HandleDashboard(w http.ResponseWriter, req *http.Request) {
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	d, err := stats.Collect(req.Context(), c, h.now())
	if err != nil {
		handleError(w, req, err)
		return
	}

	resp := response{Success: true, Data: d}
	if len(d.Warnings) > 0 {
		resp.Message = "Some dashboard data could not be loaded"
	}
	writeResponse(w, http.StatusOK, resp)
}
