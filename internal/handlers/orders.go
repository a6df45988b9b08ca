package handlers

import (
	"fmt"
	"net/http"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/washboard/internal/export"
	"github.com/wellywell/washboard/internal/order"
	"github.com/wellywell/washboard/internal/types"
	"github.com/wellywell/washboard/internal/validate"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *HandlerSet) HandleListOrders(w http.ResponseWriter, req *http.Request) {
	status, err := order.ParseFilter(req.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	res := c.ListOrders(req.Context())
	res.Data = order.Filter(res.OrEmpty(), status, req.URL.Query().Get("q"))
	writeList(w, req, res, nil)
}

func (h *HandlerSet) HandlePendingOrders(w http.ResponseWriter, req *http.Request) {
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}
	q := req.URL.Query().Get("q")
	writeList(w, req, c.ListPendingOrders(req.Context()), func(o types.Order) bool {
		return o.Matches(q)
	})
}

// HandleExportOrders sends the filtered order table as an XLSX download.
func (h *HandlerSet) HandleExportOrders(w http.ResponseWriter, req *http.Request) {
	status, err := order.ParseFilter(req.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	res := c.ListOrders(req.Context())
	if !res.OK() {
		handleError(w, req, res.Err)
		return
	}

	data, err := export.Orders(order.Filter(res.Data, status, req.URL.Query().Get("q")))
	if err != nil {
		logger.Error(err)
		writeError(w, http.StatusInternalServerError, "Could not build export")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "orders-"+h.now().Format("2006-01-02")+".xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Errorf("Could not write export: %s", err.Error())
	}
}

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	var form validate.OrderForm
	if !decodeForm(w, req, &form) {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	created, err := c.CreateOrder(req.Context(), form.BagNo, int(form.Clothes))
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusCreated, response{Success: true, Message: "Order created", Data: created})
}

func (h *HandlerSet) HandleSetOrderStatus(w http.ResponseWriter, req *http.Request) {
	id, ok := idParam(w, req)
	if !ok {
		return
	}
	var form validate.StatusForm
	if !decodeForm(w, req, &form) {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	updated, err := order.NewService(c).SetStatus(req.Context(), id, types.Status(form.Status))
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Order status updated", Data: updated})
}

func (h *HandlerSet) HandleAdvanceOrder(w http.ResponseWriter, req *http.Request) {
	id, ok := idParam(w, req)
	if !ok {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	updated, err := order.NewService(c).Advance(req.Context(), id)
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Order status updated", Data: updated})
}

func (h *HandlerSet) HandleSetOrderCount(w http.ResponseWriter, req *http.Request) {
	id, ok := idParam(w, req)
	if !ok {
		return
	}
	var form validate.CountForm
	if !decodeForm(w, req, &form) {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	updated, err := c.UpdateOrderCount(req.Context(), id, int(form.Clothes))
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Clothes count updated", Data: updated})
}

func (h *HandlerSet) HandleDeleteOrder(w http.ResponseWriter, req *http.Request) {
	id, ok := idParam(w, req)
	if !ok {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	if err := c.DeleteOrder(req.Context(), id); err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Order deleted"})
}

type transitions struct {
	Current  types.Status   `json:"current"`
	Targets  []types.Status `json:"targets"`
	Next     types.Status   `json:"next"`
	Terminal bool           `json:"terminal"`
}

// HandleOrderTransitions tells the status control what to offer for one order.
func (h *HandlerSet) HandleOrderTransitions(w http.ResponseWriter, req *http.Request) {
	id, ok := idParam(w, req)
	if !ok {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	o, err := order.NewService(c).Find(req.Context(), id)
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeData(w, http.StatusOK, transitions{
		Current:  o.Status,
		Targets:  order.Targets(o.Status),
		Next:     order.Next(o.Status),
		Terminal: order.Terminal(o.Status),
	})
}
