package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wellywell/washboard/internal/types"
	"github.com/wellywell/washboard/internal/validate"
)

func bagNoParam(w http.ResponseWriter, req *http.Request) (string, bool) {
	bagNo := validate.NormalizeBagNo(chi.URLParam(req, "bagNo"))
	if !validate.BagNo(bagNo) {
		fieldError(w, "bagNo", "Invalid format. Use B-001 or G-001")
		return "", false
	}
	return bagNo, true
}

func (h *HandlerSet) HandleListStudents(w http.ResponseWriter, req *http.Request) {
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}
	q := req.URL.Query().Get("q")
	writeList(w, req, c.ListStudents(req.Context()), func(s types.Student) bool {
		return s.Matches(q)
	})
}

func (h *HandlerSet) HandleCreateStudent(w http.ResponseWriter, req *http.Request) {
	var form validate.StudentForm
	if !decodeForm(w, req, &form) {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	student, err := c.CreateStudent(req.Context(), types.StudentInput{
		BagNo:        form.BagNo,
		Name:         form.Name,
		Email:        form.Email,
		EnrollmentNo: form.EnrollmentNo,
		PhoneNo:      form.PhoneNo,
		ResidencyNo:  form.ResidencyNo,
		Password:     form.Password,
	})
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusCreated, response{Success: true, Message: "Student created", Data: student})
}

func (h *HandlerSet) HandleUpdateStudent(w http.ResponseWriter, req *http.Request) {
	bagNo, ok := bagNoParam(w, req)
	if !ok {
		return
	}
	var form validate.StudentUpdateForm
	if !decodeForm(w, req, &form) {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	student, err := c.UpdateStudent(req.Context(), bagNo, types.StudentInput{
		BagNo:        bagNo,
		Name:         form.Name,
		Email:        form.Email,
		EnrollmentNo: form.EnrollmentNo,
		PhoneNo:      form.PhoneNo,
		ResidencyNo:  form.ResidencyNo,
		Password:     form.Password,
	})
	if err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Student updated", Data: student})
}

func (h *HandlerSet) HandleDeleteStudent(w http.ResponseWriter, req *http.Request) {
	bagNo, ok := bagNoParam(w, req)
	if !ok {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}

	if err := c.DeleteStudent(req.Context(), bagNo); err != nil {
		handleError(w, req, err)
		return
	}
	writeResponse(w, http.StatusOK, response{Success: true, Message: "Student deleted"})
}

func (h *HandlerSet) HandleStudentOrders(w http.ResponseWriter, req *http.Request) {
	bagNo, ok := bagNoParam(w, req)
	if !ok {
		return
	}
	c, ok := h.clientFor(w, req)
	if !ok {
		return
	}
	writeList(w, req, c.ListStudentOrders(req.Context(), bagNo), nil)
}
