package handler

import (
	"io"
	"net/http"

	"github.com/ffc/club/api/internal/model"
	"github.com/ffc/club/api/internal/service"
)

// maxAdminBodySize bounds admin form submissions
const maxAdminBodySize = 1 << 20

// AdminHandler exposes the generic CRUD surface over the managed
// content kinds. All routes sit behind AdminAuth.
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// List handles GET /v1/admin/{kind}
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseKind(r.PathValue("kind"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	records, err := h.adminService.List(r.Context(), kind)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, records)
}

// Get handles GET /v1/admin/{kind}/{id}. The literal id "new" returns
// the kind's form defaults.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseKind(r.PathValue("kind"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	id := r.PathValue("id")
	if id == "new" {
		id = ""
	}

	record, err := h.adminService.EditForm(r.Context(), kind, id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, record)
}

// Create handles POST /v1/admin/{kind}
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "")
}

// Update handles PUT /v1/admin/{kind}/{id}
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, MapServiceError(service.ErrMissingID))
		return
	}
	h.save(w, r, id)
}

func (h *AdminHandler) save(w http.ResponseWriter, r *http.Request, id string) {
	kind, err := service.ParseKind(r.PathValue("kind"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxAdminBodySize))
	if err != nil {
		WriteError(w, model.NewBadRequestError("failed to read request body"))
		return
	}

	record, err := h.adminService.Save(r.Context(), kind, id, body)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	WriteData(w, status, record)
}

// Delete handles DELETE /v1/admin/{kind}/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, err := service.ParseKind(r.PathValue("kind"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if err := h.adminService.Delete(r.Context(), kind, r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}
