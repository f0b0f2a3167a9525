package inventory

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/inventory-management/internal/transport"
	"github.com/frahmantamala/inventory-management/pkg/logger"
)

type ServiceAPI interface {
	GetAll() ([]*Inventory, error)
	GetByID(id int64) (*Inventory, error)
	Create(dto CreateInventoryDTO) (*Inventory, error)
	Update(id int64, dto UpdateInventoryDTO) (*Inventory, error)
	Delete(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetAll: failed to list inventory", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Inventory retrieved successfully", items)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "inventoryId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid inventory ID.")
		return
	}

	item, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Inventory retrieved successfully", item)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateInventoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Create(dto)
	if err != nil {
		h.Logger.Error("Create: service error", "name", dto.Name, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Inventory added successfully", item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "inventoryId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid inventory ID.")
		return
	}

	var dto UpdateInventoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Error("Update: service error", "inventory_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Inventory updated successfully", item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "inventoryId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid inventory ID.")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("Delete: service error", "inventory_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Inventory deleted successfully", nil)
}
