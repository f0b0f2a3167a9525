package borrow

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
	GetAll() ([]*BorrowRecordResponse, error)
	GetByID(id int64) (*BorrowRecordResponse, error)
	BorrowItem(dto BorrowItemDTO) (*BorrowRecordResponse, error)
	ReturnItem(dto ReturnItemDTO) (*ReturnItemResponse, error)
	Update(id int64, dto UpdateBorrowDTO) (*BorrowRecordResponse, error)
	Delete(id int64) error
	UsageReport(dto UsageReportDTO) (*UsageReportResponse, error)
	BorrowAnalysis(dto BorrowAnalysisDTO) (*BorrowAnalysisResponse, error)
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
	records, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetAll: failed to list borrow records", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Borrow records retrieved successfully", records)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "borrowId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid borrow record ID.")
		return
	}

	record, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Borrow record retrieved successfully", record)
}

func (h *Handler) BorrowItem(w http.ResponseWriter, r *http.Request) {
	var dto BorrowItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.BorrowItem(dto)
	if err != nil {
		h.Logger.Error("BorrowItem: service error",
			"user_id", dto.UserID, "inventory_id", dto.InventoryID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, "Borrow record created successfully", record)
}

func (h *Handler) ReturnItem(w http.ResponseWriter, r *http.Request) {
	var dto ReturnItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.ReturnItem(dto)
	if err != nil {
		h.Logger.Error("ReturnItem: service error", "borrow_id", dto.BorrowID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Item returned successfully", result)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "borrowId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid borrow record ID.")
		return
	}

	var dto UpdateBorrowDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.Update(id, dto)
	if err != nil {
		h.Logger.Error("Update: service error", "borrow_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Borrow record updated successfully", record)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "borrowId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "Invalid borrow record ID.")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.Logger.Error("Delete: service error", "borrow_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Borrow record deleted successfully", nil)
}

func (h *Handler) UsageReport(w http.ResponseWriter, r *http.Request) {
	var dto UsageReportDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.Service.UsageReport(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Usage report generated successfully", report)
}

func (h *Handler) BorrowAnalysis(w http.ResponseWriter, r *http.Request) {
	var dto BorrowAnalysisDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.Service.BorrowAnalysis(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, "Borrow analysis generated successfully", analysis)
}
