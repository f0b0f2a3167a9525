package borrow

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
	userDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/user"
	"github.com/frahmantamala/inventory-management/internal/transport"
)

var _ = Describe("BorrowHandler", func() {
	var (
		handler *Handler
		repo    *mockRepository
		router  *chi.Mux
	)

	BeforeEach(func() {
		repo = newMockRepository()
		repo.stock[10] = 1

		users := &mockUserReader{users: map[int64]*userDatamodel.User{
			1: {UserID: 1, Username: "budi", Role: "student"},
		}}
		items := &mockInventoryReader{items: map[int64]*inventoryDatamodel.Inventory{
			10: {InventoryID: 10, Name: "Proyektor", Category: "elektronik", Location: "lab", Quantity: 1},
		}}

		service := NewService(repo, users, items, slog.Default())
		handler = NewHandler(service)

		router = chi.NewRouter()
		router.Get("/getAll", handler.GetAll)
		router.Get("/getBy/{borrowId}", handler.GetByID)
		router.Post("/borrowItem", handler.BorrowItem)
		router.Post("/returnItem", handler.ReturnItem)
		router.Post("/usageReport", handler.UsageReport)
		router.Post("/borrowAnalysis", handler.BorrowAnalysis)
	})

	doJSON := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("should create a borrow record with a success envelope", func() {
		w := doJSON(http.MethodPost, "/borrowItem", map[string]any{
			"userId":      1,
			"inventoryId": 10,
			"borrowDate":  "2025-01-10",
			"returnDate":  "2025-01-20",
		})

		Expect(w.Code).To(Equal(http.StatusCreated))

		var envelope transport.Envelope
		Expect(json.NewDecoder(w.Body).Decode(&envelope)).To(Succeed())
		Expect(envelope.Status).To(Equal("success"))
		Expect(envelope.Message).To(Equal("Borrow record created successfully"))
	})

	It("should answer 400 when the item is out of stock", func() {
		repo.stock[10] = 0

		w := doJSON(http.MethodPost, "/borrowItem", map[string]any{
			"userId":      1,
			"inventoryId": 10,
			"borrowDate":  "2025-01-10",
			"returnDate":  "2025-01-20",
		})

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var envelope transport.Envelope
		Expect(json.NewDecoder(w.Body).Decode(&envelope)).To(Succeed())
		Expect(envelope.Status).To(Equal("error"))
	})

	It("should answer 404 for an unknown user", func() {
		w := doJSON(http.MethodPost, "/borrowItem", map[string]any{
			"userId":      99,
			"inventoryId": 10,
			"borrowDate":  "2025-01-10",
			"returnDate":  "2025-01-20",
		})

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should answer 400 on missing body fields", func() {
		w := doJSON(http.MethodPost, "/borrowItem", map[string]any{"userId": 1})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should return a record through the router path parameter", func() {
		created := doJSON(http.MethodPost, "/borrowItem", map[string]any{
			"userId":      1,
			"inventoryId": 10,
			"borrowDate":  "2025-01-10",
			"returnDate":  "2025-01-20",
		})
		Expect(created.Code).To(Equal(http.StatusCreated))

		w := doJSON(http.MethodGet, "/getBy/1", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("should answer 400 for a malformed record ID", func() {
		w := doJSON(http.MethodGet, "/getBy/abc", nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should close a record via returnItem", func() {
		created := doJSON(http.MethodPost, "/borrowItem", map[string]any{
			"userId":      1,
			"inventoryId": 10,
			"borrowDate":  "2025-01-10",
			"returnDate":  "2025-01-20",
		})
		Expect(created.Code).To(Equal(http.StatusCreated))

		w := doJSON(http.MethodPost, "/returnItem", map[string]any{
			"borrowId":   1,
			"returnDate": "2025-01-18",
		})
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(repo.stock[10]).To(Equal(1))
	})

	It("should answer 400 for an invalid group dimension", func() {
		w := doJSON(http.MethodPost, "/usageReport", map[string]any{
			"borrowDate": "2025-01-01",
			"returnDate": "2025-01-31",
			"group_by":   "color",
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should answer 200 with an empty analysis when nothing matches", func() {
		w := doJSON(http.MethodPost, "/usageReport", map[string]any{
			"borrowDate": "2030-01-01",
			"returnDate": "2030-01-31",
			"group_by":   "item",
		})
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("should answer 400 when analysis dates are missing", func() {
		w := doJSON(http.MethodPost, "/borrowAnalysis", map[string]any{
			"start_date": "2025-01-01",
		})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})
