package borrow

import (
	borrowDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/borrow"
)

type BorrowUser struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type BorrowInventory struct {
	InventoryID int64  `json:"inventoryId"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

type BorrowRecordResponse struct {
	BorrowID    int64            `json:"borrowId"`
	UserID      int64            `json:"userId"`
	InventoryID int64            `json:"inventoryId"`
	BorrowDate  string           `json:"borrowDate"`
	DueDate     string           `json:"dueDate"`
	ReturnDate  *string          `json:"returnDate"`
	Status      string           `json:"status"`
	User        *BorrowUser      `json:"user,omitempty"`
	Inventory   *BorrowInventory `json:"inventory,omitempty"`
}

type ReturnItemResponse struct {
	BorrowID    int64  `json:"borrowId"`
	InventoryID int64  `json:"inventoryId"`
	ReturnDate  string `json:"returnDate"`
	Status      string `json:"status"`
}

type AnalysisPeriode struct {
	BorrowDate string `json:"borrowDate"`
	ReturnDate string `json:"returnDate"`
}

type UsageGroup struct {
	Group         string `json:"group"`
	TotalBorrowed int    `json:"total_borrowed"`
	TotalReturned int    `json:"total_returned"`
	ItemsInUse    int    `json:"items_in_use"`
}

type UsageReportResponse struct {
	AnalysisPeriode AnalysisPeriode `json:"analysis_periode"`
	GroupBy         string          `json:"group_by"`
	UsageAnalysis   []*UsageGroup   `json:"usage_analysis"`
}

type AnalysisPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ItemUsage struct {
	ItemID        int64  `json:"item_id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	TotalBorrowed int    `json:"total_borrowed"`
}

type LateItemUsage struct {
	ItemID           int64  `json:"item_id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	TotalBorrowed    int    `json:"total_borrowed"`
	TotalLateReturns int    `json:"total_late_returns"`
}

type BorrowAnalysisResponse struct {
	AnalysisPeriod          AnalysisPeriod   `json:"analysis_period"`
	FrequentlyBorrowedItems []*ItemUsage     `json:"frequently_borrowed_items"`
	InefficientItems        []*LateItemUsage `json:"inefficient_items"`
}

func toRecordResponse(row *borrowDatamodel.BorrowRecord) *BorrowRecordResponse {
	rec := FromDataModel(row)

	resp := &BorrowRecordResponse{
		BorrowID:    rec.BorrowID,
		UserID:      rec.UserID,
		InventoryID: rec.InventoryID,
		BorrowDate:  rec.BorrowDate.Format(DateLayout),
		DueDate:     rec.DueDate.Format(DateLayout),
		Status:      rec.Status(),
	}
	if rec.ReturnDate != nil {
		returned := rec.ReturnDate.Format(DateLayout)
		resp.ReturnDate = &returned
	}
	if row.User != nil {
		resp.User = &BorrowUser{
			UserID:   row.User.UserID,
			Username: row.User.Username,
			Role:     row.User.Role,
		}
	}
	if row.Inventory != nil {
		resp.Inventory = &BorrowInventory{
			InventoryID: row.Inventory.InventoryID,
			Name:        row.Inventory.Name,
			Category:    row.Inventory.Category,
			Location:    row.Inventory.Location,
		}
	}
	return resp
}

func toRecordResponses(rows []*borrowDatamodel.BorrowRecord) []*BorrowRecordResponse {
	out := make([]*BorrowRecordResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecordResponse(row))
	}
	return out
}
