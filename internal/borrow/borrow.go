package borrow

import (
	"time"

	borrowDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/borrow"
)

// Record status values, preserved from the original system: a record is
// "dipinjam" (borrowed, outstanding) until its return date is recorded,
// then "kembali" (returned, closed).
const (
	StatusBorrowed = "dipinjam"
	StatusReturned = "kembali"
)

const DateLayout = "2006-01-02"

type BorrowRecord struct {
	BorrowID    int64      `json:"borrowId"`
	UserID      int64      `json:"userId"`
	InventoryID int64      `json:"inventoryId"`
	BorrowDate  time.Time  `json:"borrowDate"`
	DueDate     time.Time  `json:"dueDate"`
	ReturnDate  *time.Time `json:"returnDate"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Status is computed, never stored: the presence of the actual return date
// decides whether the record is still outstanding.
func (r *BorrowRecord) Status() string {
	if r.ReturnDate == nil {
		return StatusBorrowed
	}
	return StatusReturned
}

func (r *BorrowRecord) IsOutstanding() bool {
	return r.ReturnDate == nil
}

// IsLate reports whether the item came back after the promised due date.
func (r *BorrowRecord) IsLate() bool {
	return r.ReturnDate != nil && r.ReturnDate.After(r.DueDate)
}

func ToDataModel(r *BorrowRecord) *borrowDatamodel.BorrowRecord {
	return &borrowDatamodel.BorrowRecord{
		BorrowID:    r.BorrowID,
		UserID:      r.UserID,
		InventoryID: r.InventoryID,
		BorrowDate:  r.BorrowDate,
		DueDate:     r.DueDate,
		ReturnDate:  r.ReturnDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromDataModel(r *borrowDatamodel.BorrowRecord) *BorrowRecord {
	return &BorrowRecord{
		BorrowID:    r.BorrowID,
		UserID:      r.UserID,
		InventoryID: r.InventoryID,
		BorrowDate:  r.BorrowDate,
		DueDate:     r.DueDate,
		ReturnDate:  r.ReturnDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
