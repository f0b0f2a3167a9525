package borrow

import (
	"time"

	"github.com/frahmantamala/inventory-management/internal"
)

// BorrowItemDTO opens a borrow record. ReturnDate here is the promised
// due date; the actual return date is only set when the item comes back.
type BorrowItemDTO struct {
	UserID      int64  `json:"userId"`
	InventoryID int64  `json:"inventoryId"`
	BorrowDate  string `json:"borrowDate"`
	ReturnDate  string `json:"returnDate"`

	borrowDate time.Time
	dueDate    time.Time
}

type ReturnItemDTO struct {
	BorrowID   int64  `json:"borrowId"`
	ReturnDate string `json:"returnDate"`

	returnDate time.Time
}

// UpdateBorrowDTO carries optional fields; nil means keep the stored value.
type UpdateBorrowDTO struct {
	UserID      *int64  `json:"userId"`
	InventoryID *int64  `json:"inventoryId"`
	BorrowDate  *string `json:"borrowDate"`
	DueDate     *string `json:"dueDate"`
	ReturnDate  *string `json:"returnDate"`
}

type UsageReportDTO struct {
	BorrowDate string `json:"borrowDate"`
	ReturnDate string `json:"returnDate"`
	GroupBy    string `json:"group_by"`

	from time.Time
	to   time.Time
}

type BorrowAnalysisDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	from time.Time
	to   time.Time
}

var validGroupBy = map[string]bool{
	GroupByUser:     true,
	GroupByItem:     true,
	GroupByCategory: true,
	GroupByLocation: true,
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (dto *BorrowItemDTO) Validate() error {
	if dto.UserID == 0 {
		return internal.NewValidationFieldError("userId", "userId is required", internal.ErrCodeValidationFailed)
	}
	if dto.InventoryID == 0 {
		return internal.NewValidationFieldError("inventoryId", "inventoryId is required", internal.ErrCodeValidationFailed)
	}
	if dto.BorrowDate == "" {
		return internal.NewValidationFieldError("borrowDate", "borrowDate is required", internal.ErrCodeValidationFailed)
	}
	if dto.ReturnDate == "" {
		return internal.NewValidationFieldError("returnDate", "returnDate is required", internal.ErrCodeValidationFailed)
	}

	var err error
	if dto.borrowDate, err = parseDate(dto.BorrowDate); err != nil {
		return internal.NewValidationFieldError("borrowDate", "borrowDate must be a valid date", internal.ErrCodeInvalidDate)
	}
	if dto.dueDate, err = parseDate(dto.ReturnDate); err != nil {
		return internal.NewValidationFieldError("returnDate", "returnDate must be a valid date", internal.ErrCodeInvalidDate)
	}
	if dto.dueDate.Before(dto.borrowDate) {
		return internal.NewValidationFieldError("returnDate", "returnDate cannot be before borrowDate", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto *ReturnItemDTO) Validate() error {
	if dto.BorrowID == 0 {
		return internal.NewValidationFieldError("borrowId", "borrowId is required", internal.ErrCodeValidationFailed)
	}
	if dto.ReturnDate == "" {
		return internal.NewValidationFieldError("returnDate", "returnDate is required", internal.ErrCodeValidationFailed)
	}

	var err error
	if dto.returnDate, err = parseDate(dto.ReturnDate); err != nil {
		return internal.NewValidationFieldError("returnDate", "returnDate must be a valid date", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto UpdateBorrowDTO) Validate() error {
	for field, value := range map[string]*string{
		"borrowDate": dto.BorrowDate,
		"dueDate":    dto.DueDate,
		"returnDate": dto.ReturnDate,
	} {
		if value == nil {
			continue
		}
		if _, err := parseDate(*value); err != nil {
			return internal.NewValidationFieldError(field, field+" must be a valid date", internal.ErrCodeInvalidDate)
		}
	}
	return nil
}

func (dto *UsageReportDTO) Validate() error {
	if dto.BorrowDate == "" || dto.ReturnDate == "" || dto.GroupBy == "" {
		return internal.NewValidationFieldError("borrowDate", "borrowDate, returnDate, and group_by are required", internal.ErrCodeValidationFailed)
	}
	if !validGroupBy[dto.GroupBy] {
		return internal.NewValidationFieldError("group_by", "group_by must be one of user, item, category, location", internal.ErrCodeInvalidGroupBy)
	}

	var err error
	if dto.from, err = parseDate(dto.BorrowDate); err != nil {
		return internal.NewValidationFieldError("borrowDate", "borrowDate must be a valid date", internal.ErrCodeInvalidDate)
	}
	if dto.to, err = parseDate(dto.ReturnDate); err != nil {
		return internal.NewValidationFieldError("returnDate", "returnDate must be a valid date", internal.ErrCodeInvalidDate)
	}
	if dto.to.Before(dto.from) {
		return internal.NewValidationFieldError("returnDate", "returnDate cannot be before borrowDate", internal.ErrCodeInvalidDate)
	}
	return nil
}

func (dto *BorrowAnalysisDTO) Validate() error {
	if dto.StartDate == "" || dto.EndDate == "" {
		return internal.NewValidationFieldError("start_date", "start_date and end_date are required", internal.ErrCodeValidationFailed)
	}

	var err error
	if dto.from, err = parseDate(dto.StartDate); err != nil {
		return internal.NewValidationFieldError("start_date", "start_date must be a valid date", internal.ErrCodeInvalidDate)
	}
	if dto.to, err = parseDate(dto.EndDate); err != nil {
		return internal.NewValidationFieldError("end_date", "end_date must be a valid date", internal.ErrCodeInvalidDate)
	}
	if dto.to.Before(dto.from) {
		return internal.NewValidationFieldError("end_date", "end_date cannot be before start_date", internal.ErrCodeInvalidDate)
	}
	return nil
}
