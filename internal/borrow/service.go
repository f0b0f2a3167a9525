package borrow

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/inventory-management/internal"
	borrowDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/borrow"
	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
	userDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetAll() ([]*borrowDatamodel.BorrowRecord, error)
	GetByID(id int64) (*borrowDatamodel.BorrowRecord, error)
	// CreateBorrow decrements the inventory stock and inserts the record in
	// one transaction. It returns internal.ErrInventoryUnavailable when no
	// stock could be claimed.
	CreateBorrow(rec *borrowDatamodel.BorrowRecord) error
	// CloseBorrow stamps the return date and restores the inventory stock in
	// one transaction. A record whose inventory row no longer exists is still
	// closed; only the stock restore is skipped.
	CloseBorrow(id int64, returnDate time.Time) (*borrowDatamodel.BorrowRecord, error)
	Update(rec *borrowDatamodel.BorrowRecord) error
	Delete(id int64) error
	FindInRange(from, to time.Time) ([]*borrowDatamodel.BorrowRecord, error)
}

type UserReaderAPI interface {
	GetByID(id int64) (*userDatamodel.User, error)
}

type InventoryReaderAPI interface {
	GetByID(id int64) (*inventoryDatamodel.Inventory, error)
}

type Service struct {
	repo        RepositoryAPI
	users       UserReaderAPI
	inventories InventoryReaderAPI
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, users UserReaderAPI, inventories InventoryReaderAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		users:       users,
		inventories: inventories,
		logger:      logger,
	}
}

func (s *Service) GetAll() ([]*BorrowRecordResponse, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list borrow records", "error", err)
		return nil, err
	}
	return toRecordResponses(rows), nil
}

func (s *Service) GetByID(id int64) (*BorrowRecordResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, internal.ErrBorrowNotFound
	}
	return toRecordResponse(row), nil
}

// BorrowItem opens a borrow record and claims one unit of stock. The stock
// decrement and the record insert commit together or not at all.
func (s *Service) BorrowItem(dto BorrowItemDTO) (*BorrowRecordResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(dto.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, internal.ErrUserNotFound
	}

	item, err := s.inventories.GetByID(dto.InventoryID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, internal.ErrInventoryNotFound
	}

	rec := &borrowDatamodel.BorrowRecord{
		UserID:      dto.UserID,
		InventoryID: dto.InventoryID,
		BorrowDate:  dto.borrowDate,
		DueDate:     dto.dueDate,
	}
	if err := s.repo.CreateBorrow(rec); err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to create borrow record",
			"user_id", dto.UserID, "inventory_id", dto.InventoryID, "error", err)
		return nil, err
	}

	s.logger.Info("item borrowed",
		"borrow_id", rec.BorrowID, "user_id", rec.UserID, "inventory_id", rec.InventoryID)
	return toRecordResponse(rec), nil
}

// ReturnItem closes a borrow record and restores one unit of stock. Closing
// is idempotent on the record's side in that a second return only moves the
// stored return date; the stock restore still runs, so callers are expected
// to return a record once.
func (s *Service) ReturnItem(dto ReturnItemDTO) (*ReturnItemResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.repo.CloseBorrow(dto.BorrowID, dto.returnDate)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to close borrow record", "borrow_id", dto.BorrowID, "error", err)
		return nil, err
	}

	s.logger.Info("item returned",
		"borrow_id", rec.BorrowID, "inventory_id", rec.InventoryID, "return_date", dto.ReturnDate)
	return &ReturnItemResponse{
		BorrowID:    rec.BorrowID,
		InventoryID: rec.InventoryID,
		ReturnDate:  rec.ReturnDate.Format(DateLayout),
		Status:      StatusReturned,
	}, nil
}

// Update null-coalesces omitted fields to the stored values. It does not
// touch inventory stock; BorrowItem and ReturnItem are the only operations
// that move quantities.
func (s *Service) Update(id int64, dto UpdateBorrowDTO) (*BorrowRecordResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, internal.ErrBorrowNotFound
	}

	if dto.UserID != nil {
		row.UserID = *dto.UserID
	}
	if dto.InventoryID != nil {
		row.InventoryID = *dto.InventoryID
	}
	if dto.BorrowDate != nil {
		row.BorrowDate, _ = parseDate(*dto.BorrowDate)
	}
	if dto.DueDate != nil {
		row.DueDate, _ = parseDate(*dto.DueDate)
	}
	if dto.ReturnDate != nil {
		returned, _ := parseDate(*dto.ReturnDate)
		row.ReturnDate = &returned
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update borrow record", "borrow_id", id, "error", err)
		return nil, err
	}

	return toRecordResponse(row), nil
}

func (s *Service) Delete(id int64) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return internal.ErrBorrowNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete borrow record", "borrow_id", id, "error", err)
		return err
	}

	s.logger.Info("borrow record deleted", "borrow_id", id)
	return nil
}
