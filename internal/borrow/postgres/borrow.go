package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/inventory-management/internal"
	"github.com/frahmantamala/inventory-management/internal/borrow"
	borrowDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/borrow"
	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
)

type BorrowRepository struct {
	db *gorm.DB
}

func NewBorrowRepository(db *gorm.DB) borrow.RepositoryAPI {
	return &BorrowRepository{db: db}
}

func (r *BorrowRepository) GetAll() ([]*borrowDatamodel.BorrowRecord, error) {
	var records []*borrowDatamodel.BorrowRecord
	err := r.db.
		Preload("User").
		Preload("Inventory").
		Order("borrow_id ASC").
		Find(&records).Error
	return records, err
}

func (r *BorrowRepository) GetByID(id int64) (*borrowDatamodel.BorrowRecord, error) {
	var record borrowDatamodel.BorrowRecord
	err := r.db.
		Preload("User").
		Preload("Inventory").
		Where("borrow_id = ?", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// CreateBorrow claims one unit of stock and inserts the record in a single
// transaction. The decrement is guarded by quantity > 0 so concurrent borrows
// of the last unit cannot drive the stock negative; the loser of the race
// gets ErrInventoryUnavailable and nothing is persisted.
func (r *BorrowRepository) CreateBorrow(rec *borrowDatamodel.BorrowRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&inventoryDatamodel.Inventory{}).
			Where("inventory_id = ? AND quantity > 0", rec.InventoryID).
			Update("quantity", gorm.Expr("quantity - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrInventoryUnavailable
		}
		return tx.Create(rec).Error
	})
}

// CloseBorrow stamps the return date and restores one unit of stock in a
// single transaction. A record whose inventory row has since been deleted is
// still closed; the restore simply matches zero rows.
func (r *BorrowRepository) CloseBorrow(id int64, returnDate time.Time) (*borrowDatamodel.BorrowRecord, error) {
	var record borrowDatamodel.BorrowRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("borrow_id = ?", id).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return internal.ErrBorrowNotFound
			}
			return err
		}

		record.ReturnDate = &returnDate
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		return tx.Model(&inventoryDatamodel.Inventory{}).
			Where("inventory_id = ?", record.InventoryID).
			Update("quantity", gorm.Expr("quantity + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *BorrowRepository) Update(rec *borrowDatamodel.BorrowRecord) error {
	return r.db.Omit("User", "Inventory").Save(rec).Error
}

func (r *BorrowRepository) Delete(id int64) error {
	return r.db.Where("borrow_id = ?", id).Delete(&borrowDatamodel.BorrowRecord{}).Error
}

// FindInRange selects records whose borrow date falls on or after from and
// whose return date, or due date while still outstanding, falls on or before
// to. Outstanding loans are therefore reported against their promised window
// rather than dropped.
func (r *BorrowRepository) FindInRange(from, to time.Time) ([]*borrowDatamodel.BorrowRecord, error) {
	var records []*borrowDatamodel.BorrowRecord
	err := r.db.
		Preload("User").
		Preload("Inventory").
		Where("borrow_date >= ? AND COALESCE(return_date, due_date) <= ?", from, to).
		Order("borrow_id ASC").
		Find(&records).Error
	return records, err
}
