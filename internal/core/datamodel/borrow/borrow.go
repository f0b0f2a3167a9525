package borrow

import (
	"time"

	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
	userDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/user"
)

// BorrowRecord links a user to an inventory item for a date range.
// DueDate is the return date promised at borrow time; ReturnDate stays NULL
// until the item actually comes back, so record status is derivable from it.
type BorrowRecord struct {
	BorrowID    int64      `gorm:"column:borrow_id;primaryKey;autoIncrement"`
	UserID      int64      `gorm:"column:user_id;not null;index"`
	InventoryID int64      `gorm:"column:inventory_id;not null;index"`
	BorrowDate  time.Time  `gorm:"column:borrow_date;not null"`
	DueDate     time.Time  `gorm:"column:due_date;not null"`
	ReturnDate  *time.Time `gorm:"column:return_date"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`

	User      *userDatamodel.User           `gorm:"foreignKey:UserID;references:UserID"`
	Inventory *inventoryDatamodel.Inventory `gorm:"foreignKey:InventoryID;references:InventoryID"`
}

func (BorrowRecord) TableName() string {
	return "borrow_records"
}
