package inventory

import "time"

// Inventory is the persistence model for borrowable items. Quantity counts
// the units still available; active borrows each reserve exactly one unit.
type Inventory struct {
	InventoryID int64     `gorm:"column:inventory_id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null"`
	Category    string    `gorm:"column:category;not null"`
	Location    string    `gorm:"column:location;not null"`
	Quantity    int       `gorm:"column:quantity;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Inventory) TableName() string {
	return "inventories"
}
