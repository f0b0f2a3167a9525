package postgres

import (
	"errors"

	"gorm.io/gorm"

	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
	"github.com/frahmantamala/inventory-management/internal/inventory"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) inventory.RepositoryAPI {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) GetAll() ([]*inventoryDatamodel.Inventory, error) {
	var items []*inventoryDatamodel.Inventory
	err := r.db.Order("inventory_id ASC").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) GetByID(id int64) (*inventoryDatamodel.Inventory, error) {
	var item inventoryDatamodel.Inventory
	err := r.db.Where("inventory_id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) Create(item *inventoryDatamodel.Inventory) error {
	return r.db.Create(item).Error
}

func (r *InventoryRepository) Update(item *inventoryDatamodel.Inventory) error {
	return r.db.Save(item).Error
}

func (r *InventoryRepository) Delete(id int64) error {
	return r.db.Where("inventory_id = ?", id).Delete(&inventoryDatamodel.Inventory{}).Error
}
