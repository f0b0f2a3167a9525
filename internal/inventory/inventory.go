package inventory

import (
	"time"

	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
)

type Inventory struct {
	InventoryID int64     `json:"inventoryId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (i *Inventory) IsAvailable() bool {
	return i.Quantity > 0
}

func ToDataModel(i *Inventory) *inventoryDatamodel.Inventory {
	return &inventoryDatamodel.Inventory{
		InventoryID: i.InventoryID,
		Name:        i.Name,
		Category:    i.Category,
		Location:    i.Location,
		Quantity:    i.Quantity,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func FromDataModel(i *inventoryDatamodel.Inventory) *Inventory {
	return &Inventory{
		InventoryID: i.InventoryID,
		Name:        i.Name,
		Category:    i.Category,
		Location:    i.Location,
		Quantity:    i.Quantity,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*inventoryDatamodel.Inventory) []*Inventory {
	result := make([]*Inventory, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
