package inventory

import (
	"github.com/frahmantamala/inventory-management/internal"
)

type CreateInventoryDTO struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
	Quantity *int   `json:"quantity"`
}

// UpdateInventoryDTO carries optional fields; nil means keep the stored value.
type UpdateInventoryDTO struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Location *string `json:"location"`
	Quantity *int    `json:"quantity"`
}

func (dto CreateInventoryDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Category == "" {
		return internal.NewValidationFieldError("category", "category is required", internal.ErrCodeValidationFailed)
	}
	if dto.Location == "" {
		return internal.NewValidationFieldError("location", "location is required", internal.ErrCodeValidationFailed)
	}
	if dto.Quantity == nil {
		return internal.NewValidationFieldError("quantity", "quantity is required", internal.ErrCodeValidationFailed)
	}
	if *dto.Quantity < 0 {
		return internal.NewValidationFieldError("quantity", "quantity cannot be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateInventoryDTO) Validate() error {
	if dto.Name != nil && *dto.Name == "" {
		return internal.NewValidationFieldError("name", "name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.Quantity != nil && *dto.Quantity < 0 {
		return internal.NewValidationFieldError("quantity", "quantity cannot be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}
