package inventory

import (
	"log/slog"

	"github.com/frahmantamala/inventory-management/internal"
	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
)

type RepositoryAPI interface {
	GetAll() ([]*inventoryDatamodel.Inventory, error)
	GetByID(id int64) (*inventoryDatamodel.Inventory, error)
	Create(item *inventoryDatamodel.Inventory) error
	Update(item *inventoryDatamodel.Inventory) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Inventory, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list inventory", "error", err)
		return nil, err
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetByID(id int64) (*Inventory, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, internal.ErrInventoryNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(dto CreateInventoryDTO) (*Inventory, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row := &inventoryDatamodel.Inventory{
		Name:     dto.Name,
		Category: dto.Category,
		Location: dto.Location,
		Quantity: *dto.Quantity,
	}
	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create inventory", "name", dto.Name, "error", err)
		return nil, err
	}

	s.logger.Info("inventory created", "inventory_id", row.InventoryID, "name", row.Name, "quantity", row.Quantity)
	return FromDataModel(row), nil
}

// Update null-coalesces omitted fields to the stored values.
func (s *Service) Update(id int64, dto UpdateInventoryDTO) (*Inventory, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, internal.ErrInventoryNotFound
	}

	if dto.Name != nil {
		row.Name = *dto.Name
	}
	if dto.Category != nil {
		row.Category = *dto.Category
	}
	if dto.Location != nil {
		row.Location = *dto.Location
	}
	if dto.Quantity != nil {
		row.Quantity = *dto.Quantity
	}

	if err := s.repo.Update(row); err != nil {
		s.logger.Error("failed to update inventory", "inventory_id", id, "error", err)
		return nil, err
	}

	return FromDataModel(row), nil
}

func (s *Service) Delete(id int64) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return internal.ErrInventoryNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete inventory", "inventory_id", id, "error", err)
		return err
	}

	s.logger.Info("inventory deleted", "inventory_id", id)
	return nil
}
