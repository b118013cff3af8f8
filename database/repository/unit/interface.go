package unitRepo

import "storely/models"

// UnitRepository defines methods for storage-unit data access. Lookup
// methods return (nil, nil) when no document matches.
type UnitRepository interface {
	// GetByID retrieves a storage unit by its unique ID.
	GetByID(id string) (*models.StorageUnit, error)
	// GetAll retrieves all storage units.
	GetAll() ([]models.StorageUnit, error)
	// GetByHost retrieves all storage units listed by a host.
	GetByHost(hostID string) ([]models.StorageUnit, error)
	// Create inserts a new storage unit record.
	Create(unit *models.StorageUnit) error
	// Update modifies an existing storage unit record.
	Update(unit *models.StorageUnit) error
}
