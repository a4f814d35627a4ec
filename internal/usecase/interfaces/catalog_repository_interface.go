package interfaces

import (
	"context"

	"aerodetail/internal/domain/entities"
)

// ICatalogRepository abstracts the aircraft/service/package catalog tables.
// Catalog rows are reference data; the engine only reads them.

type ICatalogRepository interface {
	GetAircraft(ctx context.Context, id string) (entities.Aircraft, error)
	ListServices(ctx context.Context, ids []string) ([]entities.Service, error)
	GetPackage(ctx context.Context, id string) (entities.Package, error)
}

// IAccountRepository abstracts per-account configuration.

type IAccountRepository interface {
	GetSettings(ctx context.Context, accountID string) (entities.AccountSettings, error)
	ListAccountIDs(ctx context.Context) ([]string, error)
}
