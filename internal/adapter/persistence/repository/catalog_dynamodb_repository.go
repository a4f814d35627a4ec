package repository

import (
	"context"

	"aerodetail/internal/domain/entities"
	"aerodetail/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAircraftTableName = "aircraft"
	defaultServicesTableName = "services"
	defaultPackagesTableName = "packages"
)

type aircraftItem struct {
	ID              string  `dynamodbav:"id"`
	Manufacturer    string  `dynamodbav:"manufacturer"`
	Model           string  `dynamodbav:"model"`
	Category        string  `dynamodbav:"category"`
	Seats           int     `dynamodbav:"seats"`
	SurfaceAreaSqFt float64 `dynamodbav:"surface_area_sq_ft"`
	ExteriorHours   float64 `dynamodbav:"exterior_hours"`
	InteriorHours   float64 `dynamodbav:"interior_hours"`
}

type serviceItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Type        string  `dynamodbav:"type"`
	HourlyRate  float64 `dynamodbav:"hourly_rate"`
	Description string  `dynamodbav:"description,omitempty"`
}

type packageItem struct {
	ID         string   `dynamodbav:"id"`
	Name       string   `dynamodbav:"name"`
	Price      float64  `dynamodbav:"price"`
	ServiceIDs []string `dynamodbav:"service_ids"`
}

// CatalogDynamoRepository reads the aircraft/service/package reference
// tables. The engine never writes catalog rows; seeding happens out of band.
//
// Table requirements (all three):
//   - PK: id (string)

type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	aircraftTable string
	servicesTable string
	packagesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		aircraftTable: getenvDefault("AIRCRAFT_TABLE", defaultAircraftTableName),
		servicesTable: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		packagesTable: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

func (r *CatalogDynamoRepository) GetAircraft(ctx context.Context, id string) (entities.Aircraft, error) {
	item, err := r.getByID(ctx, r.aircraftTable, id)
	if err != nil || len(item) == 0 {
		return entities.Aircraft{}, err
	}

	var it aircraftItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Aircraft{}, err
	}
	return entities.Aircraft{
		ID:              it.ID,
		Manufacturer:    it.Manufacturer,
		Model:           it.Model,
		Category:        entities.AircraftCategory(it.Category),
		Seats:           it.Seats,
		SurfaceAreaSqFt: it.SurfaceAreaSqFt,
		ExteriorHours:   it.ExteriorHours,
		InteriorHours:   it.InteriorHours,
	}, nil
}

// ListServices resolves ids in order and silently drops unknown ones; the
// caller decides whether a shorter result is an error.
func (r *CatalogDynamoRepository) ListServices(ctx context.Context, ids []string) ([]entities.Service, error) {
	services := make([]entities.Service, 0, len(ids))
	for _, id := range ids {
		item, err := r.getByID(ctx, r.servicesTable, id)
		if err != nil {
			return nil, err
		}
		if len(item) == 0 {
			continue
		}
		var it serviceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		services = append(services, entities.Service{
			ID:          it.ID,
			Name:        it.Name,
			Type:        entities.ServiceType(it.Type),
			HourlyRate:  it.HourlyRate,
			Description: it.Description,
		})
	}
	return services, nil
}

func (r *CatalogDynamoRepository) GetPackage(ctx context.Context, id string) (entities.Package, error) {
	item, err := r.getByID(ctx, r.packagesTable, id)
	if err != nil || len(item) == 0 {
		return entities.Package{}, err
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Package{}, err
	}
	return entities.Package{
		ID:         it.ID,
		Name:       it.Name,
		Price:      it.Price,
		ServiceIDs: it.ServiceIDs,
	}, nil
}

func (r *CatalogDynamoRepository) getByID(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}
