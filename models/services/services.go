package services

import (
	"context"
	"errors"
	"strings"

	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/AsmaaWasel/Dashboard/mongodb"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	collectionName       = "services"
	serviceIDIndex       = "service_id_1"
	serviceCategoryIndex = "category_id_1"
)

type SearchOptions struct {
	CurrentPage int                `json:"current_page"`
	CategoryID  string             `json:"category_id,omitempty"`
	Name        models.MatchOption `json:"name,omitempty"`
	Country     models.MatchOption `json:"country,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
}

type ServicesModel struct {
	models.BaseModel[objects.Service]
}

func NewServicesModel(ctx context.Context, conn *mongodb.MongoDBConn, paginateSize ...int) (*ServicesModel, error) {

	var searchSize = models.DefaultSearchLenLimit
	var paginateSizeLen = len(paginateSize)
	if paginateSizeLen > 1 {
		return nil, errors.New("PaginateSize can have only one elements")
	} else if paginateSizeLen == 1 {
		searchSize = paginateSize[0]
	}

	coll, err := models.EnsureCollection(ctx, conn, collectionName, bson.M{
		"bsonType": "object",
		"required": []string{"service_id", "category_id", "name"},
		"properties": bson.M{
			"service_id":  models.StringProperty("Service ID must not be empty"),
			"category_id": models.StringProperty("Category ID must not be empty"),
			"name":        models.StringProperty("Name must not be empty"),
			"tags": bson.M{
				"bsonType":    "array",
				"items":       bson.M{"bsonType": "string"},
				"description": "Tags must be a list of strings",
			},
		},
	})
	if err != nil {
		return nil, err
	}

	err = models.EnsureIndexes(ctx, coll,
		models.IndexSpec{Name: serviceIDIndex, Keys: bson.D{{Key: "service_id", Value: 1}}, Unique: true},
		models.IndexSpec{Name: serviceCategoryIndex, Keys: bson.D{{Key: "category_id", Value: 1}}},
	)
	if err != nil {
		return nil, err
	}

	var model = new(ServicesModel)
	if err := model.Inject(coll, searchSize, "service_id"); err != nil {
		return nil, err
	}

	return model, nil
}

func (ServicesModel) GetCollectionName() string {
	return collectionName
}

// Insert stores the service under a fresh id when none is given.
// Name falls back to the title sent by older clients through Provider.
func (m ServicesModel) Insert(ctx context.Context, service objects.Service) (objects.Service, error) {

	if service.ServiceID == "" {
		service.ServiceID = uuid.NewString()
	}

	service.Name = strings.TrimSpace(service.Name)
	if service.Name == "" {
		service.Name = strings.TrimSpace(service.Provider)
	}

	if err := m.BaseModel.Insert(ctx, service); err != nil {
		return objects.Service{}, err
	}

	return service, nil
}

func (m ServicesModel) ListByCategory(ctx context.Context, categoryID string) ([]objects.Service, error) {
	return m.Find(ctx, bson.D{{Key: "category_id", Value: categoryID}})
}

// DeleteByCategory removes every service of a category and reports how many went.
func (m ServicesModel) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {

	result, err := m.Coll.DeleteMany(ctx, bson.D{{Key: "category_id", Value: categoryID}})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (m ServicesModel) Search(ctx context.Context, opt SearchOptions) (models.PaginationData[objects.Service], error) {

	var builder = models.NewSearchPipelineBuilder()
	builder.Skip((opt.CurrentPage - 1) * m.SearchLenLimit)
	builder.Limit(m.SearchLenLimit)
	builder.SortedBy([]models.SortData{{Key: "name", SortBy: models.SortASC}})

	if opt.CategoryID != "" {
		if err := builder.Match("category_id", opt.CategoryID, models.EqualMatchType); err != nil {
			return models.PaginationData[objects.Service]{}, err
		}
	}

	if !opt.Name.IsNil() {
		if err := builder.Match("name", opt.Name.Value, opt.Name.MatchType); err != nil {
			return models.PaginationData[objects.Service]{}, err
		}
	}

	if !opt.Country.IsNil() {
		if err := builder.Match("country", opt.Country.Value, opt.Country.MatchType); err != nil {
			return models.PaginationData[objects.Service]{}, err
		}
	}

	if len(opt.Tags) > 0 {
		builder.MatchIn("tags", opt.Tags)
	}

	return m.BaseModel.Search(ctx, models.BaseSearchOptions{
		CurrentPage: opt.CurrentPage,
		Pipeline:    builder.BuildPipeline(),
	})
}
