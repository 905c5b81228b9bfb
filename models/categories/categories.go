package categories

import (
	"context"
	"errors"

	serverError "github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/AsmaaWasel/Dashboard/mongodb"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	collectionName     = "categories"
	categoryIDIndex    = "category_id_1"
	categoryTitleIndex = "title_1"
)

type SearchOptions struct {
	CurrentPage int                `json:"current_page"`
	Title       models.MatchOption `json:"title,omitempty"`
}

type CategoriesModel struct {
	models.BaseModel[objects.Category]
}

func NewCategoriesModel(ctx context.Context, conn *mongodb.MongoDBConn, paginateSize ...int) (*CategoriesModel, error) {

	var searchSize      = models.DefaultSearchLenLimit
	var paginateSizeLen = len(paginateSize)
	if paginateSizeLen > 1 {
		return nil, errors.New("PaginateSize can have only one elements")
	} else if paginateSizeLen == 1 {
		searchSize = paginateSize[0]
	}

	coll, err := models.EnsureCollection(ctx, conn, collectionName, bson.M{
		"bsonType": "object",
		"required": []string{"category_id", "title"},
		"properties": bson.M{
			"category_id": models.StringProperty("Category ID must not be empty"),
			"title":       models.StringProperty("Title must not be empty"),
		},
	})
	if err != nil {
		return nil, err
	}

	err = models.EnsureIndexes(ctx, coll,
		models.IndexSpec{Name: categoryIDIndex, Keys: bson.D{{Key: "category_id", Value: 1}}, Unique: true},
		models.IndexSpec{Name: categoryTitleIndex, Keys: bson.D{{Key: "title", Value: 1}}, Unique: true},
	)
	if err != nil {
		return nil, err
	}

	var model = new(CategoriesModel)
	if err := model.Inject(coll, searchSize, "category_id"); err != nil {
		return nil, err
	}

	return model, nil
}

func (CategoriesModel) GetCollectionName() string {
	return collectionName
}

// Insert stores the category under a fresh id when none is given.
func (m CategoriesModel) Insert(ctx context.Context, category objects.Category) (objects.Category, error) {

	if category.CategoryID == "" {
		category.CategoryID = uuid.NewString()
	}

	err := m.Coll.FindOne(ctx, bson.D{{Key: "title", Value: category.Title}}).Err()
	if err == nil {
		return objects.Category{}, serverError.DataAlreadyInUsedError.New()
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return objects.Category{}, err
	}

	if err := m.BaseModel.Insert(ctx, category); err != nil {
		return objects.Category{}, err
	}

	return category, nil
}

func (m CategoriesModel) List(ctx context.Context) ([]objects.Category, error) {
	return m.Find(ctx, nil)
}

// Rename changes the title and returns the stored category.
func (m CategoriesModel) Rename(ctx context.Context, categoryID, title string) (objects.Category, error) {

	err := m.Update(ctx, objects.Category{CategoryID: categoryID, Title: title})
	if err != nil {
		return objects.Category{}, err
	}

	return m.GetByID(ctx, categoryID)
}

func (m CategoriesModel) Search(ctx context.Context, opt SearchOptions) (models.PaginationData[objects.Category], error) {

	var builder = models.NewSearchPipelineBuilder()
	builder.Skip((opt.CurrentPage - 1) * m.SearchLenLimit)
	builder.Limit(m.SearchLenLimit)
	builder.SortedBy([]models.SortData{{Key: "title", SortBy: models.SortASC}})

	if !opt.Title.IsNil() {
		if err := builder.Match("title", opt.Title.Value, opt.Title.MatchType); err != nil {
			return models.PaginationData[objects.Category]{}, err
		}
	}

	return m.BaseModel.Search(ctx, models.BaseSearchOptions{
		CurrentPage: opt.CurrentPage,
		Pipeline:    builder.BuildPipeline(),
	})
}
