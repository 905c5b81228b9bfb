package plans

import (
	"context"
	"errors"

	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/AsmaaWasel/Dashboard/mongodb"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	collectionName = "payment_plans"
	planIDIndex    = "plan_id_1"
)

type SearchOptions struct {
	CurrentPage  int                `json:"current_page"`
	Name         models.MatchOption `json:"name,omitempty"`
	BillingCycle string             `json:"billing_cycle,omitempty"`
}

type PlansModel struct {
	models.BaseModel[objects.PaymentPlan]
}

func NewPlansModel(ctx context.Context, conn *mongodb.MongoDBConn, paginateSize ...int) (*PlansModel, error) {

	var searchSize = models.DefaultSearchLenLimit
	var paginateSizeLen = len(paginateSize)
	if paginateSizeLen > 1 {
		return nil, errors.New("PaginateSize can have only one elements")
	} else if paginateSizeLen == 1 {
		searchSize = paginateSize[0]
	}

	coll, err := models.EnsureCollection(ctx, conn, collectionName, bson.M{
		"bsonType": "object",
		"required": []string{"plan_id", "name", "price", "billing_cycle"},
		"properties": bson.M{
			"plan_id": models.StringProperty("Plan ID must not be empty"),
			"name":    models.StringProperty("Name must not be empty"),
			"price": bson.M{
				"bsonType":    "double",
				"minimum":     0,
				"description": "Price must be a non-negative number",
			},
			"billing_cycle": bson.M{
				"enum":        bson.A{objects.BillingMonthly, objects.BillingYearly},
				"description": "Billing cycle must be monthly or yearly",
			},
		},
	})
	if err != nil {
		return nil, err
	}

	err = models.EnsureIndexes(ctx, coll,
		models.IndexSpec{Name: planIDIndex, Keys: bson.D{{Key: "plan_id", Value: 1}}, Unique: true},
	)
	if err != nil {
		return nil, err
	}

	var model = new(PlansModel)
	if err := model.Inject(coll, searchSize, "plan_id"); err != nil {
		return nil, err
	}

	return model, nil
}

func (PlansModel) GetCollectionName() string {
	return collectionName
}

// Insert stores the plan under a fresh id when none is given.
func (m PlansModel) Insert(ctx context.Context, plan objects.PaymentPlan) (objects.PaymentPlan, error) {

	if plan.PlanID == "" {
		plan.PlanID = uuid.NewString()
	}

	if err := m.BaseModel.Insert(ctx, plan); err != nil {
		return objects.PaymentPlan{}, err
	}

	return plan, nil
}

func (m PlansModel) List(ctx context.Context) ([]objects.PaymentPlan, error) {
	return m.Find(ctx, nil)
}

func (m PlansModel) Search(ctx context.Context, opt SearchOptions) (models.PaginationData[objects.PaymentPlan], error) {

	var builder = models.NewSearchPipelineBuilder()
	builder.Skip((opt.CurrentPage - 1) * m.SearchLenLimit)
	builder.Limit(m.SearchLenLimit)
	builder.SortedBy([]models.SortData{{Key: "price", SortBy: models.SortASC}})

	if !opt.Name.IsNil() {
		if err := builder.Match("name", opt.Name.Value, opt.Name.MatchType); err != nil {
			return models.PaginationData[objects.PaymentPlan]{}, err
		}
	}

	if opt.BillingCycle != "" {
		if err := builder.Match("billing_cycle", opt.BillingCycle, models.EqualMatchType); err != nil {
			return models.PaginationData[objects.PaymentPlan]{}, err
		}
	}

	return m.BaseModel.Search(ctx, models.BaseSearchOptions{
		CurrentPage: opt.CurrentPage,
		Pipeline:    builder.BuildPipeline(),
	})
}
