package plans

import (
	"context"

	"github.com/AsmaaWasel/Dashboard/apis"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/models"
	plansModel "github.com/AsmaaWasel/Dashboard/models/plans"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/gin-gonic/gin"
)

type PlanStore interface {
	Insert(ctx context.Context, plan objects.PaymentPlan) (objects.PaymentPlan, error)
	GetByID(ctx context.Context, planID string) (objects.PaymentPlan, error)
	Search(ctx context.Context, opt plansModel.SearchOptions) (models.PaginationData[objects.PaymentPlan], error)
	Update(ctx context.Context, plan objects.PaymentPlan) error
	Delete(ctx context.Context, planID string) error
}

type PlansCrudAPI struct {
	model      PlanStore
	translator *locale.Translator
}

func NewPlansAPI(model PlanStore, translator *locale.Translator) *PlansCrudAPI {
	return &PlansCrudAPI{model: model, translator: translator}
}

func (api PlansCrudAPI) Insert(ctx *gin.Context) (objects.PaymentPlan, error) {

	var form forms.PlanForm
	if err := apis.BindForm(ctx, &form, api.translator); err != nil {
		return objects.PaymentPlan{}, err
	}

	return api.model.Insert(ctx.Request.Context(), objects.PaymentPlan{
		Name:         form.Name,
		Price:        form.Price,
		BillingCycle: form.BillingCycle,
	})
}

func (api PlansCrudAPI) ReadOne(ctx *gin.Context, itemID string) (objects.PaymentPlan, error) {
	return api.model.GetByID(ctx.Request.Context(), itemID)
}

// Read pages through plans; name matches partially, billing_cycle exactly.
func (api PlansCrudAPI) Read(ctx *gin.Context) (models.PaginationData[objects.PaymentPlan], error) {

	page, err := apis.Page(ctx)
	if err != nil {
		return models.PaginationData[objects.PaymentPlan]{}, err
	}

	opt := plansModel.SearchOptions{
		CurrentPage:  page,
		BillingCycle: ctx.Query("billing_cycle"),
	}

	if name := ctx.Query("name"); name != "" {
		opt.Name = models.MatchOption{MatchType: models.PartialMatchType, Value: name}
	}

	return api.model.Search(ctx.Request.Context(), opt)
}

func (api PlansCrudAPI) Update(ctx *gin.Context, itemID string) (objects.PaymentPlan, error) {

	var form forms.PlanForm
	if err := apis.BindForm(ctx, &form, api.translator); err != nil {
		return objects.PaymentPlan{}, err
	}

	plan := objects.PaymentPlan{
		PlanID:       itemID,
		Name:         form.Name,
		Price:        form.Price,
		BillingCycle: form.BillingCycle,
	}

	if err := api.model.Update(ctx.Request.Context(), plan); err != nil {
		return objects.PaymentPlan{}, err
	}

	return plan, nil
}

func (api PlansCrudAPI) Delete(ctx *gin.Context, itemID string) error {
	return api.model.Delete(ctx.Request.Context(), itemID)
}
