package categories

import (
	"context"
	"net/http"

	"github.com/AsmaaWasel/Dashboard/apis"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryStore interface {
	List(ctx context.Context) ([]objects.Category, error)
	GetByID(ctx context.Context, categoryID string) (objects.Category, error)
	Insert(ctx context.Context, category objects.Category) (objects.Category, error)
	Rename(ctx context.Context, categoryID, title string) (objects.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type ServiceStore interface {
	Insert(ctx context.Context, service objects.Service) (objects.Service, error)
	ListByCategory(ctx context.Context, categoryID string) ([]objects.Service, error)
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)
}

type DashboardResponse struct {
	Categories []objects.Category `json:"categories"`
}

type ServicesResponse struct {
	Services []objects.Service `json:"services"`
}

type CategoriesAPI struct {
	categories CategoryStore
	services   ServiceStore
	translator *locale.Translator
}

func NewCategoriesAPI(categories CategoryStore, services ServiceStore, translator *locale.Translator) *CategoriesAPI {
	return &CategoriesAPI{categories: categories, services: services, translator: translator}
}

// Register mounts the sidebar and service routes on an authenticated group.
func (api *CategoriesAPI) Register(group *gin.RouterGroup) {

	group.GET("dashboard", api.dashboard)
	group.POST("category", api.create)
	group.PUT("category/:id", api.rename)
	group.DELETE("category/:id", api.delete)
	group.POST("category/:id/service", api.createService)
	group.GET("category/:id/service", api.listServices)
}

func (api *CategoriesAPI) dashboard(ctx *gin.Context) {

	list, err := api.categories.List(ctx.Request.Context())
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, DashboardResponse{Categories: list})
}

func (api *CategoriesAPI) create(ctx *gin.Context) {

	var form forms.CategoryForm
	if err := apis.BindForm(ctx, &form, api.translator); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	category, err := api.categories.Insert(ctx.Request.Context(), objects.Category{Title: form.Title})
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func (api *CategoriesAPI) rename(ctx *gin.Context) {

	var form forms.CategoryForm
	if err := apis.BindForm(ctx, &form, api.translator); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	category, err := api.categories.Rename(ctx.Request.Context(), ctx.Param("id"), form.Title)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// delete removes the category together with its services.
func (api *CategoriesAPI) delete(ctx *gin.Context) {

	categoryID := ctx.Param("id")

	if err := api.categories.Delete(ctx.Request.Context(), categoryID); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	removed, err := api.services.DeleteByCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		logger.LogError(err, "Deleting services of removed category failed", zap.String("category_id", categoryID))
	} else if removed > 0 {
		logger.GetLogger().Info("Deleted services of removed category",
			zap.String("category_id", categoryID),
			zap.Int64("count", removed),
		)
	}

	ctx.JSON(http.StatusOK, apis.DeletedResponse)
}

func (api *CategoriesAPI) createService(ctx *gin.Context) {

	categoryID := ctx.Param("id")
	if _, err := api.categories.GetByID(ctx.Request.Context(), categoryID); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	var form forms.ServiceForm
	if err := apis.BindForm(ctx, &form, api.translator); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	service, err := api.services.Insert(ctx.Request.Context(), objects.Service{
		CategoryID:  categoryID,
		Name:        form.Title,
		Provider:    form.Provider,
		Description: form.Description,
		Country:     form.Country,
		Image:       form.Image,
		URL:         form.URL,
		Tags:        form.TagList(),
	})
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, service)
}

func (api *CategoriesAPI) listServices(ctx *gin.Context) {

	list, err := api.services.ListByCategory(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ServicesResponse{Services: list})
}
