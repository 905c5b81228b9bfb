package dashboard

import (
	"net/http"
	"strconv"

	"github.com/AsmaaWasel/Dashboard/apiclient"
	"github.com/AsmaaWasel/Dashboard/apis"
	"github.com/AsmaaWasel/Dashboard/auth"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/AsmaaWasel/Dashboard/table"
	"github.com/gin-gonic/gin"
)

const (
	pageActionNext = "next"
	pageActionPrev = "prev"

	// a year, the locale choice outlives the session
	localeCookieMaxAge = 365 * 24 * 60 * 60
)

// sortRequest with an empty key drops the sort.
type sortRequest struct {
	Key table.Key `json:"key"`
}

type pageRequest struct {
	Page   int    `json:"page"`
	Action string `json:"action" binding:"omitempty,oneof=next prev"`
}

type rowsRequest struct {
	RowsPerPage int `json:"rows_per_page" binding:"required"`
}

type localeRequest struct {
	Locale string `json:"locale" binding:"required"`
}

type ServiceResponse struct {
	Message string       `json:"message"`
	Service table.Record `json:"service"`
	Page    ServicesPage `json:"page"`
}

type PlanResponse struct {
	Message string    `json:"message"`
	Plan    PlanRow   `json:"plan"`
	Page    PlansPage `json:"page"`
}

type CategoriesResponse struct {
	Categories []objects.Category `json:"categories"`
}

type CategoryResponse struct {
	Message  string           `json:"message"`
	Category objects.Category `json:"category"`
}

// Register mounts the dashboard screens on group. Responses are rendered in the
// locale cookie of the request, falling back to the dashboard locale.
func (d *Dashboard) Register(group *gin.RouterGroup) {

	group.POST("login", d.login)
	group.GET("layout", d.showLayout)
	group.PUT("locale", d.setLocale)
	group.POST("sidebar/toggle", d.toggleSidebar)

	group.GET("services", d.showServices)
	group.POST("services/sort", d.sortServices)
	group.POST("services/page", d.pageServices)
	group.POST("services/rows", d.rowsServices)
	group.POST("services", d.addService)
	group.PUT("services/:id", d.editService)
	group.DELETE("services/:id", d.deleteService)

	group.GET("plans", d.listPlans)
	group.POST("plans/sort", d.sortPlans)
	group.POST("plans/page", d.pagePlans)
	group.POST("plans/rows", d.rowsPlans)
	group.POST("plans", d.createPlan)
	group.PUT("plans/:id", d.updatePlan)
	group.DELETE("plans/:id", d.deletePlan)

	group.GET("categories", d.listCategories)
	group.POST("categories", d.addCategory)
	group.PUT("categories/:id", d.renameCategory)
	group.DELETE("categories/:id", d.deleteCategory)
}

func (d *Dashboard) requestLocale(ctx *gin.Context) locale.Locale {

	value, err := ctx.Cookie(locale.CookieName)
	if err != nil || value == "" {
		return d.Locale()
	}

	return locale.Parse(value)
}

func credentialFrom(ctx *gin.Context) apiclient.Credential {

	token, _ := auth.BearerToken(ctx.GetHeader("Authorization"))
	return apiclient.Credential(token)
}

func bindJSON(ctx *gin.Context, v any) error {

	if err := ctx.ShouldBindJSON(v); err != nil {
		return errors.InvalidRequestBodyError.New(err.Error())
	}

	return nil
}

// bindForm decodes form and checks it so field errors come out in l.
func (d *Dashboard) bindForm(ctx *gin.Context, l locale.Locale, form any) error {

	if err := bindJSON(ctx, form); err != nil {
		return err
	}

	return forms.Validate(form, l, d.translator)
}

func rowID(ctx *gin.Context) (int, error) {

	raw := ctx.Param("id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ObjectIDNotFoundError.New(raw)
	}

	return id, nil
}

func (d *Dashboard) login(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var form forms.LoginForm
	if err := d.bindForm(ctx, l, &form); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	result, err := d.Login(ctx.Request.Context(), form)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (d *Dashboard) showLayout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, d.Layout().localized(d.requestLocale(ctx), d.translator))
}

func (d *Dashboard) setLocale(ctx *gin.Context) {

	var req localeRequest
	if err := bindJSON(ctx, &req); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	layout := d.SetLocale(locale.Parse(req.Locale))
	ctx.SetCookie(locale.CookieName, layout.Locale.String(), localeCookieMaxAge, "/", "", false, false)
	ctx.JSON(http.StatusOK, layout)
}

func (d *Dashboard) toggleSidebar(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, d.ToggleSidebar().localized(d.requestLocale(ctx), d.translator))
}

// showServices renders the services table, loading a category first when one is asked for.
func (d *Dashboard) showServices(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	categoryID := ctx.Query("category_id")
	if categoryID == "" {
		ctx.JSON(http.StatusOK, d.Services().localized(l, d.translator))
		return
	}

	page, err := d.LoadServices(ctx.Request.Context(), credentialFrom(ctx), categoryID)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page.localized(l, d.translator))
}

func (d *Dashboard) sortServices(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var req sortRequest
	if err := bindJSON(ctx, &req); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, d.SortServices(req.Key).localized(l, d.translator))
}

func (d *Dashboard) pageServices(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var req pageRequest
	if err := bindJSON(ctx, &req); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	switch req.Action {
	case pageActionNext:
		ctx.JSON(http.StatusOK, d.NextServicesPage().localized(l, d.translator))
	case pageActionPrev:
		ctx.JSON(http.StatusOK, d.PrevServicesPage().localized(l, d.translator))
	default:
		ctx.JSON(http.StatusOK, d.SetServicesPage(req.Page).localized(l, d.translator))
	}
}

func (d *Dashboard) rowsServices(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var req rowsRequest
	if err := bindJSON(ctx, &req); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	page, err := d.SetServicesRowsPerPage(req.RowsPerPage)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page.localized(l, d.translator))
}

func (d *Dashboard) addService(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var form forms.ServiceForm
	if err := d.bindForm(ctx, l, &form); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	record, err := d.AddService(credentialFrom(ctx), form)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, ServiceResponse{
		Message: d.translator.Text(l, locale.MsgServiceAdded),
		Service: record,
		Page:    d.Services().localized(l, d.translator),
	})
}

func (d *Dashboard) editService(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	id, err := rowID(ctx)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	var form forms.ServiceForm
	if err := d.bindForm(ctx, l, &form); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	record, err := d.EditService(id, form)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ServiceResponse{
		Message: d.translator.Text(l, locale.MsgServiceUpdated),
		Service: record,
		Page:    d.Services().localized(l, d.translator),
	})
}

func (d *Dashboard) deleteService(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	id, err := rowID(ctx)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	record, err := d.DeleteService(id)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ServiceResponse{
		Message: d.translator.Text(l, locale.MsgServiceDeleted),
		Service: record,
		Page:    d.Services().localized(l, d.translator),
	})
}

func (d *Dashboard) listPlans(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	refresh, _ := strconv.ParseBool(ctx.Query("refresh"))

	page, err := d.LoadPlans(ctx.Request.Context(), credentialFrom(ctx), refresh)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page.localized(l, d.translator))
}

func (d *Dashboard) sortPlans(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var req sortRequest
	if err := bindJSON(ctx, &req); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, d.SortPlans(req.Key).localized(l, d.translator))
}

func (d *Dashboard) pagePlans(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var req pageRequest
	if err := bindJSON(ctx, &req); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	page := req.Page
	switch req.Action {
	case pageActionNext:
		page = d.Plans().CurrentPage + 1
	case pageActionPrev:
		page = d.Plans().CurrentPage - 1
	}

	ctx.JSON(http.StatusOK, d.SetPlansPage(page).localized(l, d.translator))
}

func (d *Dashboard) rowsPlans(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var req rowsRequest
	if err := bindJSON(ctx, &req); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	page, err := d.SetPlansRowsPerPage(req.RowsPerPage)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page.localized(l, d.translator))
}

func (d *Dashboard) createPlan(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var form forms.PlanForm
	if err := d.bindForm(ctx, l, &form); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	row, err := d.CreatePlan(ctx.Request.Context(), credentialFrom(ctx), form)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, PlanResponse{
		Message: d.translator.Text(l, locale.MsgPlanCreated),
		Plan:    row,
		Page:    d.Plans().localized(l, d.translator),
	})
}

func (d *Dashboard) updatePlan(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	id, err := rowID(ctx)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	var form forms.PlanForm
	if err := d.bindForm(ctx, l, &form); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	row, err := d.UpdatePlan(ctx.Request.Context(), credentialFrom(ctx), id, form)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, PlanResponse{
		Message: d.translator.Text(l, locale.MsgPlanUpdated),
		Plan:    row,
		Page:    d.Plans().localized(l, d.translator),
	})
}

func (d *Dashboard) deletePlan(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	id, err := rowID(ctx)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	row, err := d.DeletePlan(ctx.Request.Context(), credentialFrom(ctx), id)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, PlanResponse{
		Message: d.translator.Text(l, locale.MsgPlanDeleted),
		Plan:    row,
		Page:    d.Plans().localized(l, d.translator),
	})
}

func (d *Dashboard) listCategories(ctx *gin.Context) {

	categories, err := d.Categories(ctx.Request.Context(), credentialFrom(ctx))
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}

func (d *Dashboard) addCategory(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var form forms.CategoryForm
	if err := d.bindForm(ctx, l, &form); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	category, err := d.AddCategory(ctx.Request.Context(), credentialFrom(ctx), form)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, CategoryResponse{
		Message:  d.translator.Text(l, locale.MsgCategoryCreated),
		Category: category,
	})
}

func (d *Dashboard) renameCategory(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	var form forms.CategoryForm
	if err := d.bindForm(ctx, l, &form); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	category, err := d.RenameCategory(ctx.Request.Context(), credentialFrom(ctx), ctx.Param("id"), form)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, CategoryResponse{
		Message:  d.translator.Text(l, locale.MsgCategoryUpdated),
		Category: category,
	})
}

func (d *Dashboard) deleteCategory(ctx *gin.Context) {

	l := d.requestLocale(ctx)

	if err := d.DeleteCategory(ctx.Request.Context(), credentialFrom(ctx), ctx.Param("id")); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, apis.MessageResponse{Message: d.translator.Text(l, locale.MsgCategoryDeleted)})
}
