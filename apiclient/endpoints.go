package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/AsmaaWasel/Dashboard/objects"
)

const (
	loginPath        = "/api/auth/login"
	dashboardPath    = "/api/auth/dashboard"
	categoryPath     = "/api/auth/category"
	paymentPlansPath = "/api/auth/payment-plans"
)

type categoriesResponse struct {
	Categories []objects.Category `json:"categories"`
}

type servicesResponse struct {
	Services []objects.Service `json:"services"`
}

func (c *Client) Login(ctx context.Context, form forms.LoginForm) (objects.LoginResult, error) {

	var result objects.LoginResult
	err := c.do(ctx, request{method: http.MethodPost, path: loginPath, body: form}, &result)

	return result, err
}

func (c *Client) ListCategories(ctx context.Context, credential Credential) ([]objects.Category, error) {

	var resp categoriesResponse
	err := c.do(ctx, request{method: http.MethodGet, path: dashboardPath, credential: credential}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Categories == nil {
		return []objects.Category{}, nil
	}

	return resp.Categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, credential Credential, form forms.CategoryForm) (objects.Category, error) {

	var category objects.Category
	err := c.do(ctx, request{method: http.MethodPost, path: categoryPath, credential: credential, body: form}, &category)

	return category, err
}

func (c *Client) UpdateCategory(ctx context.Context, credential Credential, categoryID string, form forms.CategoryForm) (objects.Category, error) {

	var category objects.Category
	err := c.do(ctx, request{
		method:     http.MethodPut,
		path:       categoryPath + "/" + url.PathEscape(categoryID),
		credential: credential,
		body:       form,
	}, &category)

	return category, err
}

func (c *Client) DeleteCategory(ctx context.Context, credential Credential, categoryID string) error {

	return c.do(ctx, request{
		method:     http.MethodDelete,
		path:       categoryPath + "/" + url.PathEscape(categoryID),
		credential: credential,
	}, nil)
}

func (c *Client) CreateService(ctx context.Context, credential Credential, categoryID string, form forms.ServiceForm) (objects.Service, error) {

	var service objects.Service
	err := c.do(ctx, request{
		method:     http.MethodPost,
		path:       categoryPath + "/" + url.PathEscape(categoryID) + "/service",
		credential: credential,
		body:       form,
	}, &service)

	return service, err
}

func (c *Client) ListServices(ctx context.Context, credential Credential, categoryID string) ([]objects.Service, error) {

	var resp servicesResponse
	err := c.do(ctx, request{
		method:     http.MethodGet,
		path:       categoryPath + "/" + url.PathEscape(categoryID) + "/service",
		credential: credential,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Services == nil {
		return []objects.Service{}, nil
	}

	return resp.Services, nil
}

// ListPlans walks every page of payment plans.
func (c *Client) ListPlans(ctx context.Context, credential Credential) ([]objects.PaymentPlan, error) {

	plans := []objects.PaymentPlan{}
	for page := 1; ; page++ {

		var resp models.PaginationData[objects.PaymentPlan]
		err := c.do(ctx, request{
			method:     http.MethodGet,
			path:       paymentPlansPath,
			credential: credential,
			query:      url.Values{"page": {strconv.Itoa(page)}},
		}, &resp)
		if err != nil {
			return nil, err
		}

		plans = append(plans, resp.Data...)

		if page >= resp.TotalPages || len(resp.Data) == 0 {
			return plans, nil
		}
	}
}

func (c *Client) CreatePlan(ctx context.Context, credential Credential, form forms.PlanForm) (objects.PaymentPlan, error) {

	var plan objects.PaymentPlan
	err := c.do(ctx, request{method: http.MethodPost, path: paymentPlansPath, credential: credential, body: form}, &plan)

	return plan, err
}

func (c *Client) UpdatePlan(ctx context.Context, credential Credential, planID string, form forms.PlanForm) (objects.PaymentPlan, error) {

	var plan objects.PaymentPlan
	err := c.do(ctx, request{
		method:     http.MethodPut,
		path:       paymentPlansPath + "/" + url.PathEscape(planID),
		credential: credential,
		body:       form,
	}, &plan)

	return plan, err
}

func (c *Client) DeletePlan(ctx context.Context, credential Credential, planID string) error {

	return c.do(ctx, request{
		method:     http.MethodDelete,
		path:       paymentPlansPath + "/" + url.PathEscape(planID),
		credential: credential,
	}, nil)
}
