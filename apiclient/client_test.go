package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const testToken = "token-123"

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	client   *Client
	plans    []objects.PaymentPlan
	mu       sync.Mutex
	lastAuth string
	lastBody map[string]any
}

func (s *ClientTestSuite) seen() (string, map[string]any) {

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastAuth, s.lastBody
}

func (s *ClientTestSuite) SetupTest() {

	gin.SetMode(gin.TestMode)

	s.plans = []objects.PaymentPlan{
		{PlanID: "p1", Name: "Basic", Price: 9.99, BillingCycle: objects.BillingMonthly},
		{PlanID: "p2", Name: "Pro", Price: 19.99, BillingCycle: objects.BillingMonthly},
		{PlanID: "p3", Name: "Enterprise", Price: 199.99, BillingCycle: objects.BillingYearly},
	}

	g := gin.New()
	g.Use(func(ctx *gin.Context) {

		var body map[string]any
		if ctx.Request.ContentLength > 0 {
			_ = json.NewDecoder(ctx.Request.Body).Decode(&body)
		}

		s.mu.Lock()
		s.lastAuth, s.lastBody = ctx.GetHeader("Authorization"), body
		s.mu.Unlock()

		ctx.Set("body", body)
		ctx.Next()
	})

	g.POST("/api/auth/login", func(ctx *gin.Context) {

		if bodyOf(ctx)["password"] != "secret" {
			ctx.JSON(http.StatusUnauthorized, gin.H{
				"error":   gin.H{"code": errors.InvalidCredentialsErrorCode, "name": "InvalidCredentials", "message": "Invalid email or password"},
				"message": "Invalid email or password",
			})
			return
		}

		ctx.JSON(http.StatusOK, objects.LoginResult{Token: testToken, User: objects.User{UserID: "u1", Username: "Merge"}})
	})

	g.GET("/api/auth/dashboard", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"categories": []objects.Category{{CategoryID: "c1", Title: "Wallets"}}})
	})

	g.POST("/api/auth/category", func(ctx *gin.Context) {
		ctx.JSON(http.StatusCreated, objects.Category{CategoryID: "c2", Title: bodyOf(ctx)["title"].(string)})
	})

	g.PUT("/api/auth/category/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, objects.Category{CategoryID: ctx.Param("id"), Title: bodyOf(ctx)["title"].(string)})
	})

	g.DELETE("/api/auth/category/:id", func(ctx *gin.Context) {

		if ctx.Param("id") == "missing" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": errors.ObjectIDNotFoundErrorCode, "message": "Item with ID missing is not exist"}})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
	})

	g.POST("/api/auth/category/:id/service", func(ctx *gin.Context) {
		ctx.JSON(http.StatusCreated, objects.Service{ServiceID: "s1", CategoryID: ctx.Param("id"), Name: bodyOf(ctx)["title"].(string)})
	})

	g.GET("/api/auth/category/:id/service", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"services": nil})
	})

	g.GET("/api/auth/payment-plans", func(ctx *gin.Context) {

		page, _ := strconv.Atoi(ctx.Query("page"))
		start, end := (page-1)*2, min(page*2, len(s.plans))

		ctx.JSON(http.StatusOK, models.PaginationData[objects.PaymentPlan]{
			Page:       page,
			TotalPages: 2,
			Count:      len(s.plans),
			Data:       s.plans[start:end],
		})
	})

	g.PUT("/api/auth/payment-plans/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, objects.PaymentPlan{PlanID: ctx.Param("id"), Name: bodyOf(ctx)["name"].(string)})
	})

	g.DELETE("/api/auth/payment-plans/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})

	g.GET("/slow", func(ctx *gin.Context) {
		select {
		case <-ctx.Request.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	s.server = httptest.NewServer(g)

	client, err := New(s.server.URL+"/", time.Second)
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) TestNew() {

	_, err := New("localhost:3000", 0)
	s.Require().Error(err)

	client, err := New("http://localhost:3000", 0)
	s.Require().NoError(err)
	s.Equal(DefaultTimeout, client.http.Timeout)
}

func (s *ClientTestSuite) TestLogin() {

	s.Run("Should decode the login result without sending a credential", func() {

		result, err := s.client.Login(context.Background(), forms.LoginForm{Email: "a@b.co", Password: "secret"})
		s.Require().NoError(err)
		s.Equal(testToken, result.Token)
		s.Equal("Merge", result.User.Username)
		lastAuth, _ := s.seen()
		s.Empty(lastAuth)
	})

	s.Run("Should surface the server message on failure", func() {

		_, err := s.client.Login(context.Background(), forms.LoginForm{Email: "a@b.co", Password: "nope"})
		s.Require().True(errors.IsError(err, errors.RemoteRequestFailedError.New("Invalid email or password")), err)
		s.Equal("Invalid email or password", errors.UserMessage(err))
	})
}

func (s *ClientTestSuite) TestCategories() {

	credential := Credential(testToken)

	list, err := s.client.ListCategories(context.Background(), credential)
	s.Require().NoError(err)
	s.Equal([]objects.Category{{CategoryID: "c1", Title: "Wallets"}}, list)
	lastAuth, _ := s.seen()
	s.Equal("Bearer "+testToken, lastAuth)

	created, err := s.client.CreateCategory(context.Background(), credential, forms.CategoryForm{Title: "Banks"})
	s.Require().NoError(err)
	s.Equal(objects.Category{CategoryID: "c2", Title: "Banks"}, created)

	updated, err := s.client.UpdateCategory(context.Background(), credential, "c1", forms.CategoryForm{Title: "E-Wallets"})
	s.Require().NoError(err)
	s.Equal(objects.Category{CategoryID: "c1", Title: "E-Wallets"}, updated)

	s.Require().NoError(s.client.DeleteCategory(context.Background(), credential, "c1"))

	err = s.client.DeleteCategory(context.Background(), credential, "missing")
	s.Require().True(errors.HasCode(err, errors.RemoteRequestFailedErrorCode))
	s.Equal("Item with ID missing is not exist", errors.UserMessage(err))
}

func (s *ClientTestSuite) TestServices() {

	form := forms.ServiceForm{Provider: gofakeit.Company(), Title: "Acme Pay", URL: "https://acme.example.com"}

	created, err := s.client.CreateService(context.Background(), Credential(testToken), "c1", form)
	s.Require().NoError(err)
	s.Equal(objects.Service{ServiceID: "s1", CategoryID: "c1", Name: "Acme Pay"}, created)
	_, lastBody := s.seen()
	s.Equal(form.Provider, lastBody["provider"])

	list, err := s.client.ListServices(context.Background(), Credential(testToken), "c1")
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *ClientTestSuite) TestPlans() {

	s.Run("Should walk every page", func() {

		plans, err := s.client.ListPlans(context.Background(), Credential(testToken))
		s.Require().NoError(err)
		s.Equal(s.plans, plans)
	})

	s.Run("Should update and delete", func() {

		updated, err := s.client.UpdatePlan(context.Background(), Credential(testToken), "p1", forms.PlanForm{Name: "Basic+", Price: 1, BillingCycle: "monthly"})
		s.Require().NoError(err)
		s.Equal("Basic+", updated.Name)

		s.Require().NoError(s.client.DeletePlan(context.Background(), Credential(testToken), "p1"))
	})
}

func (s *ClientTestSuite) TestFailures() {

	s.Run("Should report unreachable server", func() {

		client, err := New("http://127.0.0.1:1", time.Second)
		s.Require().NoError(err)

		_, err = client.ListCategories(context.Background(), Credential(testToken))
		s.Require().True(errors.HasCode(err, errors.RemoteUnreachableErrorCode))
	})

	s.Run("Should return the context error when cancelled", func() {

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := s.client.do(ctx, request{method: http.MethodGet, path: "/slow"}, nil)
		s.Require().ErrorIs(err, context.DeadlineExceeded)
	})

	s.Run("Should fall back to the status when the body has no message", func() {
		s.Equal("Request failed with status 502", remoteMessage(http.StatusBadGateway, []byte("<html>")))
	})
}

func bodyOf(ctx *gin.Context) map[string]any {
	body, _ := ctx.Get("body")
	parsed, _ := body.(map[string]any)
	return parsed
}

func TestClient(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
