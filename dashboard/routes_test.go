package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AsmaaWasel/Dashboard/apis"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type RoutesTestSuite struct {
	suite.Suite
	backend   *fakeBackend
	dashboard *Dashboard
	g         *gin.Engine
}

func (s *RoutesTestSuite) SetupTest() {

	gin.SetMode(gin.TestMode)

	translator, err := locale.NewTranslator()
	s.Require().NoError(err)

	s.backend = newFakeBackend()
	s.backend.user = objects.User{UserID: "u-1", Username: "Merge"}
	s.backend.categories = []objects.Category{{CategoryID: "cat-1", Title: "Wallets"}}
	s.backend.services["cat-1"] = fakeServices("cat-1", 12)
	s.backend.plans = []objects.PaymentPlan{{PlanID: "p-1", Name: "Basic", Price: 10, BillingCycle: objects.BillingMonthly}}

	s.dashboard, err = New(s.backend, translator, Options{AdminUsername: "Merge"})
	s.Require().NoError(err)

	s.g = gin.New()
	s.dashboard.Register(s.g.Group("dashboard"))
}

func (s *RoutesTestSuite) TearDownTest() {
	s.dashboard.Close()
}

func (s *RoutesTestSuite) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {

	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+string(testCredential))
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	s.g.ServeHTTP(recorder, req)
	return recorder
}

func (s *RoutesTestSuite) decode(recorder *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), v))
}

func (s *RoutesTestSuite) TestServices() {

	s.Run("Should load the category and forward the credential", func() {

		recorder := s.do(http.MethodGet, "/dashboard/services?category_id=cat-1", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		var page ServicesPage
		s.decode(recorder, &page)
		s.Equal(12, page.TotalEntries)
		s.Equal(3, page.TotalPages)
		s.Equal([]string{"1", "2", "3"}, tokens(page))
		s.Equal(testCredential, s.backend.credentials[0])
	})

	s.Run("Should go to the next page", func() {

		recorder := s.do(http.MethodPost, "/dashboard/services/page", map[string]any{"action": "next"})
		s.Require().Equal(http.StatusOK, recorder.Code)

		var page ServicesPage
		s.decode(recorder, &page)
		s.Equal(2, page.CurrentPage)
		s.Equal("Showing 6 to 10 of 12 entries", page.Footer)
	})

	s.Run("Should sort by the clicked column", func() {

		recorder := s.do(http.MethodPost, "/dashboard/services/sort", map[string]any{"key": "title"})
		s.Require().Equal(http.StatusOK, recorder.Code)

		var page ServicesPage
		s.decode(recorder, &page)
		s.Require().NotNil(page.Sort)
		s.Equal("title", string(page.Sort.Key))
		s.Equal("Service 06", page.Rows[0].Title)
	})

	s.Run("Should drop the sort on an empty key", func() {

		recorder := s.do(http.MethodPost, "/dashboard/services/sort", map[string]any{})
		s.Require().Equal(http.StatusOK, recorder.Code)

		var page ServicesPage
		s.decode(recorder, &page)
		s.Nil(page.Sort)
		s.Require().NotEmpty(page.Rows)
		s.Equal((page.CurrentPage-1)*page.RowsPerPage+1, page.Rows[0].ID)
	})

	s.Run("Should reject an unsupported page size", func() {

		recorder := s.do(http.MethodPost, "/dashboard/services/rows", map[string]any{"rows_per_page": 7})
		s.Require().Equal(http.StatusBadRequest, recorder.Code)

		var resp apis.ErrorResponse
		s.decode(recorder, &resp)
		s.Equal(errors.RowsPerPageInvalidErrorCode, resp.Error.Code)
	})

	s.Run("Should add a service", func() {

		recorder := s.do(http.MethodPost, "/dashboard/services", fakeServiceForm())
		s.Require().Equal(http.StatusCreated, recorder.Code)

		var resp ServiceResponse
		s.decode(recorder, &resp)
		s.Equal("Service added successfully", resp.Message)
		s.Equal(13, resp.Service.ID)
		s.Equal(13, resp.Page.TotalEntries)
	})

	s.Run("Should list field errors of an invalid service", func() {

		recorder := s.do(http.MethodPut, "/dashboard/services/1", map[string]any{"title": "Only a title"})
		s.Require().Equal(http.StatusBadRequest, recorder.Code)

		var resp apis.ErrorResponse
		s.decode(recorder, &resp)
		s.Equal([]string{"country", "description", "image", "provider", "url"}, resp.Fields.Fields())
	})

	s.Run("Should answer not found for an unknown row", func() {

		recorder := s.do(http.MethodDelete, "/dashboard/services/99", nil)
		s.Require().Equal(http.StatusNotFound, recorder.Code)

		recorder = s.do(http.MethodDelete, "/dashboard/services/abc", nil)
		s.Require().Equal(http.StatusNotFound, recorder.Code)
	})

	s.Run("Should delete a service", func() {

		recorder := s.do(http.MethodDelete, "/dashboard/services/1", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		var resp ServiceResponse
		s.decode(recorder, &resp)
		s.Equal(1, resp.Service.ID)
		s.Equal(12, resp.Page.TotalEntries)
	})
}

func tokens(page ServicesPage) []string {

	values := make([]string, 0, len(page.Window))
	for _, token := range page.Window {
		values = append(values, token.String())
	}

	return values
}

func (s *RoutesTestSuite) TestPlans() {

	recorder := s.do(http.MethodGet, "/dashboard/plans", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var page PlansPage
	s.decode(recorder, &page)
	s.Equal(1, page.TotalEntries)

	recorder = s.do(http.MethodPost, "/dashboard/plans", map[string]any{"name": "Pro", "price": 99.5, "billingCycle": "yearly"})
	s.Require().Equal(http.StatusCreated, recorder.Code)

	var created PlanResponse
	s.decode(recorder, &created)
	s.Equal(2, created.Plan.ID)
	s.Equal("New plan created successfully", created.Message)

	recorder = s.do(http.MethodPut, "/dashboard/plans/2", map[string]any{"name": "Pro", "price": 0, "billingCycle": "yearly"})
	s.Require().Equal(http.StatusBadRequest, recorder.Code)

	recorder = s.do(http.MethodDelete, "/dashboard/plans/1", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var deleted PlanResponse
	s.decode(recorder, &deleted)
	s.Equal("p-1", deleted.Plan.RemoteID)
	s.Equal(1, deleted.Page.TotalEntries)
}

func (s *RoutesTestSuite) TestCategories() {

	recorder := s.do(http.MethodGet, "/dashboard/categories", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"categories":[{"_id":"cat-1","title":"Wallets"}]}`, recorder.Body.String())

	recorder = s.do(http.MethodPost, "/dashboard/categories", map[string]string{"title": "Banks"})
	s.Require().Equal(http.StatusCreated, recorder.Code)

	recorder = s.do(http.MethodDelete, "/dashboard/categories/missing", nil)
	s.Require().Equal(http.StatusBadGateway, recorder.Code)

	var resp apis.ErrorResponse
	s.decode(recorder, &resp)
	s.Equal("Category not found", resp.Message)
}

func (s *RoutesTestSuite) TestLocale() {

	recorder := s.do(http.MethodPut, "/dashboard/locale", map[string]string{"locale": "ar-EG"})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var layout Layout
	s.decode(recorder, &layout)
	s.Equal(locale.Arabic, layout.Locale)
	s.Equal(locale.RightToLeft, layout.Direction)

	cookies := recorder.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(locale.CookieName, cookies[0].Name)
	s.Equal("ar", cookies[0].Value)

	s.Run("Should keep the chosen locale for requests without a cookie", func() {

		recorder := s.do(http.MethodGet, "/dashboard/layout", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		var layout Layout
		s.decode(recorder, &layout)
		s.Equal(locale.Arabic, layout.Locale)
		s.Equal(locale.SideRight, layout.SidebarSide)
	})

	s.Run("Should follow the locale cookie of later requests", func() {

		recorder := s.do(http.MethodGet, "/dashboard/layout", nil, &http.Cookie{Name: locale.CookieName, Value: "en"})
		s.Require().Equal(http.StatusOK, recorder.Code)

		var layout Layout
		s.decode(recorder, &layout)
		s.Equal(locale.English, layout.Locale)
		s.Equal(locale.SideLeft, layout.SidebarSide)
	})
}

func (s *RoutesTestSuite) TestRequestLocale() {

	arabic := &http.Cookie{Name: locale.CookieName, Value: "ar"}

	s.Run("Should render in the locale cookie of the request", func() {

		recorder := s.do(http.MethodGet, "/dashboard/services?category_id=cat-1", nil, arabic)
		s.Require().Equal(http.StatusOK, recorder.Code)

		var page ServicesPage
		s.decode(recorder, &page)
		s.Equal(locale.RightToLeft, page.Direction)
		s.Contains(page.Footer, "عرض")
		s.Equal(locale.ChevronsFor(locale.Arabic), page.Chevrons)
	})

	s.Run("Should leave the dashboard locale alone", func() {
		s.Equal(locale.English, s.dashboard.Locale())
	})

	s.Run("Should render other requests in the dashboard locale", func() {

		recorder := s.do(http.MethodGet, "/dashboard/services", nil)
		s.Require().Equal(http.StatusOK, recorder.Code)

		var page ServicesPage
		s.decode(recorder, &page)
		s.Equal(locale.LeftToRight, page.Direction)
		s.Equal("Showing 1 to 5 of 12 entries", page.Footer)
	})

	s.Run("Should localize field errors and messages per request", func() {

		recorder := s.do(http.MethodPost, "/dashboard/plans", map[string]any{"price": 5, "billingCycle": "monthly"}, arabic)
		s.Require().Equal(http.StatusBadRequest, recorder.Code)

		var resp apis.ErrorResponse
		s.decode(recorder, &resp)
		s.Require().Contains(resp.Fields, "name")

		translator, err := locale.NewTranslator()
		s.Require().NoError(err)
		s.Equal(translator.Text(locale.Arabic, locale.MsgNameRequired), resp.Fields["name"])
	})

	s.Run("Should render the layout in the request locale", func() {

		recorder := s.do(http.MethodGet, "/dashboard/layout", nil, arabic)
		s.Require().Equal(http.StatusOK, recorder.Code)

		var layout Layout
		s.decode(recorder, &layout)
		s.Equal(locale.RightToLeft, layout.Direction)
		s.Equal(locale.SideRight, layout.SidebarSide)
		s.Equal(locale.English, s.dashboard.Locale())
	})
}

func (s *RoutesTestSuite) TestSidebarToggle() {

	recorder := s.do(http.MethodPost, "/dashboard/sidebar/toggle", nil)
	s.Require().Equal(http.StatusOK, recorder.Code)

	var layout Layout
	s.decode(recorder, &layout)
	s.Equal(SidebarCollapsed, layout.SidebarState)
}

func (s *RoutesTestSuite) TestLogin() {

	form := map[string]string{"email": "admin@example.com", "password": "secret"}

	recorder := s.do(http.MethodPost, "/dashboard/login", form)
	s.Require().Equal(http.StatusOK, recorder.Code)

	s.backend.user.Username = "intruder"

	recorder = s.do(http.MethodPost, "/dashboard/login", form)
	s.Require().Equal(http.StatusUnauthorized, recorder.Code)

	var resp apis.ErrorResponse
	s.decode(recorder, &resp)
	s.Equal("Unauthorized access.", resp.Message)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
