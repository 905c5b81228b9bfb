package users

import (
	"context"
	"net/http"

	"github.com/AsmaaWasel/Dashboard/apis"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (objects.LoginResult, error)
}

type UsersAPI struct {
	auth       Authenticator
	translator *locale.Translator
}

func NewUsersAPI(auth Authenticator, translator *locale.Translator) *UsersAPI {
	return &UsersAPI{auth: auth, translator: translator}
}

// RegisterPublic mounts the routes reachable without a token.
func (api *UsersAPI) RegisterPublic(group *gin.RouterGroup) {
	group.POST("login", api.login)
}

func (api *UsersAPI) Register(group *gin.RouterGroup) {
	group.GET("me", api.me)
}

func (api *UsersAPI) login(ctx *gin.Context) {

	var form forms.LoginForm
	if err := apis.BindForm(ctx, &form, api.translator); err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	result, err := api.auth.Login(ctx.Request.Context(), form.Email, form.Password)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (api *UsersAPI) me(ctx *gin.Context) {

	claims, ok := apis.ClaimsFrom(ctx)
	if !ok {
		apis.WriteErrorJSON(ctx, errors.UnauthorizedError.New())
		return
	}

	ctx.JSON(http.StatusOK, objects.User{UserID: claims.UserID, Username: claims.Username, Email: claims.Email})
}
