package apis

import (
	"net/http"
	"strconv"

	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/locale"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageQueryKey = "page"

func RegisterCrudAPI[Item models.Item](api CrudAPI[Item], group *gin.RouterGroup) {

	group.POST("", func(ctx *gin.Context) {

		item, err := api.Insert(ctx)
		if err != nil {
			WriteErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, item)
	})

	group.GET(":id", func(ctx *gin.Context) {

		item, err := api.ReadOne(ctx, ctx.Param("id"))
		if err != nil {
			WriteErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.GET("", func(ctx *gin.Context) {

		paginateResult, err := api.Read(ctx)
		if err != nil {
			WriteErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, paginateResult)
	})

	group.PUT(":id", func(ctx *gin.Context) {

		item, err := api.Update(ctx, ctx.Param("id"))
		if err != nil {
			WriteErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	})

	group.DELETE(":id", func(ctx *gin.Context) {

		err := api.Delete(ctx, ctx.Param("id"))
		if err != nil {
			WriteErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, DeletedResponse)
	})
}

// BindForm decodes the JSON body into form and validates it in the request locale.
func BindForm(ctx *gin.Context, form any, translator *locale.Translator) error {

	if err := ctx.ShouldBindJSON(form); err != nil {
		return errors.InvalidRequestBodyError.New(err.Error())
	}

	return forms.Validate(form, locale.FromRequest(ctx.Request), translator)
}

// Page reads the 1-based page query parameter, defaulting to the first page.
func Page(ctx *gin.Context) (int, error) {

	raw := ctx.DefaultQuery(pageQueryKey, "1")

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, errors.CurrentPageInvalidError.New()
	}

	return page, nil
}

func WriteErrorJSON(ctx *gin.Context, err error) {

	if fields, ok := forms.AsValidationError(err); ok {

		assertedError, _ := errors.TryAssertError(err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   assertedError,
			Message: assertedError.Message,
			Fields:  fields,
		})
		return
	}

	assertedError, ok := errors.TryAssertError(err)
	if !ok {

		logger.LogError(err, "Unhandled error",
			zap.String("path", ctx.Request.URL.Path),
			zap.String("method", ctx.Request.Method),
		)

		unknown := errors.UnknownError.New(err.Error())
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   unknown,
			Message: errors.UserMessage(unknown),
		})
		return
	}

	ctx.JSON(StatusCode(assertedError.Code), ErrorResponse{
		Error:   assertedError,
		Message: assertedError.Message,
	})
}

func StatusCode(errorCode int) int {

	switch errorCode {
	case errors.ObjectIDNotFoundErrorCode:
		return http.StatusNotFound
	case errors.DuplicatedObjectIDErrorCode, errors.DataAlreadyInUsedErrorCode:
		return http.StatusConflict
	case errors.UnauthorizedErrorCode, errors.InvalidCredentialsErrorCode:
		return http.StatusUnauthorized
	case errors.RemoteRequestFailedErrorCode, errors.RemoteUnreachableErrorCode:
		return http.StatusBadGateway
	case errors.UnknownErrorCode:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
