package apis

import (
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/forms"
	"github.com/AsmaaWasel/Dashboard/models"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   errors.BaseError  `json:"error"`
	Message string            `json:"message"`
	Fields  forms.FieldErrors `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CrudAPI[Item models.Item] interface {
	Insert(ctx *gin.Context) (Item, error)
	ReadOne(ctx *gin.Context, itemID string) (Item, error)
	Read(ctx *gin.Context) (models.PaginationData[Item], error)
	Update(ctx *gin.Context, itemID string) (Item, error)
	Delete(ctx *gin.Context, itemID string) error
}

var DeletedResponse = MessageResponse{Message: "Deleted successfully"}
