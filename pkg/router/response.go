package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/pkg/errorx"
)

func writeError(ctx *gin.Context, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	ctx.JSON(httpStatus(errx.Code), model.Response{Success: false, Message: errx.Message})
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
