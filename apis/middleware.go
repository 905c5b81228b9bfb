package apis

import (
	"github.com/AsmaaWasel/Dashboard/auth"
	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsContextKey = "claims"

// RequireAuth rejects requests without a valid bearer token and stores its claims.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {

	return func(ctx *gin.Context) {

		token, ok := auth.BearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			logger.GetLogger().Warn("Missing or malformed Authorization header",
				zap.String("path", ctx.Request.URL.Path),
				zap.String("method", ctx.Request.Method),
			)
			WriteErrorJSON(ctx, errors.UnauthorizedError.New())
			ctx.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.GetLogger().Warn("Invalid or expired token",
				zap.String("path", ctx.Request.URL.Path),
				zap.String("method", ctx.Request.Method),
			)
			WriteErrorJSON(ctx, err)
			ctx.Abort()
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

func ClaimsFrom(ctx *gin.Context) (auth.Claims, bool) {

	value, ok := ctx.Get(claimsContextKey)
	if !ok {
		return auth.Claims{}, false
	}

	claims, ok := value.(auth.Claims)
	return claims, ok
}
