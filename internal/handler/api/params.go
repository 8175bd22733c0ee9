package api

import (
	"errors"
	"net/http"
	"strconv"

	"adslot-ledger/internal/domain/account"
	"adslot-ledger/internal/handler/httperr"
	"adslot-ledger/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("no authenticated account on request")

// pathID reads the numeric :id parameter. Ledger ids start at 1.
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		if err == nil {
			err = errors.New("id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func caller(c *gin.Context) (account.ID, bool) {
	acc, ok := middleware.GetAccountID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return "", false
	}
	return acc, true
}
