package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hotel-records/services"
	"hotel-records/utils"
)

// identities are 36-character UUID strings
const idRule = "required,len=36"

var validate = validator.New()

// ---------------------------
// Helper: map service errors to HTTP status
// ---------------------------
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDependencyConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s: %v", op, err)
		utils.JSONError(c, status, "internal error")
		return
	}
	utils.JSONError(c, status, err.Error())
}

// respondBindError renders binding failures, field by field when the validator produced them.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fieldPath(fe)] = ruleText(fe)
		}
		utils.JSONErrorDetails(c, http.StatusBadRequest, "invalid request payload", details)
		return
	}
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
}

// bindOptionalJSON binds the body when there is one; an empty body leaves req untouched.
func bindOptionalJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// pathID reads :id and rejects anything that is not a 36-character identity.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := validate.Var(id, idRule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "id must be a 36-character identifier")
		return "", false
	}
	return id, true
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func ruleText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func createdStatus(o services.Outcome) int {
	if o == services.FoundExisting {
		return http.StatusOK
	}
	return http.StatusCreated
}
