package v1

import (
	"fmt"
	"net/http"
	"reflect"

	"watchdog/api/internal/domain"
	"watchdog/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// name - string - max 128
// description - string - max 4096
// wallet address - string - required, 0x-prefixed hex

type NewCharityData struct {
	Name          string `json:"name" validate:"required,min=1,max=128"`
	Description   string `json:"description" validate:"max=4096"`
	WalletAddress string `json:"wallet_address" validate:"required,wallet"`
}

// checks the validity of data in the request body
// returns false if there is an error
func filterQuery(c *gin.Context) (*NewCharityData, bool) {
	var data NewCharityData
	err := c.ShouldBindJSON(&data)
	if err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return nil, false
	}

	v := validator.New()

	v.RegisterValidation("wallet", validateWallet)
	err = v.Struct(data)
	if err == nil {
		return &data, true
	}

	validationErrs, err := utils.SafeCast[validator.ValidationErrors](err)
	if err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return nil, false
	}
	if len(validationErrs) == 0 {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return nil, false
	}

	validationErr := validationErrs[0]
	responseErr(c, http.StatusBadRequest, formatValidationErr(data, validationErr), "")

	return nil, false
}

func validateWallet(fl validator.FieldLevel) bool {
	return common.IsHexAddress(fl.Field().String())
}

func formatValidationErr(data any, err validator.FieldError) string {
	jsonTag := getJSONTag(data, err.Field())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", jsonTag)
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s characters long", jsonTag, err.Param())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters long", jsonTag, err.Param())
	//  custom tags
	case "wallet":
		return fmt.Sprintf("field '%s' must be a valid wallet address", jsonTag)
	default:
		return fmt.Sprintf("invalid field '%s'", jsonTag)
	}
}

func getJSONTag(structType any, fieldName string) string {
	typ := reflect.TypeOf(structType)
	field, _ := typ.FieldByName(fieldName)
	tag := field.Tag.Get("json")
	if tag == "" {
		return fieldName
	}
	return tag
}
