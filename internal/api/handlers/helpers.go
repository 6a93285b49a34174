package handlers

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/algoviz/algoviz-api/internal/search"
	"github.com/algoviz/algoviz-api/internal/services"
)

// newValidator cria o validator com nomes de campo do JSON e as tags do domínio
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := services.RegisterPasswordValidation(v); err != nil {
		panic(err)
	}
	return v
}

// validationDetails converte os erros do validator em mensagens por campo
func validationDetails(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return map[string]string{"body": err.Error()}
	}

	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = fieldMessage(fe)
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Email inválido"
	case "strongpassword":
		return "A senha deve ter 8+ caracteres, maiúscula, minúscula, número e caractere especial"
	case "eqfield":
		return "As senhas não conferem"
	case "eq":
		return "É preciso aceitar os termos"
	case "oneof":
		return "Valores válidos: " + fe.Param()
	case "min":
		return "Mínimo: " + fe.Param()
	case "max":
		return "Máximo: " + fe.Param()
	}
	return "Valor inválido"
}

// bindAndValidate lê o corpo JSON e valida; em caso de erro já escreve a resposta
func bindAndValidate(c *gin.Context, v *validator.Validate, request any) bool {
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return false
	}
	if err := v.Struct(request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validação falhou",
			"details": validationDetails(err),
		})
		return false
	}
	return true
}

// bindOptionalAndValidate aceita corpo ausente ou vazio (inclusive chunked) como
// request zerado; um corpo presente passa pelas mesmas regras de bindAndValidate
func bindOptionalAndValidate(c *gin.Context, v *validator.Validate, request any) bool {
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(request); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
			return false
		}
	}
	if err := v.Struct(request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validação falhou",
			"details": validationDetails(err),
		})
		return false
	}
	return true
}

// respondError traduz erros dos serviços para status HTTP
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidKind),
		errors.Is(err, services.ErrUnknownDifficulty),
		errors.Is(err, search.ErrUnknownCategory),
		errors.Is(err, search.ErrSearchTooLong):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrViewNotFound),
		errors.Is(err, services.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrViewLimit):
		status = http.StatusTooManyRequests
	case errors.Is(err, services.ErrCatalogNotLoaded):
		status = http.StatusServiceUnavailable
	}

	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseIntQuery faz parse de query parameter inteiro com valor default
func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
