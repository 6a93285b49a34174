package services

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/algoviz/algoviz-api/internal/models"
)

// Cada regra é avaliada isoladamente sobre a senha crua
var (
	passwordLength  = regexp.MustCompile(`(?s)^.{8,}$`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordNumber  = regexp.MustCompile(`[0-9]`)
	passwordSpecial = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// CheckPasswordRules avalia as regras de senha exibidas no formulário de cadastro
func CheckPasswordRules(password string) models.PasswordRules {
	return models.PasswordRules{
		Length:      passwordLength.MatchString(password),
		Uppercase:   passwordUpper.MatchString(password),
		Lowercase:   passwordLower.MatchString(password),
		Number:      passwordNumber.MatchString(password),
		SpecialChar: passwordSpecial.MatchString(password),
	}
}

// RegisterPasswordValidation registra a tag "strongpassword" no validator
func RegisterPasswordValidation(v *validator.Validate) error {
	return v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return CheckPasswordRules(fl.Field().String()).Satisfied()
	})
}
