package checker

import (
	"errors"
	"regexp"

	"github.com/abezemskiy/novalogin/internal/repositories/credentials"
	"github.com/go-playground/validator/v10"
)

// Шаблоны сложности пароля: строчная и заглавная буквы, цифра, специальный символ и длина от 8 до 20.
var (
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSymbol  = regexp.MustCompile(`[!@#$%^&*]`)
	validShape = regexp.MustCompile(`^.{8,20}$`)
)

// messages - сообщения пользователю для каждого правила, ключ - поле структуры и тег валидатора.
var messages = map[string]string{
	"Username.required":   credentials.UsernameEmpty,
	"Username.min":        credentials.UsernameShort,
	"Password.required":   credentials.PasswordEmpty,
	"Password.min":        credentials.PasswordShort,
	"Password.complexity": credentials.PasswordComplex,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// тег complexity зарегистрирован на этапе инициализации, ошибка здесь возможна только при опечатке в имени
	if err := v.RegisterValidation("complexity", func(fl validator.FieldLevel) bool {
		return IsComplexPassword(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsComplexPassword - функция для проверки сложности пароля.
func IsComplexPassword(password string) bool {
	return validShape.MatchString(password) &&
		hasLower.MatchString(password) &&
		hasUpper.MatchString(password) &&
		hasDigit.MatchString(password) &&
		hasSymbol.MatchString(password)
}

// Validate - функция для проверки введенных данных при нажатии кнопки подтверждения.
// Правила проверяются по порядку полей и тегов структуры credentials.Credentials,
// результат содержит сообщение первого нарушенного правила.
func Validate(username, password string) credentials.Result {
	creds := credentials.Credentials{
		Username: username,
		Password: password,
	}

	err := validate.Struct(creds)
	if err == nil {
		return credentials.Accept(creds)
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		// валидатор возвращает другие ошибки только для некорректного аргумента
		panic(err)
	}
	first := errs[0]
	msg, ok := messages[first.StructField()+"."+first.Tag()]
	if !ok {
		panic("no message for rule " + first.StructField() + "." + first.Tag())
	}
	return credentials.Reject(msg)
}
