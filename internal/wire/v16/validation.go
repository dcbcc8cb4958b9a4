package v16

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator 线上记录形状验证器
// 只验证字段的JSON形状约束（必填、长度、取值范围），
// 枚举字面量的合法性由编解码层的映射表判定
type Validator struct {
	validate *validator.Validate
}

// ValidationError 验证错误
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// Error 实现error接口
func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors 验证错误集合
type ValidationErrors []ValidationError

// Error 实现error接口
func (e ValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// NewValidator 创建新的验证器
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// ValidateRequest 验证线上请求记录
func (v *Validator) ValidateRequest(req Request) error {
	return v.validateStruct(req)
}

// ValidateResponse 验证线上响应记录
func (v *Validator) ValidateResponse(res Response) error {
	return v.validateStruct(res)
}

func (v *Validator) validateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors ValidationErrors

	if validatorErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validatorErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fieldError.Field(),
				Tag:     fieldError.Tag(),
				Value:   fmt.Sprintf("%v", fieldError.Value()),
				Message: errorMessage(fieldError),
			})
		}
		return validationErrors
	}

	return err
}

// errorMessage 生成可读的错误描述
func errorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field %s is required", e.Field())
	case "max":
		return fmt.Sprintf("field %s exceeds maximum of %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("field %s is below minimum of %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("field %s failed validation %s", e.Field(), e.Tag())
	}
}
