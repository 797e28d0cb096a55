// file: internals/helpers/validation.go
package helper

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct menjalankan validasi tag `validate` dan mengembalikan
// map field → pesan (Bahasa Indonesia) untuk JsonValidationError.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return map[string][]string{"_": {"Input tidak valid"}}
		}
		out := make(map[string][]string, len(ve))
		for _, fe := range ve {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], messageForTag(fe))
		}
		return out
	}
	return nil
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Wajib diisi"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Minimal %s karakter", fe.Param())
		}
		return fmt.Sprintf("Minimal %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Maksimal %s karakter", fe.Param())
		}
		return fmt.Sprintf("Maksimal %s", fe.Param())
	case "email":
		return "Format email tidak valid"
	case "gte":
		return fmt.Sprintf("Tidak boleh kurang dari %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Tidak boleh lebih dari %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Harus lebih dari %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Harus salah satu dari: %s", fe.Param())
	case "uuid":
		return "Format ID tidak valid"
	default:
		return "Tidak valid"
	}
}
