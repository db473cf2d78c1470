package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// allowedTLDs mirrors the account policy: addresses must end in one of
// these top-level domains.
var allowedTLDs = []string{"com", "net"}

// Register installs the custom rules on gin's binding engine. Call once
// before the router is built.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tld", allowedTLD)
	}
}

func allowedTLD(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return false
	}
	domain := addr[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot < 0 || dot == len(domain)-1 {
		return false
	}
	tld := strings.ToLower(domain[dot+1:])
	for _, allowed := range allowedTLDs {
		if tld == allowed {
			return true
		}
	}
	return false
}

// FirstMessage renders the first violation of a binding error as a
// client-facing message.
func FirstMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}
	return "invalid request body"
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "tld":
		return fmt.Sprintf("%q must end in an allowed domain (.%s)", field, strings.Join(allowedTLDs, ", ."))
	case "alphanum":
		return fmt.Sprintf("%q must contain only letters and digits", field)
	case "min":
		return fmt.Sprintf("%q must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s characters long", field, fe.Param())
	}
	return fmt.Sprintf("%q is invalid", field)
}
