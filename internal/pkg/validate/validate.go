// Package validate checks command input structs against their `validate`
// tags before any domain logic runs.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"adslot-ledger/internal/domain/account"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("account", func(fl validator.FieldLevel) bool {
			_, err := account.NewID(fl.Field().String())
			return err == nil
		})
	})
	return instance
}

// Struct validates s and flattens the failures into one error listing each
// offending field.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
