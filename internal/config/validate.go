package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/htmlindex"
)

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`) //nolint:gochecknoglobals // compiled once

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	v := validator.New()

	if err := v.RegisterValidation("encoding", isKnownEncoding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := v.RegisterValidation("identifier", isIdentifier); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Report koanf keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func isKnownEncoding(fl validator.FieldLevel) bool {
	_, err := htmlindex.Get(fl.Field().String())
	return err == nil
}

func isIdentifier(fl validator.FieldLevel) bool {
	return identifierRE.MatchString(fl.Field().String())
}
