package cmdline

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors. ParseResult.Err wraps exactly one of them.
var (
	ErrUnknownArgument                     = errors.New("unknown named argument")
	ErrNamedArgumentValueIsMissing         = errors.New("named argument has no value")
	ErrValueNotAllowed                     = errors.New("value is not amongst allowed values")
	ErrTooManyPositionalArguments          = errors.New("too many positional arguments")
	ErrRequiredNamedArgumentIsMissing      = errors.New("required named argument is missing")
	ErrRequiredPositionalArgumentIsMissing = errors.New("required positional argument is missing")
	ErrInvalidValue                        = errors.New("invalid value")
	ErrMalformedCommandLine                = errors.New("malformed command line")
)

// Configuration errors returned by Configurator
var (
	ErrEmptyName          = errors.New("empty argument name")
	ErrDuplicateName      = errors.New("duplicate argument name")
	ErrEmptyLongAlias     = errors.New("empty long alias")
	ErrDuplicateLongAlias = errors.New("duplicate long alias")
	ErrNoAllowedValues    = errors.New("restricted to empty set of values")
)

func unknownArgumentError(name string) error {
	return fmt.Errorf(`%w: "%s"`, ErrUnknownArgument, name)
}

func namedArgumentValueIsMissingError(identifier string) error {
	return fmt.Errorf(`%w: "%s"`, ErrNamedArgumentValueIsMissing, identifier)
}

func valueNotAllowedError(value string, allowedValues []string) error {
	return fmt.Errorf(`%w: "%s" (allowed: %s)`, ErrValueNotAllowed, value, quoteJoin(allowedValues))
}

func tooManyPositionalArgumentsError(value string) error {
	return fmt.Errorf(`%w: "%s"`, ErrTooManyPositionalArguments, value)
}

func requiredNamedArgumentIsMissingError(name string) error {
	return fmt.Errorf(`%w: "%s"`, ErrRequiredNamedArgumentIsMissing, name)
}

func invalidValueError(value, identifier string, err error) error {
	return fmt.Errorf(`%w "%s" for %s: %w`, ErrInvalidValue, value, identifier, err)
}

func quoteJoin(values []string) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`"`)
		sb.WriteString(v)
		sb.WriteString(`"`)
	}
	return sb.String()
}
