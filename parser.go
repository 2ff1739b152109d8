package cmdline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ef-ds/deque/v2"

	"github.com/cardinalby/go-cmdline/token"
)

// Parser parses argument vectors against a Configuration. A Parser has no mutable state
// and can be used concurrently as long as the bound callbacks allow it.
type Parser struct {
	configuration   *Configuration
	logger          *slog.Logger
	ignoreUnknown   bool
	unknownAsSwitch bool
}

// ParserOption sets up a Parser
type ParserOption func(p *Parser)

// WithLogger sets a logger for debug records about dispatched tokens and parse failures.
// By default, Parser doesn't log.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithIgnoreUnknown sets the behavior of Parse() when unknown options are passed.
// If `true`, they are stripped (see StripUnknown) and reported in ParseResult.Ignored.
// If `false`, Parse() fails with ErrUnknownArgument.
// Default value is `false`.
func WithIgnoreUnknown(ignore bool) ParserOption {
	return func(p *Parser) {
		p.ignoreUnknown = ignore
	}
}

// WithUnknownAsSwitch sets how stripped unknown options are treated if WithIgnoreUnknown(true) is used.
// If `true`, an unknown option never takes the following token.
// If `false`, the following token is stripped together with the option unless it looks like an option.
// Default value is `false`.
func WithUnknownAsSwitch(asSwitch bool) ParserOption {
	return func(p *Parser) {
		p.unknownAsSwitch = asSwitch
	}
}

// NewParser creates a Parser for the given configuration
func NewParser(configuration *Configuration, opts ...ParserOption) *Parser {
	if configuration == nil {
		panic("nil configuration")
	}
	p := &Parser{
		configuration: configuration,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses `tokens` against `configuration` with default options
func Parse(tokens []string, configuration *Configuration) ParseResult {
	return NewParser(configuration).Parse(tokens)
}

// Configuration returns the configuration the parser was created with
func (p *Parser) Configuration() *Configuration {
	return p.configuration
}

// Parse consumes `tokens` (without the program name) from left to right calling callbacks
// of matched arguments. It stops at the first error; callbacks invoked before it stay invoked.
// Panics of callbacks are not recovered.
func (p *Parser) Parse(tokens []string) ParseResult {
	var ignored []string
	if p.ignoreUnknown {
		tokens, ignored = StripUnknown(p.configuration, tokens, p.unknownAsSwitch)
		if len(ignored) > 0 {
			p.logger.Debug("stripped unknown arguments", slog.Any("ignored", ignored))
		}
	}

	err := newParseRun(p.configuration, p.logger, tokens).parse()
	if err != nil {
		p.logger.Debug("parse failed", slog.Any("error", err))
	}
	return newParseResult(err, ignored)
}

// parseRun holds the state of a single Parse call
type parseRun struct {
	configuration *Configuration
	logger        *slog.Logger
	tokens        *deque.Deque[string]
	// indexes of positional arguments in declaration order
	positionals *deque.Deque[int]
	// number of positional tokens consumed so far
	positionalCount int
	// indexes of required arguments that are not parsed yet
	required map[int]struct{}
}

func newParseRun(configuration *Configuration, logger *slog.Logger, tokens []string) *parseRun {
	r := &parseRun{
		configuration: configuration,
		logger:        logger,
		tokens:        deque.New[string](),
		positionals:   deque.New[int](),
		required:      make(map[int]struct{}, len(configuration.required)),
	}
	for _, t := range tokens {
		r.tokens.PushBack(t)
	}
	for i, arg := range configuration.arguments {
		if arg.kind == KindPositional {
			r.positionals.PushBack(i)
		}
	}
	for index := range configuration.required {
		r.required[index] = struct{}{}
	}
	return r
}

func (r *parseRun) parse() error {
	for r.tokens.Len() > 0 {
		if err := r.parseNext(); err != nil {
			return err
		}
	}
	return r.checkRequired()
}

func (r *parseRun) parseNext() error {
	arg, _ := r.tokens.PopFront()
	t := token.Classify(arg)
	if !t.Role.Has(token.RoleOption) {
		return r.handlePositional(arg)
	}

	index, has := r.configuration.lookupIndex(t.Name, t.Role.Has(token.RoleLong))
	if !has {
		return unknownArgumentError(t.Name)
	}
	argument := r.configuration.arguments[index]
	switch argument.kind {
	case KindSwitch:
		r.logDispatch(argument, t.Name)
		argument.fire()
		delete(r.required, index)
		return nil
	case KindNamed:
		return r.handleNamed(index, argument, t.Name)
	default:
		return unknownArgumentError(t.Name)
	}
}

func (r *parseRun) handleNamed(index int, argument Argument, identifier string) error {
	value, has := r.tokens.PopFront()
	if !has {
		return namedArgumentValueIsMissingError(identifier)
	}
	if !argument.isAllowed(value) {
		return valueNotAllowedError(value, argument.allowedValues)
	}
	r.logDispatch(argument, identifier, slog.String("value", value))
	if err := argument.handle(value); err != nil {
		return invalidValueError(value, fmt.Sprintf(`"%s"`, identifier), err)
	}
	delete(r.required, index)
	return nil
}

func (r *parseRun) handlePositional(value string) error {
	index, has := r.positionals.PopFront()
	if !has {
		return tooManyPositionalArgumentsError(value)
	}
	r.positionalCount++
	argument := r.configuration.arguments[index]
	r.logDispatch(argument, value, slog.Int("index", index))
	if err := argument.handle(value); err != nil {
		return invalidValueError(value, fmt.Sprintf("positional argument %d", r.positionalCount), err)
	}
	delete(r.required, index)
	return nil
}

func (r *parseRun) checkRequired() error {
	if len(r.required) == 0 {
		return nil
	}
	// named arguments are reported before positional ones, each in declaration order
	first := -1
	for index := range r.required {
		if first == -1 || r.reportsBefore(index, first) {
			first = index
		}
	}
	argument := r.configuration.arguments[first]
	if argument.kind != KindPositional {
		return requiredNamedArgumentIsMissingError(argument.name)
	}
	return ErrRequiredPositionalArgumentIsMissing
}

func (r *parseRun) reportsBefore(index, other int) bool {
	isPositional := r.configuration.arguments[index].kind == KindPositional
	otherIsPositional := r.configuration.arguments[other].kind == KindPositional
	if isPositional != otherIsPositional {
		return otherIsPositional
	}
	return index < other
}

func (r *parseRun) logDispatch(argument Argument, identifier string, attrs ...slog.Attr) {
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "dispatch",
		append([]slog.Attr{
			slog.String("kind", argument.kind.String()),
			slog.String("identifier", identifier),
		}, attrs...)...,
	)
}

// IsParseError tells whether err is one of the errors Parse reports
func IsParseError(err error) bool {
	for _, target := range []error{
		ErrUnknownArgument,
		ErrNamedArgumentValueIsMissing,
		ErrValueNotAllowed,
		ErrTooManyPositionalArguments,
		ErrRequiredNamedArgumentIsMissing,
		ErrRequiredPositionalArgumentIsMissing,
		ErrInvalidValue,
		ErrMalformedCommandLine,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
