package cmdline

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/google/shlex"

	"github.com/cardinalby/go-cmdline/token"
)

// ParseString splits `commandLine` using shell quoting rules and parses the resulting tokens
func (p *Parser) ParseString(commandLine string) ParseResult {
	tokens, err := splitCommandLine(commandLine)
	if err != nil {
		return newParseResult(err, nil)
	}
	return p.Parse(tokens)
}

// ParseWithDefaults parses `tokens` supplemented with `defaults` for the named arguments and
// switches that don't occur in `tokens`. Keys of `defaults` are short names or long aliases.
// A named argument default is inserted before `tokens` as "-name value". A switch default is
// inserted as "-name" if the value is true according to strconv.ParseBool and is skipped otherwise.
// A key that matches no argument fails the parse with ErrUnknownArgument before any callback is
// called, or is reported in ParseResult.Ignored if WithIgnoreUnknown(true) is used.
func (p *Parser) ParseWithDefaults(defaults map[string]string, tokens []string) ParseResult {
	defaultTokens, unknown := p.defaultTokens(defaults, tokens)
	if len(unknown) > 0 && !p.ignoreUnknown {
		err := unknownArgumentError(unknown[0])
		p.logger.Debug("parse failed", slog.Any("error", err))
		return newParseResult(err, nil)
	}

	// defaults go first: a trailing named argument of `tokens` must not take a default as its value
	res := p.Parse(append(defaultTokens, tokens...))
	if len(unknown) > 0 {
		ignored := make([]string, 0, len(unknown)+len(res.Ignored))
		for _, key := range unknown {
			ignored = append(ignored, "-"+key)
		}
		res.Ignored = append(ignored, res.Ignored...)
	}
	return res
}

// ParseStringWithDefaults is ParseWithDefaults for a command line split by ParseString rules
func (p *Parser) ParseStringWithDefaults(defaults map[string]string, commandLine string) ParseResult {
	tokens, err := splitCommandLine(commandLine)
	if err != nil {
		return newParseResult(err, nil)
	}
	return p.ParseWithDefaults(defaults, tokens)
}

func splitCommandLine(commandLine string) ([]string, error) {
	tokens, err := shlex.Split(commandLine)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCommandLine, err)
	}
	return tokens, nil
}

// defaultTokens returns the tokens for `defaults` keys whose arguments don't occur in `tokens`
// and the keys matching no argument
func (p *Parser) defaultTokens(defaults map[string]string, tokens []string) (res, unknown []string) {
	present := make(map[int]struct{})
	token.Iterate(tokens, p.configuration.lookupToken, token.TreatUnknownAsSwitch(func(t token.Token) bool {
		if t.Role.Has(token.RoleOption) && t.Role.Has(token.RoleKnown) {
			index, _ := p.configuration.lookupIndex(t.Name, t.Role.Has(token.RoleLong))
			present[index] = struct{}{}
		}
		return true
	}))

	for _, key := range slices.Sorted(maps.Keys(defaults)) {
		t := token.Token{Name: key, Role: token.RoleOption}
		index, has := p.configuration.LookupName(key)
		if !has {
			if index, has = p.configuration.LookupLongAlias(key); has {
				t.Role |= token.RoleLong
			}
		}
		if !has {
			unknown = append(unknown, key)
			continue
		}
		if _, isPresent := present[index]; isPresent {
			continue
		}

		value := defaults[key]
		switch p.configuration.arguments[index].kind {
		case KindSwitch:
			if on, _ := strconv.ParseBool(value); on {
				res = append(res, t.Prefix()+key)
			}
		case KindNamed:
			res = append(res, t.Prefix()+key, value)
		}
		// several keys can refer to the same argument
		present[index] = struct{}{}
		p.logger.Debug("default applied", slog.String("key", key), slog.String("value", value))
	}
	return res, unknown
}
