package cmdline

import "slices"

// Kind distinguishes the variants of Argument
type Kind int

const (
	// KindNamed is an argument matched by "-name" or "--alias" that consumes the following token as its value
	KindNamed Kind = iota
	// KindPositional is an argument bound by its position among the non-option tokens
	KindPositional
	// KindSwitch is a flag matched by "-name" or "--alias" that consumes no value
	KindSwitch
)

func (k Kind) String() string {
	switch k {
	case KindNamed:
		return "named"
	case KindPositional:
		return "positional"
	case KindSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Argument is one declared argument of a Configuration. It's a tagged union of named argument,
// positional argument and switch distinguished by Kind.
// Argument has no identity on its own: it's identified by its index in Configuration.
type Argument struct {
	kind          Kind
	name          string
	allowedValues []string
	handler       ValueHandler
	callback      func()
}

// NewNamed creates a named argument matched by "-name" and passing the following token to `handler`
func NewNamed(name string, handler ValueHandler) Argument {
	return Argument{
		kind:    KindNamed,
		name:    name,
		handler: handler,
	}
}

// NewPositional creates a positional argument passing the matched token to `handler`
func NewPositional(handler ValueHandler) Argument {
	return Argument{
		kind:    KindPositional,
		handler: handler,
	}
}

// NewSwitch creates a switch matched by "-name" that calls `callback` each time it's present
func NewSwitch(name string, callback func()) Argument {
	return Argument{
		kind:     KindSwitch,
		name:     name,
		callback: callback,
	}
}

// RestrictedTo returns a copy of the named argument that accepts only raw tokens equal to
// one of the `values`. It has no effect on other kinds.
func (a Argument) RestrictedTo(values ...string) Argument {
	if a.kind == KindNamed {
		a.allowedValues = slices.Clone(values)
		if a.allowedValues == nil {
			a.allowedValues = []string{}
		}
	}
	return a
}

func (a Argument) Kind() Kind {
	return a.kind
}

// Name returns the short name of a named argument or a switch, empty string for positional
func (a Argument) Name() string {
	return a.name
}

// AllowedValues returns the values the argument is restricted to, nil if not restricted
func (a Argument) AllowedValues() []string {
	return slices.Clone(a.allowedValues)
}

// HasAllowedValues tells whether the argument was restricted with RestrictedTo
func (a Argument) HasAllowedValues() bool {
	return a.allowedValues != nil
}

func (a Argument) isAllowed(value string) bool {
	return a.allowedValues == nil || slices.Contains(a.allowedValues, value)
}

func (a Argument) handle(token string) error {
	if a.handler == nil {
		return nil
	}
	return a.handler(token)
}

func (a Argument) fire() {
	if a.callback != nil {
		a.callback()
	}
}
