package cmdline

import (
	"errors"
	"fmt"
	"slices"
)

// Configurator is a fluent builder of Configuration. Mistakes in declarations are not reported
// immediately: BuildConfiguration validates all of them at once.
//
//	cfg, err := NewConfigurator().
//		WithNamed("o", HandleString(setOutput)).HavingLongAlias("output").Required().
//		WithSwitch("d", enableDebug).
//		BuildConfiguration()
type Configurator struct {
	arguments []Argument
	required  map[int]struct{}
	aliases   []longAlias
	help      map[int]Help
}

type longAlias struct {
	alias string
	index int
}

func NewConfigurator() *Configurator {
	return &Configurator{
		required: make(map[int]struct{}),
		help:     make(map[int]Help),
	}
}

// WithNamed declares a named argument matched by "-name"
func (c *Configurator) WithNamed(name string, handler ValueHandler) *NamedConfigurator {
	return &NamedConfigurator{Configurator: c, index: c.add(NewNamed(name, handler))}
}

// WithPositional declares the next positional argument
func (c *Configurator) WithPositional(handler ValueHandler) *PositionalConfigurator {
	return &PositionalConfigurator{Configurator: c, index: c.add(NewPositional(handler))}
}

// WithSwitch declares a switch matched by "-name"
func (c *Configurator) WithSwitch(name string, callback func()) *SwitchConfigurator {
	return &SwitchConfigurator{Configurator: c, index: c.add(NewSwitch(name, callback))}
}

// BuildConfiguration validates the declarations and returns an immutable Configuration.
// Later calls of the Configurator don't affect the returned Configuration.
func (c *Configurator) BuildConfiguration() (*Configuration, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	required := make([]int, 0, len(c.required))
	for index := range c.required {
		required = append(required, index)
	}
	slices.Sort(required)

	opts := []ConfigurationOption{WithRequired(required...)}
	for _, a := range c.aliases {
		opts = append(opts, WithLongAlias(a.alias, a.index))
	}
	for index, help := range c.help {
		opts = append(opts, WithHelp(index, help))
	}
	return NewConfiguration(c.arguments, opts...), nil
}

// BuildParser builds a Configuration and creates a Parser for it
func (c *Configurator) BuildParser(opts ...ParserOption) (*Parser, error) {
	cfg, err := c.BuildConfiguration()
	if err != nil {
		return nil, err
	}
	return NewParser(cfg, opts...), nil
}

func (c *Configurator) add(arg Argument) int {
	c.arguments = append(c.arguments, arg)
	return len(c.arguments) - 1
}

func (c *Configurator) addLongAlias(alias string, index int) {
	c.aliases = append(c.aliases, longAlias{alias: alias, index: index})
}

func (c *Configurator) describe(index int, placeholder, description string) {
	c.help[index] = Help{Placeholder: placeholder, Description: description}
}

func (c *Configurator) validate() error {
	var errs []error
	names := make(map[string]int)
	for i, arg := range c.arguments {
		if arg.kind == KindPositional {
			continue
		}
		if arg.name == "" {
			errs = append(errs, fmt.Errorf("%w: %s argument %d", ErrEmptyName, arg.kind, i))
			continue
		}
		if _, has := names[arg.name]; has {
			errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrDuplicateName, arg.name))
			continue
		}
		names[arg.name] = i
		if arg.allowedValues != nil && len(arg.allowedValues) == 0 {
			errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrNoAllowedValues, arg.name))
		}
	}

	aliases := make(map[string]struct{})
	for _, a := range c.aliases {
		if a.alias == "" {
			errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrEmptyLongAlias, c.arguments[a.index].name))
			continue
		}
		if _, has := aliases[a.alias]; has {
			errs = append(errs, fmt.Errorf(`%w: "%s"`, ErrDuplicateLongAlias, a.alias))
			continue
		}
		aliases[a.alias] = struct{}{}
	}
	return errors.Join(errs...)
}

// NamedConfigurator sets up the named argument declared last
type NamedConfigurator struct {
	*Configurator
	index int
}

// HavingLongAlias makes the argument available as "--alias"
func (n *NamedConfigurator) HavingLongAlias(alias string) *NamedConfigurator {
	n.addLongAlias(alias, n.index)
	return n
}

func (n *NamedConfigurator) Required() *NamedConfigurator {
	n.required[n.index] = struct{}{}
	return n
}

// DescribedBy sets the value placeholder and the description shown in usage
func (n *NamedConfigurator) DescribedBy(placeholder, description string) *NamedConfigurator {
	n.describe(n.index, placeholder, description)
	return n
}

// RestrictedTo makes the argument accept only tokens equal to one of `values`
func (n *NamedConfigurator) RestrictedTo(values ...string) *NamedConfigurator {
	n.arguments[n.index] = n.arguments[n.index].RestrictedTo(values...)
	return n
}

// PositionalConfigurator sets up the positional argument declared last
type PositionalConfigurator struct {
	*Configurator
	index int
}

func (p *PositionalConfigurator) Required() *PositionalConfigurator {
	p.required[p.index] = struct{}{}
	return p
}

// DescribedBy sets the placeholder and the description shown in usage
func (p *PositionalConfigurator) DescribedBy(placeholder, description string) *PositionalConfigurator {
	p.describe(p.index, placeholder, description)
	return p
}

// SwitchConfigurator sets up the switch declared last
type SwitchConfigurator struct {
	*Configurator
	index int
}

// HavingLongAlias makes the switch available as "--alias"
func (s *SwitchConfigurator) HavingLongAlias(alias string) *SwitchConfigurator {
	s.addLongAlias(alias, s.index)
	return s
}

// DescribedBy sets the description shown in usage
func (s *SwitchConfigurator) DescribedBy(description string) *SwitchConfigurator {
	s.describe(s.index, "", description)
	return s
}
