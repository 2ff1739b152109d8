package cmdline

import (
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Help contains usage metadata of an argument
type Help struct {
	// Placeholder is a name of the value shown in usage: `-name <placeholder>`. Ignored for switches
	Placeholder string
	Description string
}

const defaultPlaceholder = "value"

// Configuration is an immutable set of declared arguments. Arguments are identified by their
// index in the declaration order. It's safe to use the same Configuration for concurrent parsing.
type Configuration struct {
	arguments []Argument
	required  map[int]struct{}
	// keys: long aliases in order of registration, values: argument indexes
	longAliases *orderedmap.OrderedMap[string, int]
	help        map[int]Help

	// derived lookups
	shortNames     map[string]int
	aliasesByIndex map[int][]string
}

// ConfigurationOption sets up a Configuration created by NewConfiguration
type ConfigurationOption func(cfg *Configuration)

// WithRequired marks the arguments with the given indexes as required
func WithRequired(indexes ...int) ConfigurationOption {
	return func(cfg *Configuration) {
		for _, index := range indexes {
			cfg.mustHaveIndex(index)
			cfg.required[index] = struct{}{}
		}
	}
}

// WithLongAlias makes the named argument or switch with `index` available as "--alias".
// The last registration wins for the same alias.
func WithLongAlias(alias string, index int) ConfigurationOption {
	return func(cfg *Configuration) {
		cfg.mustHaveIndex(index)
		if cfg.arguments[index].kind == KindPositional {
			panic(fmt.Sprintf("long alias %q refers to positional argument %d", alias, index))
		}
		cfg.longAliases.Set(alias, index)
	}
}

// WithHelp sets usage metadata of the argument with `index`
func WithHelp(index int, help Help) ConfigurationOption {
	return func(cfg *Configuration) {
		cfg.mustHaveIndex(index)
		cfg.help[index] = help
	}
}

// NewConfiguration creates a Configuration from `arguments` in declaration order.
// Indexes passed to options refer to positions in `arguments`; it panics if an index is out of range.
func NewConfiguration(arguments []Argument, opts ...ConfigurationOption) *Configuration {
	cfg := &Configuration{
		arguments:   slices.Clone(arguments),
		required:    make(map[int]struct{}),
		longAliases: orderedmap.New[string, int](),
		help:        make(map[int]Help),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cfg.shortNames = make(map[string]int)
	for i, arg := range cfg.arguments {
		if arg.kind == KindPositional {
			continue
		}
		// first declared wins
		if _, has := cfg.shortNames[arg.name]; !has {
			cfg.shortNames[arg.name] = i
		}
	}
	cfg.aliasesByIndex = make(map[int][]string)
	for pair := cfg.longAliases.Oldest(); pair != nil; pair = pair.Next() {
		cfg.aliasesByIndex[pair.Value] = append(cfg.aliasesByIndex[pair.Value], pair.Key)
	}
	return cfg
}

// Len returns the number of declared arguments
func (cfg *Configuration) Len() int {
	return len(cfg.arguments)
}

// Arguments returns all arguments in declaration order
func (cfg *Configuration) Arguments() []Argument {
	return slices.Clone(cfg.arguments)
}

// Argument returns the argument with the given index
func (cfg *Configuration) Argument(index int) Argument {
	return cfg.arguments[index]
}

// IsRequired tells whether the argument with the given index is required
func (cfg *Configuration) IsRequired(index int) bool {
	_, isRequired := cfg.required[index]
	return isRequired
}

// Required returns indexes of required arguments in declaration order
func (cfg *Configuration) Required() []int {
	res := make([]int, 0, len(cfg.required))
	for index := range cfg.required {
		res = append(res, index)
	}
	slices.Sort(res)
	return res
}

// LookupLongAlias returns the index of the argument registered with the long alias
func (cfg *Configuration) LookupLongAlias(alias string) (index int, has bool) {
	return cfg.longAliases.Get(alias)
}

// LookupName returns the index of the first declared named argument or switch with the short name
func (cfg *Configuration) LookupName(name string) (index int, has bool) {
	index, has = cfg.shortNames[name]
	return index, has
}

// LongAliases returns the long aliases of the argument with the given index in order of registration
func (cfg *Configuration) LongAliases(index int) []string {
	return slices.Clone(cfg.aliasesByIndex[index])
}

// Help returns usage metadata of the argument with the given index
func (cfg *Configuration) Help(index int) (help Help, has bool) {
	help, has = cfg.help[index]
	return help, has
}

// lookupToken resolves an option token name for token.Iterate
func (cfg *Configuration) lookupToken(name string, long bool) (known bool, isSwitch bool) {
	index, known := cfg.lookupIndex(name, long)
	if !known {
		return false, false
	}
	return true, cfg.arguments[index].kind == KindSwitch
}

func (cfg *Configuration) lookupIndex(name string, long bool) (index int, has bool) {
	if long {
		return cfg.LookupLongAlias(name)
	}
	return cfg.LookupName(name)
}

func (cfg *Configuration) mustHaveIndex(index int) {
	if index < 0 || index >= len(cfg.arguments) {
		panic(fmt.Sprintf("argument index %d is out of range [0, %d)", index, len(cfg.arguments)))
	}
}
