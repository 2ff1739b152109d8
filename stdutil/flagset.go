package stdutil

import (
	"flag"
	"fmt"

	"github.com/cardinalby/go-cmdline"
)

type boolFlag interface {
	IsBoolFlag() bool
}

// IsBoolFlag tells whether the flag can be passed without a value
func IsBoolFlag(f *flag.Flag) bool {
	if bf, ok := f.Value.(boolFlag); ok {
		return bf.IsBoolFlag()
	}
	return false
}

// Import registers all flags of `flagSet` in `c` in lexicographical order.
// Bool flags become switches setting the flag to "true", other flags become named arguments
// passing their values to flagSet.Set. Errors of flagSet.Set are reported as invalid values.
func Import(c *cmdline.Configurator, flagSet *flag.FlagSet) {
	flagSet.VisitAll(func(f *flag.Flag) {
		description := f.Usage
		if !isZeroDefValue(f.DefValue) {
			description = fmt.Sprintf("%s (default %q)", description, f.DefValue)
		}
		if IsBoolFlag(f) {
			c.WithSwitch(f.Name, func() {
				_ = flagSet.Set(f.Name, "true")
			}).DescribedBy(description)
			return
		}
		placeholder, usage := flag.UnquoteUsage(f)
		if usage != f.Usage {
			description = usage + description[len(f.Usage):]
		}
		c.WithNamed(f.Name, func(token string) error {
			return flagSet.Set(f.Name, token)
		}).DescribedBy(placeholder, description)
	})
}

// GetSetFlagNames returns names of the flags that have been set
func GetSetFlagNames(flagSet *flag.FlagSet) map[string]struct{} {
	flags := make(map[string]struct{})
	flagSet.Visit(func(f *flag.Flag) {
		flags[f.Name] = struct{}{}
	})
	return flags
}

func isZeroDefValue(value string) bool {
	switch value {
	case "", "0", "false", "0s":
		return true
	}
	return false
}
