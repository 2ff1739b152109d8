package cmdline

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"
)

// Usage is a help text composed from a Configuration
type Usage struct {
	// Arguments is a single line synopsis: `-name <value> [<path>] [-switch]`
	Arguments string
	// Options contains one line per argument: the argument form and its description separated by a tab.
	// Every line including the last one is terminated by "\n".
	Options string
}

// UsageComposer composes Usage from a Configuration
type UsageComposer struct {
	configuration *Configuration
}

func NewUsageComposer(configuration *Configuration) *UsageComposer {
	return &UsageComposer{configuration: configuration}
}

// Compose returns usage of `configuration`
func Compose(configuration *Configuration) Usage {
	return NewUsageComposer(configuration).Compose()
}

// Compose renders arguments in declaration order. Optional arguments are wrapped in "[...]".
func (c *UsageComposer) Compose() Usage {
	return Usage{
		Arguments: c.arguments(),
		Options:   c.options(),
	}
}

func (c *UsageComposer) arguments() string {
	var sb strings.Builder
	for i, arg := range c.configuration.arguments {
		required := c.configuration.IsRequired(i)
		if !required {
			sb.WriteString("[")
		}
		c.writeArgument(&sb, i, arg)
		if !required {
			sb.WriteString("]")
		}
		sb.WriteString(" ")
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace)
}

func (c *UsageComposer) options() string {
	var sb strings.Builder
	for i, arg := range c.configuration.arguments {
		c.writeOption(&sb, i, arg)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (c *UsageComposer) writeArgument(sb *strings.Builder, index int, arg Argument) {
	switch arg.kind {
	case KindNamed:
		_, _ = fmt.Fprintf(sb, "-%s <%s>", arg.name, c.placeholder(index))
	case KindPositional:
		_, _ = fmt.Fprintf(sb, "<%s>", c.placeholder(index))
	case KindSwitch:
		_, _ = fmt.Fprintf(sb, "-%s", arg.name)
	}
}

func (c *UsageComposer) writeOption(sb *strings.Builder, index int, arg Argument) {
	switch arg.kind {
	case KindNamed:
		placeholder := c.placeholder(index)
		if arg.allowedValues != nil {
			placeholder = fmt.Sprintf("%s = { %s }", placeholder, strings.Join(arg.allowedValues, " | "))
		}
		_, _ = fmt.Fprintf(sb, "-%s <%s>%s", arg.name, placeholder, c.aliasPart(index))
	case KindPositional:
		_, _ = fmt.Fprintf(sb, "<%s>", c.placeholder(index))
	case KindSwitch:
		_, _ = fmt.Fprintf(sb, "-%s%s", arg.name, c.aliasPart(index))
	}
	sb.WriteString("\t")
	sb.WriteString(c.description(index))
}

func (c *UsageComposer) aliasPart(index int) string {
	aliases := c.configuration.aliasesByIndex[index]
	if len(aliases) == 0 {
		return ""
	}
	return " (--" + strings.Join(aliases, ", --") + ")"
}

func (c *UsageComposer) placeholder(index int) string {
	if help, has := c.configuration.help[index]; has && help.Placeholder != "" {
		return help.Placeholder
	}
	return defaultPlaceholder
}

func (c *UsageComposer) description(index int) string {
	return c.configuration.help[index].Description
}

// Fprint writes a help screen for `program` to `w` aligning the option descriptions
func (u Usage) Fprint(w io.Writer, program string) error {
	title := "Usage:"
	if program != "" {
		title += " " + program
	}
	if u.Arguments != "" {
		title += " " + u.Arguments
	}
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	if u.Options == "" {
		return nil
	}
	if _, err := fmt.Fprint(w, "\nOptions:\n"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 1, 4, ' ', 0)
	if _, err := fmt.Fprintln(tw, IndentBy(strings.TrimSuffix(u.Options, "\n"), 4)); err != nil {
		return err
	}
	return tw.Flush()
}
