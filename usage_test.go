package cmdline

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testCompose(configurator *Configurator, expArguments, expOptions string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Parallel()
		configuration, err := configurator.BuildConfiguration()
		require.NoError(t, err)

		usage := Compose(configuration)
		if diff := cmp.Diff(expArguments, usage.Arguments); diff != "" {
			t.Errorf("Arguments mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(expOptions, usage.Options); diff != "" {
			t.Errorf("Options mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("empty", testCompose(NewConfigurator(), "", ""))

	t.Run("optional named without help", testCompose(
		NewConfigurator().WithNamed("name", nil).Configurator,
		"[-name <value>]",
		"-name <value>\t\n",
	))

	t.Run("required named", testCompose(
		NewConfigurator().WithNamed("name", nil).Required().DescribedBy("placeholder", "description").Configurator,
		"-name <placeholder>",
		"-name <placeholder>\tdescription\n",
	))

	t.Run("named with long aliases", testCompose(
		NewConfigurator().
			WithNamed("name", nil).
			HavingLongAlias("alias").
			HavingLongAlias("other_alias").
			DescribedBy("placeholder", "description").
			Configurator,
		"[-name <placeholder>]",
		"-name <placeholder> (--alias, --other_alias)\tdescription\n",
	))

	t.Run("named with allowed values", testCompose(
		NewConfigurator().
			WithNamed("name", nil).
			RestrictedTo("firstAllowed", "secondAllowed").
			DescribedBy("placeholder", "description").
			Configurator,
		"[-name <placeholder>]",
		"-name <placeholder = { firstAllowed | secondAllowed }>\tdescription\n",
	))

	t.Run("optional positional", testCompose(
		NewConfigurator().WithPositional(nil).DescribedBy("placeholder", "description").Configurator,
		"[<placeholder>]",
		"<placeholder>\tdescription\n",
	))

	t.Run("required positional without help", testCompose(
		NewConfigurator().WithPositional(nil).Required().Configurator,
		"<value>",
		"<value>\t\n",
	))

	t.Run("switch", testCompose(
		NewConfigurator().WithSwitch("switch", nil).DescribedBy("description").Configurator,
		"[-switch]",
		"-switch\tdescription\n",
	))

	t.Run("switch with long aliases", testCompose(
		NewConfigurator().
			WithSwitch("switch", nil).
			HavingLongAlias("alias").
			HavingLongAlias("other_alias").
			DescribedBy("description").
			Configurator,
		"[-switch]",
		"-switch (--alias, --other_alias)\tdescription\n",
	))

	t.Run("declaration order", testCompose(
		NewConfigurator().
			WithNamed("named", nil).Required().
			WithPositional(nil).DescribedBy("placeholder", "positional").
			WithSwitch("switch", nil).DescribedBy("switch").
			WithNamed("other", nil).DescribedBy("other", "other named").
			Configurator,
		"-named <value> [<placeholder>] [-switch] [-other <other>]",
		"-named <value>\t\n"+
			"<placeholder>\tpositional\n"+
			"-switch\tswitch\n"+
			"-other <other>\tother named\n",
	))

	t.Run("allowed values are shown in options only", testCompose(
		NewConfigurator().
			WithNamed("o", nil).HavingLongAlias("output").Required().RestrictedTo("short", "long").
			WithPositional(nil).Required().
			WithSwitch("d", nil).
			Configurator,
		"-o <value> <value> [-d]",
		"-o <value = { short | long }> (--output)\t\n"+
			"<value>\t\n"+
			"-d\t\n",
	))
}

func TestComposeIsIdempotent(t *testing.T) {
	t.Parallel()

	configuration, err := NewConfigurator().
		WithNamed("o", nil).HavingLongAlias("output").Required().DescribedBy("method", "output method").
		WithSwitch("d", nil).HavingLongAlias("debug").
		WithPositional(nil).
		BuildConfiguration()
	require.NoError(t, err)

	composer := NewUsageComposer(configuration)
	first := composer.Compose()
	require.Equal(t, first, composer.Compose())
	require.Equal(t, first, Compose(configuration))
}

func TestUsageFprint(t *testing.T) {
	t.Parallel()

	configuration, err := NewConfigurator().
		WithNamed("o", nil).HavingLongAlias("output").Required().DescribedBy("method", "output method").
		WithSwitch("d", nil).HavingLongAlias("debug").DescribedBy("debug").
		BuildConfiguration()
	require.NoError(t, err)

	t.Run("with options", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, Compose(configuration).Fprint(&buf, "sample"))

		expected := "Usage: sample -o <method> [-d]\n" +
			"\n" +
			"Options:\n" +
			fmt.Sprintf("%-30s%s\n", "    -o <method> (--output)", "output method") +
			fmt.Sprintf("%-30s%s\n", "    -d (--debug)", "debug")
		if diff := cmp.Diff(expected, buf.String()); diff != "" {
			t.Errorf("help mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, Usage{}.Fprint(&buf, ""))
		require.Equal(t, "Usage:\n", buf.String())
	})
}

func TestIndentBy(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		lines       string
		indentation int
		expected    string
	}{
		{name: "empty", lines: "", indentation: 4, expected: ""},
		{name: "single line", lines: "line", indentation: 2, expected: "  line"},
		{name: "multiple lines", lines: "first\nsecond", indentation: 3, expected: "   first\n   second"},
		{name: "zero", lines: "a\nb", indentation: 0, expected: "a\nb"},
		{name: "negative", lines: "a", indentation: -1, expected: "a"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, IndentBy(tc.lines, tc.indentation))
		})
	}
}
