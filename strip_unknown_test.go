package cmdline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripUnknown(t *testing.T) {
	t.Parallel()

	configuration := NewConfiguration([]Argument{
		NewNamed("s", nil),
		NewSwitch("b", nil),
	}, WithLongAlias("long", 0))

	type expected struct {
		res      []string
		stripped []string
	}
	testCases := []struct {
		name            string
		args            []string
		ifUnknownSwitch expected
		ifUnknownNamed  expected
	}{
		{
			name:            "no args",
			args:            []string{},
			ifUnknownSwitch: expected{res: []string{}},
			ifUnknownNamed:  expected{res: []string{}},
		},
		{
			name:            "no unknown options",
			args:            []string{"-s", "some", "-b"},
			ifUnknownSwitch: expected{res: []string{"-s", "some", "-b"}},
			ifUnknownNamed:  expected{res: []string{"-s", "some", "-b"}},
		},
		{
			name: "unknown option at the end",
			args: []string{"-s", "some", "-b", "-unknown"},
			ifUnknownSwitch: expected{
				res:      []string{"-s", "some", "-b"},
				stripped: []string{"-unknown"},
			},
			ifUnknownNamed: expected{
				res:      []string{"-s", "some", "-b"},
				stripped: []string{"-unknown"},
			},
		},
		{
			name: "unknown option with value",
			args: []string{"-s", "some", "-b", "-unknown", "value"},
			ifUnknownSwitch: expected{
				res:      []string{"-s", "some", "-b", "value"},
				stripped: []string{"-unknown"},
			},
			ifUnknownNamed: expected{
				res:      []string{"-s", "some", "-b"},
				stripped: []string{"-unknown", "value"},
			},
		},
		{
			name: "unknown option with value and other option",
			args: []string{"-s", "some", "-b", "-unknown", "value", "-b"},
			ifUnknownSwitch: expected{
				res:      []string{"-s", "some", "-b", "value", "-b"},
				stripped: []string{"-unknown"},
			},
			ifUnknownNamed: expected{
				res:      []string{"-s", "some", "-b", "-b"},
				stripped: []string{"-unknown", "value"},
			},
		},
		{
			name: "two unknown options",
			args: []string{"-s", "some", "-b", "-unknown", "value", "-b", "-unknown2"},
			ifUnknownSwitch: expected{
				res:      []string{"-s", "some", "-b", "value", "-b"},
				stripped: []string{"-unknown", "-unknown2"},
			},
			ifUnknownNamed: expected{
				res:      []string{"-s", "some", "-b", "-b"},
				stripped: []string{"-unknown", "value", "-unknown2"},
			},
		},
		{
			name: "unknown option followed by option",
			args: []string{"-unknown", "-b"},
			ifUnknownSwitch: expected{
				res:      []string{"-b"},
				stripped: []string{"-unknown"},
			},
			ifUnknownNamed: expected{
				res:      []string{"-b"},
				stripped: []string{"-unknown"},
			},
		},
		{
			name:            "value of named argument looks like unknown option",
			args:            []string{"-s", "-unknown"},
			ifUnknownSwitch: expected{res: []string{"-s", "-unknown"}},
			ifUnknownNamed:  expected{res: []string{"-s", "-unknown"}},
		},
		{
			name: "long options",
			args: []string{"--long", "v", "--other", "x"},
			ifUnknownSwitch: expected{
				res:      []string{"--long", "v", "x"},
				stripped: []string{"--other"},
			},
			ifUnknownNamed: expected{
				res:      []string{"--long", "v"},
				stripped: []string{"--other", "x"},
			},
		},
		{
			name: "short name is not a long alias",
			args: []string{"--s", "v"},
			ifUnknownSwitch: expected{
				res:      []string{"v"},
				stripped: []string{"--s"},
			},
			ifUnknownNamed: expected{
				res:      []string{},
				stripped: []string{"--s", "v"},
			},
		},
		{
			name: "positional tokens around unknown option",
			args: []string{"a", "-x", "b", "c"},
			ifUnknownSwitch: expected{
				res:      []string{"a", "b", "c"},
				stripped: []string{"-x"},
			},
			ifUnknownNamed: expected{
				res:      []string{"a", "c"},
				stripped: []string{"-x", "b"},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, stripped := StripUnknown(configuration, tc.args, true)
			require.Equal(t, tc.ifUnknownSwitch.res, res, "unknown as switch")
			require.Equal(t, tc.ifUnknownSwitch.stripped, stripped, "unknown as switch")

			res, stripped = StripUnknown(configuration, tc.args, false)
			require.Equal(t, tc.ifUnknownNamed.res, res, "unknown as named")
			require.Equal(t, tc.ifUnknownNamed.stripped, stripped, "unknown as named")
		})
	}
}
