package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// s - known named argument, b - known switch, "long" - long alias of s
func testLookup(name string, long bool) (known bool, isSwitch bool) {
	if long {
		return name == "long", false
	}
	switch name {
	case "s":
		return true, false
	case "b":
		return true, true
	}
	return false, false
}

func testIterate(
	args []string,
	yieldInstructions []YieldInstr,
	expected []Token,
) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		var actual []Token
		i := 0
		Iterate(args, testLookup, func(tok Token) YieldInstr {
			require.Less(t, i, len(yieldInstructions))
			actual = append(actual, tok)
			res := yieldInstructions[i]
			i++
			return res
		})
		require.Equal(t, expected, actual)
	}
}

func TestIterate(t *testing.T) {
	t.Parallel()

	t.Run("known", testIterate(
		[]string{"-s", "some", "-b", "--long", "-v", "abc"},
		[]YieldInstr{YieldNext, YieldNext, YieldNext, YieldNext, YieldNext, YieldNext},
		[]Token{
			{Arg: "-s", Name: "s", Role: RoleOption | RoleKnown},
			{Arg: "some", Role: RoleValue | RoleKnown},
			{Arg: "-b", Name: "b", Role: RoleOption | RoleKnown | RoleSwitch},
			{Arg: "--long", Name: "long", Role: RoleOption | RoleLong | RoleKnown},
			{Arg: "-v", Role: RoleValue | RoleKnown},
			{Arg: "abc", Role: RolePositional},
		}))

	t.Run("stop", testIterate(
		[]string{"-s", "some", "-b"},
		[]YieldInstr{YieldStop},
		[]Token{
			{Arg: "-s", Name: "s", Role: RoleOption | RoleKnown},
		}))

	t.Run("unknown as switch", testIterate(
		[]string{"-x", "abc", "--y"},
		[]YieldInstr{YieldNext, YieldNext, YieldNext},
		[]Token{
			{Arg: "-x", Name: "x", Role: RoleOption},
			{Arg: "abc", Role: RolePositional},
			{Arg: "--y", Name: "y", Role: RoleOption | RoleLong | RoleSwitch},
		}))

	t.Run("unknown as named", testIterate(
		[]string{"-x", "abc", "--y", "-b"},
		[]YieldInstr{YieldNext | YieldExpectValue, YieldNext, YieldNext | YieldExpectValue, YieldNext},
		[]Token{
			{Arg: "-x", Name: "x", Role: RoleOption},
			{Arg: "abc", Role: RoleValue},
			{Arg: "--y", Name: "y", Role: RoleOption | RoleLong},
			{Arg: "-b", Name: "b", Role: RoleOption | RoleKnown | RoleSwitch},
		}))

	t.Run("value of known looks like option", testIterate(
		[]string{"-s", "-b", "-"},
		[]YieldInstr{YieldNext, YieldNext, YieldNext},
		[]Token{
			{Arg: "-s", Name: "s", Role: RoleOption | RoleKnown},
			{Arg: "-b", Role: RoleValue | RoleKnown},
			{Arg: "-", Role: RoleOption | RoleSwitch},
		}))
}

func TestIterateNilLookup(t *testing.T) {
	t.Parallel()
	var actual []Token
	Iterate([]string{"-s", "v"}, nil, TreatUnknownAsNamed(func(tok Token) bool {
		actual = append(actual, tok)
		return true
	}))
	require.Equal(t, []Token{
		{Arg: "-s", Name: "s", Role: RoleOption},
		{Arg: "v", Role: RoleValue},
	}, actual)
}

func TestClassify(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		arg      string
		expected Token
	}{
		{"abc", Token{Arg: "abc", Role: RolePositional}},
		{"", Token{Arg: "", Role: RolePositional}},
		{"-", Token{Arg: "-", Role: RoleOption}},
		{"--", Token{Arg: "--", Role: RoleOption | RoleLong}},
		{"-name", Token{Arg: "-name", Name: "name", Role: RoleOption}},
		{"--name", Token{Arg: "--name", Name: "name", Role: RoleOption | RoleLong}},
		{"---name", Token{Arg: "---name", Name: "-name", Role: RoleOption | RoleLong}},
		{"-5", Token{Arg: "-5", Name: "5", Role: RoleOption}},
		{"--a=b", Token{Arg: "--a=b", Name: "a=b", Role: RoleOption | RoleLong}},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Classify(tc.arg), tc.arg)
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()
	require.Equal(t, "--", Classify("--a").Prefix())
	require.Equal(t, "-", Classify("-a").Prefix())
	require.Equal(t, "", Classify("a").Prefix())
}
