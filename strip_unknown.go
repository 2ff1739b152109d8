package cmdline

import (
	"github.com/cardinalby/go-cmdline/token"
)

// StripUnknown splits `tokens` into the ones known to `configuration` and the stripped unknown
// options. If an unknown option is not the last token and `unknownAsSwitch` is false, the token
// following it is considered its value and is stripped too unless it looks like an option.
func StripUnknown(configuration *Configuration, tokens []string, unknownAsSwitch bool) (res, stripped []string) {
	yieldTransform := token.TreatUnknownAsNamed
	if unknownAsSwitch {
		yieldTransform = token.TreatUnknownAsSwitch
	}
	res = make([]string, 0, len(tokens))
	token.Iterate(tokens, configuration.lookupToken, yieldTransform(func(t token.Token) bool {
		if !t.Role.Has(token.RoleOption) && !t.Role.Has(token.RoleValue) ||
			t.Role.Has(token.RoleKnown) {
			res = append(res, t.Arg)
		} else {
			stripped = append(stripped, t.Arg)
		}
		return true
	}))
	return res, stripped
}
