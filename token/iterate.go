package token

// Lookup reports whether an option name is known and whether it takes no value.
// `long` is true for names that were prefixed with "--".
type Lookup func(name string, long bool) (known bool, isSwitch bool)

type YieldInstr int

func (i YieldInstr) Has(instr YieldInstr) bool {
	return i&instr != 0
}

const (
	// YieldNext instructs to continue iteration
	YieldNext YieldInstr = 1 << iota

	// YieldExpectValue in combination with YieldNext instructs to treat the current ambiguous
	// RoleOption token as a named argument that is followed by value (not a switch)
	YieldExpectValue = 1 << iota

	// YieldStop instructs to stop iteration
	YieldStop = 1 << iota
)

// YieldFunc is a function that is called for each arg.
// If it receives a token without RoleKnown and RoleSwitch, the option is unknown and it's
// ambiguous whether the next arg is its value.
// - If it returns YieldNext, the current arg will be treated as a switch.
// - If it returns YieldNext | YieldExpectValue, the next arg will be treated as its value
// unless it looks like an option itself.
type YieldFunc func(t Token) YieldInstr

// TreatUnknownAsSwitch transforms yield func with bool return value to YieldFunc that always
// treats ambiguous unknown options as switches
func TreatUnknownAsSwitch(yield func(t Token) bool) YieldFunc {
	return func(t Token) YieldInstr {
		if yield(t) {
			return YieldNext
		}
		return YieldStop
	}
}

// TreatUnknownAsNamed transforms yield func with bool return value to YieldFunc that always
// treats ambiguous unknown options as named arguments followed by a value
func TreatUnknownAsNamed(yield func(t Token) bool) YieldFunc {
	return func(t Token) YieldInstr {
		if yield(t) {
			if isAmbiguous(t.Role) {
				return YieldNext | YieldExpectValue
			}
			return YieldNext
		}
		return YieldStop
	}
}

// Iterate classifies args in the context of known options provided by `lookup` and calls
// yield for each of them. A nil lookup treats every option as unknown.
func Iterate(args []string, lookup Lookup, yield YieldFunc) {
	expRole := Role(0)

	for i, arg := range args {
		if expRole.Has(RoleValue) {
			t := Token{Arg: arg, Role: expRole}
			expRole = 0
			if yield(t).Has(YieldStop) {
				return
			}
			continue
		}

		t := Classify(arg)
		if !t.Role.Has(RoleOption) {
			if yield(t).Has(YieldStop) {
				return
			}
			continue
		}

		var isKnown, isSwitch bool
		if lookup != nil {
			isKnown, isSwitch = lookup(t.Name, t.Role.Has(RoleLong))
		}
		if isKnown {
			t.Role |= RoleKnown
		} else if i == len(args)-1 {
			// nothing left to be a value
			isSwitch = true
		}
		if isSwitch {
			t.Role |= RoleSwitch
		}

		yieldRes := yield(t)
		if yieldRes.Has(YieldStop) {
			return
		}
		if isSwitch {
			continue
		}
		if isKnown {
			expRole = RoleValue | RoleKnown
		} else if yieldRes.Has(YieldExpectValue) && !Classify(args[i+1]).Role.Has(RoleOption) {
			expRole = RoleValue
		}
	}
}

func isAmbiguous(r Role) bool {
	return r.Has(RoleOption) && !r.Has(RoleKnown) && !r.Has(RoleSwitch)
}
