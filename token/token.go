package token

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleOption     Role = 1 << iota
	RoleLong            = 1 << iota // modifies RoleOption
	RoleKnown           = 1 << iota // modifies RoleOption or RoleValue
	RoleSwitch          = 1 << iota // modifies RoleOption
	RoleValue           = 1 << iota
	RolePositional      = 1 << iota
)

type Token struct {
	Arg  string
	Name string
	// Role is sum of Role constants. Possible values:
	// RoleOption | RoleKnown | RoleSwitch   // known switch, takes no value
	// RoleOption | RoleKnown                // known named argument, will be followed by value
	// RoleOption | RoleSwitch               // unknown, located at the end or treated as switch
	// RoleOption                            // unknown, it's ambiguous whether it takes a value
	//                                       // On receiving it, yield function should decide how to treat it
	// RoleValue | RoleKnown                 // goes next after a known named argument
	// RoleValue                             // goes next after an unknown option treated as named
	// RolePositional
	// RoleLong can be added to any RoleOption combination if Arg starts with "--"
	Role Role
}

// Classify returns the context-free role of a single argument:
// "--name" is a long option, "-name" is a short option and anything else is positional.
// "-" and "--" are options with an empty name.
func Classify(arg string) Token {
	res := Token{Arg: arg}
	switch {
	case len(arg) >= 2 && arg[0] == '-' && arg[1] == '-':
		res.Name = arg[2:]
		res.Role = RoleOption | RoleLong
	case len(arg) >= 1 && arg[0] == '-':
		res.Name = arg[1:]
		res.Role = RoleOption
	default:
		res.Role = RolePositional
	}
	return res
}

// Prefix returns the dash prefix Arg would need to be recognized with the Role of the token
func (t Token) Prefix() string {
	if !t.Role.Has(RoleOption) {
		return ""
	}
	if t.Role.Has(RoleLong) {
		return "--"
	}
	return "-"
}
