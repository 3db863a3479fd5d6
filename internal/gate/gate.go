package gate

// Decision is what the gate tells the caller to do with the request.
type Decision int

const (
	// Render lets the requested content through.
	Render Decision = iota
	// Loading asks the caller to hold until the session settles.
	Loading
	// Redirect sends the caller to sign-in, preserving the original
	// location for post-login return.
	Redirect
	// Denied shows access-denied; the identity stays authenticated.
	Denied
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case Loading:
		return "loading"
	case Redirect:
		return "redirect"
	case Denied:
		return "denied"
	}
	return "unknown"
}

// Input captures everything the decision depends on. The gate holds no
// state of its own.
type Input struct {
	AuthDisabled bool
	Bypass       bool
	Loading      bool
	HasIdentity  bool
	IsAdmin      bool
	RequireAdmin bool
}

// Decide evaluates the gate in strict precedence order: bypass wins
// over everything, then loading, then the sign-in redirect, then the
// admin requirement.
func Decide(in Input) Decision {
	if in.AuthDisabled || in.Bypass {
		return Render
	}
	if in.Loading {
		return Loading
	}
	if !in.HasIdentity {
		return Redirect
	}
	if in.RequireAdmin && !in.IsAdmin {
		return Denied
	}
	return Render
}
