package auth

// Level is the access level derived from a request's decoded claims.
type Level int

const (
	Anonymous Level = iota
	Client
	Privileged
)

func (l Level) String() string {
	switch l {
	case Client:
		return "client"
	case Privileged:
		return "privileged"
	}
	return "anonymous"
}

// Classify maps decoded claims to an access level. A nil claims value
// (missing, invalid or expired token) is Anonymous; Employee and Admin
// accounts are Privileged. Pure function, no I/O.
func Classify(claims *SessionClaims) Level {
	if claims == nil {
		return Anonymous
	}
	if claims.Role.Privileged() {
		return Privileged
	}
	return Client
}
