package enums

import "fmt"

// SessionType is the kind of coaching session a client can book.
type SessionType string

const (
	SessionTypePersonal   SessionType = "personal"
	SessionTypeGroup      SessionType = "group"
	SessionTypeEvaluation SessionType = "evaluation"
)

var validSessionTypes = []SessionType{
	SessionTypePersonal,
	SessionTypeGroup,
	SessionTypeEvaluation,
}

// String implements fmt.Stringer.
func (s SessionType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SessionType.
func (s SessionType) IsValid() bool {
	for _, candidate := range validSessionTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSessionType converts raw input into a SessionType.
func ParseSessionType(value string) (SessionType, error) {
	for _, candidate := range validSessionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid session type %q", value)
}
