package theme

import "fmt"

// Role is a semantic color slot.
type Role uint8

const (
	RoleBackground  Role = iota // Window background
	RoleDisplay                 // Display panel background
	RoleDisplayText             // Display panel digits
	RoleText                    // General text and labels
	RoleDigit                   // Digit and point keys
	RoleOperator                // Binary operator and equals keys
	RoleFunction                // Unary, radix and aggregate keys
	RoleAccent                  // Mode badge, highlights
	RoleNotice                  // Format error notices

	roleCount
)

var roleNames = [roleCount]string{
	RoleBackground:  "background",
	RoleDisplay:     "display",
	RoleDisplayText: "display_text",
	RoleText:        "text",
	RoleDigit:       "digit",
	RoleOperator:    "operator",
	RoleFunction:    "function",
	RoleAccent:      "accent",
	RoleNotice:      "notice",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	roles := make([]Role, roleCount)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

// String returns the role's snake_case name.
func (r Role) String() string {
	if r < roleCount {
		return roleNames[r]
	}
	return fmt.Sprintf("Role(%d)", uint8(r))
}

// ParseRole parses a role name as returned by String.
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}
