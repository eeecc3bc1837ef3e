package card

import "fmt"

// FieldRole names one of the semantic fields a card can carry.
type FieldRole string

const (
	RoleExpression FieldRole = "Expression"
	RoleReading    FieldRole = "Reading"
	RoleRomaji     FieldRole = "Romaji"
	RoleGloss1     FieldRole = "Gloss1"
	RoleGloss2     FieldRole = "Gloss2"
	RoleGloss3     FieldRole = "Gloss3"
	RoleAudio      FieldRole = "Audio"
)

// RoleOrder lists every recognized role in output column order.
var RoleOrder = []FieldRole{
	RoleExpression, RoleReading, RoleRomaji,
	RoleGloss1, RoleGloss2, RoleGloss3, RoleAudio,
}

// FieldMapping maps semantic roles to the external note type's field names.
// Roles without a mapping are simply not emitted.
type FieldMapping map[FieldRole]string

// NewFieldMapping validates a raw role-name to field-name mapping. Unknown
// roles, empty targets and duplicate targets are configuration errors; they
// would affect every card identically, so they abort before any line is
// processed.
func NewFieldMapping(raw map[string]string) (FieldMapping, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("field mapping is empty: at least one field must be assigned")
	}

	known := make(map[FieldRole]bool, len(RoleOrder))
	for _, role := range RoleOrder {
		known[role] = true
	}

	mapping := make(FieldMapping, len(raw))
	targets := make(map[string]FieldRole, len(raw))
	for roleName, target := range raw {
		role := FieldRole(roleName)
		if !known[role] {
			return nil, fmt.Errorf("unknown field role: %q", roleName)
		}
		if target == "" {
			return nil, fmt.Errorf("field role %s has an empty target field name", role)
		}
		if prev, dup := targets[target]; dup {
			return nil, fmt.Errorf("target field %q mapped twice (roles %s and %s)", target, prev, role)
		}
		targets[target] = role
		mapping[role] = target
	}

	return mapping, nil
}

// Target returns the external field name for a role and whether it is mapped.
func (m FieldMapping) Target(role FieldRole) (string, bool) {
	name, ok := m[role]
	return name, ok
}
