package schema

import (
	"github.com/siherrmann/jobSchema/model"
)

// AllowAll lets the caller see every field.
type AllowAll struct{}

func (AllowAll) CanDump(string) bool { return true }

// DenyFields hides a fixed set of fields.
type DenyFields map[string]struct{}

func NewDenyFields(fields ...string) DenyFields {
	deny := DenyFields{}
	for _, field := range fields {
		deny[field] = struct{}{}
	}
	return deny
}

func (d DenyFields) CanDump(field string) bool {
	_, denied := d[field]
	return !denied
}

// FieldPermissionFunc adapts a predicate to model.FieldPermissions.
type FieldPermissionFunc func(field string) bool

func (f FieldPermissionFunc) CanDump(field string) bool { return f(field) }

// Filter returns a copy of data without the fields perms denies. Denied
// fields are omitted, not nulled. Nil perms allow everything.
func Filter(data model.DataMap, perms model.FieldPermissions) model.DataMap {
	if data == nil {
		return nil
	}
	filtered := make(model.DataMap, len(data))
	for field, value := range data {
		if perms != nil && !perms.CanDump(field) {
			continue
		}
		filtered[field] = value
	}
	return filtered
}
