package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	svc, err := NewService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"employee can check own attendance", RoleEmployee, "attendance", "read", true},
		{"employee cannot override attendance", RoleEmployee, "attendance", "override", false},
		{"employee can request leave", RoleEmployee, "leave", "create", true},
		{"employee cannot decide leave", RoleEmployee, "leave", "decide", false},
		{"employee cannot generate report", RoleEmployee, "report", "generate", false},
		{"manager inherits employee permissions", RoleManager, "leave", "create", true},
		{"manager can decide leave", RoleManager, "leave", "decide", true},
		{"manager can override attendance", RoleManager, "attendance", "override", true},
		{"manager can amend report", RoleManager, "report", "amend", true},
		{"manager cannot delete employee", RoleManager, "employee", "delete", false},
		{"executive inherits manager permissions", RoleExecutive, "leave", "decide", true},
		{"executive can delete employee", RoleExecutive, "employee", "delete", true},
		{"unknown role denied", "INTERN", "attendance", "read", false},
		{"unknown resource denied", RoleExecutive, "payroll", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
