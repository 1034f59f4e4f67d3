package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeRoles(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil gets the default role", nil, []string{RoleUser}},
		{"empty gets the default role", []string{}, []string{RoleUser}},
		{"user role is not duplicated", []string{RoleUser, RoleUser}, []string{RoleUser}},
		{"admin is kept after user", []string{RoleAdmin}, []string{RoleUser, RoleAdmin}},
		{"order is stable", []string{RoleAdmin, RoleUser}, []string{RoleUser, RoleAdmin}},
		{"unknown roles are dropped", []string{"ROLE_SUPERUSER"}, []string{RoleUser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRoles(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("NormalizeRoles(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	admin := &User{Roles: []string{RoleUser, RoleAdmin}}
	if !admin.IsAdmin() {
		t.Fatalf("expected admin")
	}

	regular := &User{Roles: []string{RoleUser}}
	if regular.IsAdmin() {
		t.Fatalf("expected non-admin")
	}

	var none User
	if none.IsAdmin() {
		t.Fatalf("expected non-admin for empty roles")
	}
}

func TestUserGetRolesAlwaysIncludesUser(t *testing.T) {
	u := &User{Roles: []string{RoleAdmin}}
	got := u.GetRoles()
	if len(got) == 0 || got[0] != RoleUser {
		t.Fatalf("expected %s first, got %v", RoleUser, got)
	}
}
