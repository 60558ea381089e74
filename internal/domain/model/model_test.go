package model

import "testing"

func TestRoleValues(t *testing.T) {
	cases := []struct {
		name  string
		got   Role
		value string
	}{
		{"customer", RoleCustomer, "customer"},
		{"seller", RoleSeller, "seller"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleCustomer.Valid() || !RoleSeller.Valid() {
		t.Fatal("expected known roles to be valid")
	}
	if Role("admin").Valid() {
		t.Fatal("expected unknown role to be invalid")
	}
	if Role("").Valid() {
		t.Fatal("expected empty role to be invalid")
	}
}
