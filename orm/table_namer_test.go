package orm_test

import (
	"testing"

	"modelbook/orm"
)

type plain struct{}

type valueNamer struct{}

func (valueNamer) TableName() string { return "custom_values" }

type ptrNamer struct{}

func (*ptrNamer) TableName() string { return "custom_ptrs" }

func TestResolveTableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolve  func() string
		expected string
	}{
		{
			name:     "fallback when TableNamer not implemented",
			resolve:  func() string { return orm.ResolveTableName[plain]("fallback") },
			expected: "fallback",
		},
		{
			name:     "value receiver",
			resolve:  func() string { return orm.ResolveTableName[valueNamer]("fallback") },
			expected: "custom_values",
		},
		{
			name:     "pointer receiver",
			resolve:  func() string { return orm.ResolveTableName[ptrNamer]("fallback") },
			expected: "custom_ptrs",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.resolve(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDeriveTableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		structName string
		want       string
	}{
		{"Question", "questions"},
		{"Choice", "choices"},
		{"Person", "people"},
		{"Ox", "oxen"},
		{"Entry", "entries"},
		{"Membership", "memberships"},
		{"UserProfile", "user_profiles"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.structName, func(t *testing.T) {
			t.Parallel()

			if got := orm.DeriveTableName(tt.structName); got != tt.want {
				t.Errorf("DeriveTableName(%q) = %q, want %q", tt.structName, got, tt.want)
			}
		})
	}
}
