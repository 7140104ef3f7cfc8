package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jthomsen/motorlot/internal/auth"
	"github.com/jthomsen/motorlot/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		claims *auth.SessionClaims
		want   auth.Level
	}{
		{
			name:   "nil claims are anonymous",
			claims: nil,
			want:   auth.Anonymous,
		},
		{
			name:   "client role",
			claims: &auth.SessionClaims{Role: domain.RoleClient},
			want:   auth.Client,
		},
		{
			name:   "employee is privileged",
			claims: &auth.SessionClaims{Role: domain.RoleEmployee},
			want:   auth.Privileged,
		},
		{
			name:   "admin is privileged",
			claims: &auth.SessionClaims{Role: domain.RoleAdmin},
			want:   auth.Privileged,
		},
		{
			name:   "unknown role falls back to client",
			claims: &auth.SessionClaims{Role: domain.Role("Intern")},
			want:   auth.Client,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.Classify(tt.claims))
		})
	}
}

func TestRolePrivileged(t *testing.T) {
	assert.False(t, domain.RoleClient.Privileged())
	assert.True(t, domain.RoleEmployee.Privileged())
	assert.True(t, domain.RoleAdmin.Privileged())
}
