package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidator_Register(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	valid := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
		field   string
	}{
		{name: "valid", mutate: func(r *models.RegisterRequest) {}},
		{name: "short username", mutate: func(r *models.RegisterRequest) { r.Username = "al" }, wantErr: ErrTooShort, field: FieldUsername},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "12345" }, wantErr: ErrTooShort, field: FieldPassword},
		{name: "email without at", mutate: func(r *models.RegisterRequest) { r.Email = "alice.example.com" }, wantErr: ErrInvalidEmail, field: FieldEmail},
		{name: "email with display name", mutate: func(r *models.RegisterRequest) { r.Email = "Alice <alice@example.com>" }, wantErr: ErrInvalidEmail, field: FieldEmail},
		{name: "email without domain dot", mutate: func(r *models.RegisterRequest) { r.Email = "alice@localhost" }, wantErr: ErrInvalidEmail, field: FieldEmail},
		{name: "empty email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: ErrInvalidEmail, field: FieldEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(ctx, &req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{tt.field}, fieldsOf(t, err))
		})
	}

	t.Run("field scoping", func(t *testing.T) {
		req := models.RegisterRequest{Username: "alice"}
		require.NoError(t, v.Validate(ctx, req, FieldUsername))
		require.ErrorIs(t, v.Validate(ctx, req, FieldEmail), ErrInvalidEmail)
	})

	t.Run("all violations reported", func(t *testing.T) {
		err := v.Validate(ctx, models.RegisterRequest{})
		assert.ElementsMatch(t, []string{FieldUsername, FieldEmail, FieldPassword}, fieldsOf(t, err))
	})
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.LoginRequest{Username: "al", Password: "1"}))

	err := v.Validate(ctx, &models.LoginRequest{})
	require.ErrorIs(t, err, ErrRequired)
	assert.ElementsMatch(t, []string{FieldUsername, FieldPassword}, fieldsOf(t, err))

	require.ErrorIs(t, v.Validate(ctx, "login"), ErrUnsupportedType)
}
