package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/indusign/indusign/pkg/errors"
	"github.com/indusign/indusign/pkg/service"
)

func TestDefault(t *testing.T) {
	meta := service.Default()

	assert.Equal(t, "InduSign API", meta.Name)
	assert.Equal(t, "eSignature Application Backend API", meta.Description)
	assert.Equal(t, "1.0.0", meta.Version)
	assert.Equal(t, "indusign-backend", meta.ServiceID)
	assert.NoError(t, meta.Validate())
}

func TestRunningMessage(t *testing.T) {
	assert.Equal(t, "InduSign API is running", service.Default().RunningMessage())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*service.Metadata)
		field  string
	}{
		{name: "blank name", mutate: func(m *service.Metadata) { m.Name = "  " }, field: "name"},
		{name: "blank version", mutate: func(m *service.Metadata) { m.Version = "" }, field: "version"},
		{name: "blank service id", mutate: func(m *service.Metadata) { m.ServiceID = "" }, field: "service_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := service.Default()
			tt.mutate(&meta)

			err := meta.Validate()
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidationError(err))

			var vErr *pkgerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	t.Run("description is optional", func(t *testing.T) {
		meta := service.Default()
		meta.Description = ""
		assert.NoError(t, meta.Validate())
	})
}
