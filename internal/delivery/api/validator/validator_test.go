package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `json:"customerName" validate:"required,notblank"`
	Email  string `json:"email" validate:"omitempty,email"`
	Points *int   `json:"points" validate:"omitempty,gte=0"`
}

func TestValidate(t *testing.T) {
	negative := -1
	zero := 0

	tests := []struct {
		name       string
		req        sampleRequest
		wantFields []FieldError
	}{
		{name: "valid", req: sampleRequest{Name: "Fatima", Points: &zero}},
		{name: "missing", req: sampleRequest{}, wantFields: []FieldError{{Field: "customerName", Rule: "required"}}},
		{name: "blank", req: sampleRequest{Name: "   "}, wantFields: []FieldError{{Field: "customerName", Rule: "notblank"}}},
		{
			name:       "several",
			req:        sampleRequest{Name: "A", Email: "nope", Points: &negative},
			wantFields: []FieldError{{Field: "email", Rule: "email"}, {Field: "points", Rule: "gte", Param: "0"}},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantFields == nil {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantFields, Describe(err))
		})
	}
}

func TestDescribe_OtherError(t *testing.T) {
	assert.Nil(t, Describe(errors.New("boom")))
}
