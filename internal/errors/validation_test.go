package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Hagni1/jurney/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("nickname").
		Fieldf("stage", "must be at least %d", 1).
		InvalidField("stat", "unknown stat \"luck\"")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "nickname: is required")
	s.Contains(err.Error(), "stage: must be at least 1")

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string]any)
	s.Require().True(ok)
	s.Equal("is required", fields["nickname"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.False(vb.HasErrors())
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name    string
		apply   func(vb *errors.ValidationBuilder)
		wantErr bool
	}{
		{
			name:    "blank required",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRequired("nickname", "   ", vb) },
			wantErr: true,
		},
		{
			name:  "present required",
			apply: func(vb *errors.ValidationBuilder) { errors.ValidateRequired("nickname", "zed", vb) },
		},
		{
			name:    "too long",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("nickname", "abcdef", 5, vb) },
			wantErr: true,
		},
		{
			name:  "multibyte within limit",
			apply: func(vb *errors.ValidationBuilder) { errors.ValidateMaxLength("nickname", "żółw", 4, vb) },
		},
		{
			name:    "below min",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateMin("stage", 0, 1, vb) },
			wantErr: true,
		},
		{
			name:    "out of range",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRange("limit", 101, 1, 100, vb) },
			wantErr: true,
		},
		{
			name:  "in range",
			apply: func(vb *errors.ValidationBuilder) { errors.ValidateRange("limit", 100, 1, 100, vb) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.wantErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
