package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("width", "is required")
	ve.AddFieldErrorf("height", "must be at least %d", 8)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "width: is required")
	s.Assert().Contains(ve.Error(), "height: must be at least 8")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("width", "is too small").
		RequiredField("monsters").
		InvalidField("player.hp", "must be positive")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidators() {
	testCases := []struct {
		name      string
		validate  func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Orc", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "  ", vb) }, true},
		{"minimum ok", func(vb *errors.ValidationBuilder) { errors.ValidateMinimum("hp", 1, 1, vb) }, false},
		{"minimum low", func(vb *errors.ValidationBuilder) { errors.ValidateMinimum("hp", 0, 1, vb) }, true},
		{"range ok", func(vb *errors.ValidationBuilder) { errors.ValidateRange("width", 80, 8, 1024, vb) }, false},
		{"range high", func(vb *errors.ValidationBuilder) { errors.ValidateRange("width", 2048, 8, 1024, vb) }, true},
		{"fraction ok", func(vb *errors.ValidationBuilder) { errors.ValidateFraction("weight", 0.4, vb) }, false},
		{"fraction negative", func(vb *errors.ValidationBuilder) { errors.ValidateFraction("weight", -0.1, vb) }, true},
		{"fraction above one", func(vb *errors.ValidationBuilder) { errors.ValidateFraction("weight", 1.5, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.validate(vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().Error(err)
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}
