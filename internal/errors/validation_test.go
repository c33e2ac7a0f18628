package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorListsFieldsInOrder() {
	ve := errors.NewValidationError()
	ve.AddFieldError("skills", "duplicate id 4")
	ve.AddFieldError("abilities", "is required")
	ve.AddFieldErrorf("abp_nodes", "duplicate id %d", 20)
	ve.AddFieldError("skills", "duplicate id 9")

	s.True(ve.HasErrors())
	s.Equal("validation failed: abilities: is required; abp_nodes: duplicate id 20; skills: duplicate id 4, duplicate id 9", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.Equal(ve.Fields, err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	ve := errors.NewValidationError()

	s.False(ve.HasErrors())
	s.Equal("validation failed", ve.Error())
	s.Nil(ve.ToError())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		Field("Character", "is required").
		Fieldf("Server.Port", "must be between %d and %d", 1, 65535).
		RequiredField("RefData").
		InvalidField("Redis.Mode", "unknown mode").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Equal([]string{"is required"}, fields["RefData"])
	s.Equal([]string{"is invalid: unknown mode"}, fields["Redis.Mode"])
	s.Len(fields, 4)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Server.Port", 0, 1, 65535, vb)
	errors.ValidateRange("Redis.PoolSize", 10, 1, 1000, vb)
	errors.ValidateRange("Redis.MaxRetries", 11, 0, 10, vb)

	err := vb.Build()
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Equal([]string{"must be between 1 and 65535"}, fields["Server.Port"])
	s.Equal([]string{"must be between 0 and 10"}, fields["Redis.MaxRetries"])
	s.NotContains(fields, "Redis.PoolSize")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	sources := []string{"redis", "yaml"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Catalog.Source", "postgres", sources, vb)
	errors.ValidateEnum("Logging.Format", "yaml", sources, vb)

	err := vb.Build()
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Equal([]string{"must be one of: redis, yaml"}, fields["Catalog.Source"])
	s.NotContains(fields, "Logging.Format")
}
