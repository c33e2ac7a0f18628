package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/pathfinder-stats/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown check",
			expected: "INVALID_ARGUMENT: unknown check",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "char_1").
		WithMeta("player_id", "player_1")

	s.Equal("char_1", err.Meta["character_id"])
	s.Equal("player_1", err.Meta["player_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load skills")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load skills", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Equal("INTERNAL: failed to load skills: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("record not found").WithMeta("character_id", "char_1")
	wrapped := errors.Wrapf(baseErr, "failed to get character %s", "char_1")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("failed to get character char_1", wrapped.Message)
	s.Equal("char_1", wrapped.Meta["character_id"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.Internal("dial failed").WithMeta("addr", "localhost:6379")
	wrapped := errors.WrapWithCodef(baseErr, errors.CodeUnavailable, "redis %s unreachable", "localhost:6379")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal("redis localhost:6379 unreachable", wrapped.Message)
	s.Equal("localhost:6379", wrapped.Meta["addr"])

	wrapped.WithMeta("extra", true)
	s.NotContains(baseErr.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name string
		err  *errors.Error
		code errors.Code
	}{
		{"NotFound", errors.NotFound("test"), errors.CodeNotFound},
		{"NotFoundf", errors.NotFoundf("%s", "test"), errors.CodeNotFound},
		{"InvalidArgument", errors.InvalidArgument("test"), errors.CodeInvalidArgument},
		{"InvalidArgumentf", errors.InvalidArgumentf("%s", "test"), errors.CodeInvalidArgument},
		{"AlreadyExists", errors.AlreadyExists("test"), errors.CodeAlreadyExists},
		{"AlreadyExistsf", errors.AlreadyExistsf("%s", "test"), errors.CodeAlreadyExists},
		{"Internal", errors.Internal("test"), errors.CodeInternal},
		{"Internalf", errors.Internalf("%s", "test"), errors.CodeInternal},
		{"Unavailable", errors.Unavailable("test"), errors.CodeUnavailable},
		{"Unavailablef", errors.Unavailablef("%s", "test"), errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.code, tc.err.Code)
			s.Equal("test", tc.err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err := errors.Wrap(errors.NotFound("character"), "lookup")

	s.True(errors.Is(err, errors.NotFound("anything")))
	s.False(errors.Is(err, errors.InvalidArgument("anything")))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")
	plainErr := fmt.Errorf("plain")

	s.True(errors.IsNotFound(notFoundErr))
	s.True(errors.IsNotFound(wrappedErr))
	s.False(errors.IsNotFound(nil))
	s.True(errors.IsInvalidArgument(errors.InvalidArgument("test")))
	s.True(errors.IsAlreadyExists(errors.AlreadyExists("test")))
	s.True(errors.IsUnavailable(errors.Unavailable("test")))
	s.True(errors.IsInternal(plainErr))
	s.False(errors.IsInternal(nil))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.NotFound("character not found").WithMeta("character_id", "char_1")
	wrapped := errors.Wrap(err, "wrapped")
	plainErr := fmt.Errorf("plain error")

	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(plainErr))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal("char_1", errors.GetMeta(wrapped)["character_id"])
	s.Nil(errors.GetMeta(plainErr))

	s.Equal("wrapped", errors.GetMessage(wrapped))
	s.Equal("plain error", errors.GetMessage(plainErr))
	s.Empty(errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("BOGUS"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	s.Nil(errors.ToGRPCError(nil))

	st, ok := status.FromError(errors.ToGRPCError(errors.NotFound("character not found")))
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("character not found", st.Message())
	s.Empty(st.Details())

	st, ok = status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	already := status.Error(codes.Unavailable, "down")
	s.Equal(already, errors.ToGRPCError(already))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsMeta() {
	err := errors.NotFound("character not found").WithMeta("character_id", "char_1")

	back := errors.FromGRPCError(errors.ToGRPCError(err))

	s.True(errors.IsNotFound(back))
	s.Equal("character not found", errors.GetMessage(back))
	s.Equal("char_1", errors.GetMeta(back)["character_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorKeepsValidationFailures() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("RefData")
	err := errors.Wrap(vb.Build(), "invalid config")

	grpcErr := errors.ToGRPCError(err)
	s.Require().Error(grpcErr)

	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsInvalidArgument(back))
	fields, ok := errors.GetMeta(back)["validation_errors"].(map[string]interface{})
	s.Require().True(ok)
	s.Equal([]interface{}{"is required"}, fields["RefData"])
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	s.Nil(errors.FromGRPCError(nil))

	plain := fmt.Errorf("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))

	err := errors.FromGRPCError(status.Error(codes.InvalidArgument, "bad check"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Equal("bad check", errors.GetMessage(err))
	s.Nil(errors.GetMeta(err))

	s.Equal(errors.CodeInternal, errors.GetCode(errors.FromGRPCError(status.Error(codes.Unknown, "?"))))
}
