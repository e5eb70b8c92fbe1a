package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Hagni1/jurney/internal/errors"
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
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "stage 7 is locked",
			expected: "FAILED_PRECONDITION: stage 7 is locked",
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

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(base, "failed to get character")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to get character", wrapped.Message)
	s.Equal(base, wrapped.Unwrap())
	s.Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("character not found").WithMeta("character_id", "char_1")
	wrapped := errors.Wrapf(base, "fight stage %d", 3)

	s.True(errors.IsNotFound(wrapped))
	s.Equal("char_1", errors.GetMeta(wrapped)["character_id"])
	s.True(errors.Is(wrapped, errors.NotFound("")))

	// meta maps are not shared
	wrapped.WithMeta("stage", 3)
	s.NotContains(base.Meta, "stage")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("redis: nil")
	wrapped := errors.WrapWithCode(base, errors.CodeAborted, "character is busy")
	s.True(errors.IsAborted(wrapped))
	s.Nil(errors.WrapWithCode(nil, errors.CodeAborted, "unused"))
	s.Nil(errors.Wrap(nil, "unused"))
}

func (s *ErrorsTestSuite) TestHelpersOnForeignErrors() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
	s.Equal("boom", errors.GetMessage(fmt.Errorf("boom")))
	s.Nil(errors.GetMeta(fmt.Errorf("boom")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{name: "not found", err: errors.NotFound("missing"), expected: codes.NotFound},
		{name: "invalid argument", err: errors.InvalidArgument("bad"), expected: codes.InvalidArgument},
		{name: "already exists", err: errors.AlreadyExists("taken"), expected: codes.AlreadyExists},
		{name: "failed precondition", err: errors.FailedPrecondition("locked"), expected: codes.FailedPrecondition},
		{name: "aborted", err: errors.Aborted("busy"), expected: codes.Aborted},
		{name: "plain error", err: fmt.Errorf("boom"), expected: codes.Internal},
		{name: "already a status", err: status.Error(codes.Unavailable, "down"), expected: codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.expected, st.Code())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestToGRPCErrorCarriesErrorInfo() {
	err := errors.FailedPrecondition("stage is locked").
		WithMeta("stage", 12).
		WithMeta("completed_stage", 3)

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if i, ok := d.(*errdetails.ErrorInfo); ok {
			info = i
		}
	}
	s.Require().NotNil(info)
	s.Equal("FAILED_PRECONDITION", info.GetReason())
	s.Equal(errors.ErrorDomain, info.GetDomain())
	s.Equal("12", info.GetMetadata()["stage"])
}

func (s *ErrorsTestSuite) TestRoundTripThroughGRPC() {
	err := errors.Aborted("character is busy").WithMeta("character_id", "char_1")

	back := errors.FromGRPCError(errors.ToGRPCError(err))

	var customErr *errors.Error
	s.Require().True(errors.As(back, &customErr))
	s.Equal(errors.CodeAborted, customErr.Code)
	s.Equal("character is busy", customErr.Message)
	s.Equal("char_1", customErr.Meta["character_id"])
}

func (s *ErrorsTestSuite) TestFromGRPCErrorWithoutDetails() {
	back := errors.FromGRPCError(status.Error(codes.NotFound, "gone"))
	s.True(errors.IsNotFound(back))
	s.Equal("gone", errors.GetMessage(back))

	s.Nil(errors.FromGRPCError(nil))

	plain := fmt.Errorf("not grpc")
	s.Equal(plain, errors.FromGRPCError(plain))
}
