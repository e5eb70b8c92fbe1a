package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrorDomain identifies errors produced by this service in ErrorInfo details
const ErrorDomain = "journey"

// ToGRPCError converts an error to a gRPC status error.
//
// The code is sent as ErrorInfo.Reason. Metadata is sent twice: flattened to
// strings in ErrorInfo.Metadata, and as a structpb.Struct when every value is
// representable.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	info := &errdetails.ErrorInfo{
		Reason: customErr.Code.String(),
		Domain: ErrorDomain,
	}
	if len(customErr.Meta) > 0 {
		info.Metadata = make(map[string]string, len(customErr.Meta))
		for k, v := range customErr.Meta {
			info.Metadata[k] = fmt.Sprint(v)
		}
	}

	withDetails, detailErr := st.WithDetails(info)
	if detailErr != nil {
		return st.Err()
	}
	if len(customErr.Meta) > 0 {
		if meta, err := structpb.NewStruct(customErr.Meta); err == nil {
			if withMeta, err := withDetails.WithDetails(meta); err == nil {
				withDetails = withMeta
			}
		}
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error back to an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == ErrorDomain && d.GetReason() != "" {
				customErr.Code = Code(d.GetReason())
			}
			if customErr.Meta == nil && len(d.GetMetadata()) > 0 {
				customErr.Meta = make(map[string]any, len(d.GetMetadata()))
				for k, v := range d.GetMetadata() {
					customErr.Meta[k] = v
				}
			}
		case *structpb.Struct:
			customErr.Meta = d.AsMap()
		}
	}

	return customErr
}
