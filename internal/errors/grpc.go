package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCode = "code"
	detailMeta = "meta"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// structpb.Struct detail so FromGRPCError can restore it on the client.
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
	if details, ok := errorDetails(customErr); ok {
		if detailed, err := st.WithDetails(details); err == nil {
			st = detailed
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC status error back to an *Error
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
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		if meta := details.GetFields()[detailMeta].GetStructValue(); meta != nil {
			customErr.Meta = meta.AsMap()
		}
		break
	}

	return customErr
}

func errorDetails(e *Error) (*structpb.Struct, bool) {
	if len(e.Meta) == 0 {
		return nil, false
	}

	// Meta values are arbitrary Go types; JSON normalises them for structpb
	data, err := json.Marshal(e.Meta)
	if err != nil {
		return nil, false
	}
	meta := &structpb.Struct{}
	if err := protojson.Unmarshal(data, meta); err != nil {
		return nil, false
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		detailCode: structpb.NewStringValue(string(e.Code)),
		detailMeta: structpb.NewStructValue(meta),
	}}, true
}
