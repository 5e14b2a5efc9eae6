package grpc

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Admin messages travel as google.protobuf.Struct on the default proto codec.
// The Go message types keep their json tags as the field names on the wire.

// toWire encodes a message as a protobuf Struct
func toWire(msg any) (*structpb.Struct, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", msg, err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("encode %T: %w", msg, err)
	}
	return out, nil
}

// fromWire decodes a protobuf Struct into msg
func fromWire(in *structpb.Struct, msg any) error {
	if in == nil || len(in.GetFields()) == 0 {
		return nil
	}
	data, err := protojson.Marshal(in)
	if err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	return nil
}
