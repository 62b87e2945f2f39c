// Package api declares the tripmate.v1 Connect services: procedure names,
// request/response messages, handler constructors and clients.
//
// Messages are plain Go structs carried as JSON, so every handler and client
// built here is configured with Codec.
package api

import (
	"encoding/json"
	"slices"
	"strings"

	"connectrpc.com/connect"
)

// Codec marshals messages as JSON. Its name replaces Connect's default
// protojson codec, which only accepts generated protobuf messages.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append(slices.Clip(opts), connect.WithCodec(Codec{}))
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append(slices.Clip(opts), connect.WithCodec(Codec{}))
}

func trimBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
