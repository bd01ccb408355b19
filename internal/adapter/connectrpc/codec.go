package connectrpc

import (
	"encoding/json"
	"fmt"
)

// jsonCodec replaces connect's protojson codec so plain Go structs can be
// served under the "json" content subtype.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("decode json message: %w", err)
	}
	return nil
}
