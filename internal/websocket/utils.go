// internal/websocket/utils.go
package websocket

import "encoding/json"

// mapToStruct re-decodes an already-decoded JSON payload into a typed request struct.
func mapToStruct(data interface{}, target interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, target)
}
