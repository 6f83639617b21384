package gomaskx

// MsgType represents the classification of a log message.
// It indicates whether the message represents incoming data, outgoing data,
// a request, a response, or an application event.
type MsgType string

const (
	// MESSSAGE_TYPE_IN indicates an incoming message or data
	MESSSAGE_TYPE_IN MsgType = "IN"
	// MESSSAGE_TYPE_OUT indicates an outgoing message or data
	MESSSAGE_TYPE_OUT MsgType = "OUT"
	// MESSSAGE_TYPE_REQUEST indicates an outgoing request to external service
	MESSSAGE_TYPE_REQUEST MsgType = "REQUEST"
	// MESSSAGE_TYPE_RESPONSE indicates an incoming response from external service
	MESSSAGE_TYPE_RESPONSE MsgType = "RESPONSE"
	// MESSSAGE_TYPE_EVENT indicates an application event
	MESSSAGE_TYPE_EVENT MsgType = "EVENT"
)

// HTTPData captures context for HTTP interactions.
// It provides a structured schema for logging request/response and client
// metadata. The Body is rendered through the Masker, so request/response
// payload structs declare their own masking via the mask tag.
//
// Example:
//
//	type LoginRequest struct {
//		Username string `mask:"email"`
//		Password string `mask:"password"`
//	}
//
//	gomaskx.HTTP("trace-001", "http", gomaskx.MESSSAGE_TYPE_REQUEST, "login request", gomaskx.HTTPData{
//		Method:   "POST",
//		URL:      "/api/v1/auth/login",
//		Body:     LoginRequest{Username: "john.doe@example.com", Password: "secret123"},
//		ClientIP: "192.168.1.1",
//	})
type HTTPData struct {
	Method     string              `json:"method,omitempty"`
	URL        string              `json:"url,omitempty"`
	StatusCode int                 `json:"status_code,omitempty"`
	Headers    map[string][]string `json:"headers,omitempty"`
	Body       any                 `json:"body,omitempty"`
	Duration   string              `json:"duration,omitempty"`
	ClientIP   string              `json:"client_ip,omitempty"`
}
