package response

// ErrResp is the body returned on every non-OK status.
type ErrResp struct {
	Error string `json:"error"`
}

// DefaultErrorMessage is returned when the real cause must not leak to clients.
const DefaultErrorMessage = "internal server error"
