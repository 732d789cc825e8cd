package forge3d

import "fmt"

// TransportError reports that no usable HTTP response was received. It is
// always fatal to the single request; the client never retries.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "Connection failed"
	}
	return fmt.Sprintf("Connection failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-200 response. Body carries a snippet of the
// response body, capped at snippetLimit bytes.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a response body that was not the JSON object the
// service contract promises. It is surfaced distinctly from transport and
// status failures so callers can tell "server unreachable" from "server
// returned garbage".
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "decode response: " + e.Reason
	}
	return fmt.Sprintf("decode response: %s: %v", e.Reason, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// FileWriteError reports a download that succeeded over the wire but could
// not be persisted locally. Distinguished from TransportError so callers can
// suggest a different destination instead of re-issuing the request.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("Failed to write file %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }
