package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const encodeFailureBody = `{"error":"server_error","message":"internal server error"}` + "\n"

// WriteJSON encodes v and writes it with the given status code. The body is
// marshalled before any byte hits the wire, so an encoding failure turns
// into a clean 500 instead of a truncated response with a success status.
// Responses carry account and session data, so caching is disabled across
// the board.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		body = []byte(encodeFailureBody)
	} else {
		body = append(body, '\n')
	}

	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// NoCache marks the response as uncacheable. Pragma covers the HTTP/1.0
// proxies that ignore Cache-Control.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
