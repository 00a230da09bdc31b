package httpd

import (
	"errors"
	"strings"
)

// ErrMalformedRequest is returned when the request line cannot be
// validated as a GET over HTTP/1.1. The caller answers it with a bare
// 400 and closes the connection.
var ErrMalformedRequest = errors.New("malformed request line")

type Request struct {
	Method  string
	Target  string // path plus optional query string, verbatim
	Version string
}

// ParseRequest validates the request line out of a single socket read.
// Only the first line matters; headers and anything after them are
// ignored. Invalid byte sequences pass through untouched since the
// splitting below is byte-oriented.
func ParseRequest(data []byte) (*Request, error) {
	lines := strings.Split(string(data), "\r\n")
	if len(lines) < 1 {
		return nil, ErrMalformedRequest
	}

	fields := strings.Fields(lines[0])
	if len(fields) != 3 {
		return nil, ErrMalformedRequest
	}
	if fields[0] != "GET" {
		return nil, ErrMalformedRequest
	}
	// The version check is a substring match, not an exact one.
	if !strings.Contains(fields[2], HTTP11Version) {
		return nil, ErrMalformedRequest
	}

	return &Request{
		Method:  fields[0],
		Target:  fields[1],
		Version: fields[2],
	}, nil
}
