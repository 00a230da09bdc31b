package httpd

import "time"

const (
	HTTP11Version = "HTTP/1.1"

	DefaultReadBufferSize = 4096
	DefaultReadTimeout    = 5 * time.Second

	StatusOK            = "200 OK"
	StatusMovedTemp     = "302 Moved Temporarily"
	StatusBadRequest    = "400 Bad Request"
	StatusForbidden     = "403 Forbidden"
	StatusNotFound      = "404 Not Found"
	StatusInternalError = "500 Internal Server Error"

	LocationHeader      = "Location"
	ContentTypeHeader   = "Content-Type"
	ContentLengthHeader = "Content-Length"

	defaultContentType = "text/plain"
)
