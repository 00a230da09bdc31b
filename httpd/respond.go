package httpd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Used to read files from the web root. Can be mocked.
var readFile = os.ReadFile

type header struct {
	name  string
	value string
}

// Responder maps a validated request target to exactly one response and
// writes it. It holds only read-only configuration, so a single value
// serves every connection.
type Responder struct {
	cfg Config
}

func NewResponder(cfg Config) *Responder {
	return &Responder{cfg: fillDefaults(cfg)}
}

// Respond classifies the target and writes the full response. The order
// of the checks is fixed: redirect, forbidden, error simulation, then
// file lookup. First match wins.
func (r *Responder) Respond(w io.Writer, target string) error {
	uri := stripQuery(target)
	if uri == "/" {
		uri = r.cfg.DefaultDocument
	}

	log.Printf("I GET %s", uri)

	if location, ok := r.cfg.Redirects[uri]; ok {
		return writeResponse(w, StatusMovedTemp, []header{{LocationHeader, location}}, nil)
	}

	if r.cfg.Forbidden[uri] {
		return writeResponse(w, StatusForbidden, nil, nil)
	}

	if r.cfg.ErrorPaths[uri] {
		return writeResponse(w, StatusInternalError, nil, nil)
	}

	return r.serveFile(w, uri)
}

func (r *Responder) serveFile(w io.Writer, uri string) error {
	filePath, ok := resolvePath(r.cfg.WebRoot, uri)
	if !ok {
		log.Printf("W 404 not found: %s", uri)
		return writeResponse(w, StatusNotFound, nil, nil)
	}

	info, err := os.Stat(filePath)
	if err != nil || !info.Mode().IsRegular() {
		log.Printf("W 404 not found: %s", filePath)
		return writeResponse(w, StatusNotFound, nil, nil)
	}

	data, err := readFile(filePath)
	if err != nil {
		// The file was present at stat time; report the read failure
		// instead of going silent.
		log.Printf("E failed to read %s: %v", filePath, err)
		return writeResponse(w, StatusInternalError, nil, nil)
	}

	headers := []header{
		{ContentTypeHeader, contentTypeFor(uri, r.cfg.ContentTypes)},
		{ContentLengthHeader, strconv.Itoa(len(data))},
	}
	if err := writeResponse(w, StatusOK, headers, data); err != nil {
		return err
	}
	log.Printf("I sent file %s (%d bytes)", uri, len(data))
	return nil
}

// stripQuery keeps only the path portion of a request target.
func stripQuery(target string) string {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		target = target[:i]
	}
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	return target
}

// resolvePath joins the request path under the web root. Paths that
// escape the root after cleaning (e.g. via "..") report not ok and are
// treated as missing files.
func resolvePath(root, uri string) (string, bool) {
	joined := filepath.Join(root, strings.Trim(uri, "/"))
	rel, err := filepath.Rel(root, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return joined, true
}

// contentTypeFor infers the Content-Type from the extension of the
// request path, before it was joined under the root. A path without a
// dot falls through to text/plain.
func contentTypeFor(uri string, types map[string]string) string {
	ext := strings.ToLower(uri[strings.LastIndexByte(uri, '.')+1:])
	if ct, ok := types[ext]; ok {
		return ct
	}
	return defaultContentType
}

// writeResponse emits the status line, the headers in the given order,
// the blank separator line and the body as a single write.
func writeResponse(w io.Writer, status string, headers []header, body []byte) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s %s\r\n", HTTP11Version, status)
	for _, h := range headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h.name, h.value)
	}
	buf.WriteString("\r\n")
	buf.Write(body)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %v", err)
	}
	return nil
}
