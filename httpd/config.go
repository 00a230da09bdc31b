package httpd

import "time"

// Config is the read-only configuration consumed by the server and the
// responder. Construct it once at startup; nothing mutates it afterwards,
// which is what keeps connections independent of each other.
type Config struct {
	Addr string
	Port string

	ReadTimeout    time.Duration
	ReadBufferSize int

	WebRoot         string
	DefaultDocument string

	// ContentTypes maps a lowercased file extension (without the dot)
	// to the Content-Type value sent with a 200 response.
	ContentTypes map[string]string

	// Redirects maps a request path to the Location of a 302 response.
	Redirects map[string]string

	// Forbidden paths answer 403, ErrorPaths answer 500, regardless of
	// what is on disk.
	Forbidden  map[string]bool
	ErrorPaths map[string]bool
}

func DefaultConfig() Config {
	return Config{
		Addr:            "0.0.0.0",
		Port:            "80",
		ReadTimeout:     DefaultReadTimeout,
		ReadBufferSize:  DefaultReadBufferSize,
		WebRoot:         "webroot",
		DefaultDocument: "/index.html",
		ContentTypes: map[string]string{
			"html": "text/html;charset=utf-8",
			"jpg":  "image/jpeg",
			"jpeg": "image/jpeg",
			"css":  "text/css",
			"js":   "text/javascript; charset=UTF-8",
			"txt":  "text/plain",
			"ico":  "image/x-icon",
			"gif":  "image/jpeg",
			"png":  "image/png",
		},
		Redirects:  map[string]string{"/moved": "/"},
		Forbidden:  map[string]bool{"/forbidden": true},
		ErrorPaths: map[string]bool{"/error": true},
	}
}

func fillDefaults(cfg Config) Config {
	def := DefaultConfig()

	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.Port == "" {
		cfg.Port = def.Port
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = def.ReadTimeout
	}
	if cfg.ReadBufferSize == 0 {
		cfg.ReadBufferSize = def.ReadBufferSize
	}
	if cfg.WebRoot == "" {
		cfg.WebRoot = def.WebRoot
	}
	if cfg.DefaultDocument == "" {
		cfg.DefaultDocument = def.DefaultDocument
	}
	if cfg.ContentTypes == nil {
		cfg.ContentTypes = def.ContentTypes
	}
	if cfg.Redirects == nil {
		cfg.Redirects = def.Redirects
	}
	if cfg.Forbidden == nil {
		cfg.Forbidden = def.Forbidden
	}
	if cfg.ErrorPaths == nil {
		cfg.ErrorPaths = def.ErrorPaths
	}

	return cfg
}
