package main

import (
	"log"

	"github.com/dorlv/go-static-http/httpd"
)

// Serves ./public on :8080 with a custom redirect table. Unset fields
// fall back to the package defaults.
func main() {
	server := httpd.NewServer(httpd.Config{
		Addr:            "127.0.0.1",
		Port:            "8080",
		WebRoot:         "public",
		DefaultDocument: "/home.html",
		Redirects: map[string]string{
			"/old-home": "/home.html",
			"/docs":     "https://example.com/docs",
		},
		Forbidden: map[string]bool{
			"/admin": true,
		},
	})

	if err := server.Start(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
