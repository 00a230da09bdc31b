package httpd

import (
	"bytes"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startTestServer(t *testing.T, cfg Config) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create listener: %v", err)
	}
	t.Cleanup(func() { listener.Close() })

	server := NewServer(cfg)
	go server.serve(listener)

	return listener.Addr().String()
}

// sendRequest writes raw bytes and reads until the server closes the
// connection, which it does after every response.
func sendRequest(t *testing.T, addr, raw string) []byte {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("failed to dial server: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(raw)); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	response, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	return response
}

func TestServerServesFile(t *testing.T) {
	cfg := testConfig(t)
	addr := startTestServer(t, cfg)

	got := sendRequest(t, addr, "GET /hello.txt HTTP/1.1\r\nHost: test\r\n\r\n")
	want := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Length: 5\r\n" +
		"\r\n" +
		"hello"

	if string(got) != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestServerBadRequest(t *testing.T) {
	addr := startTestServer(t, testConfig(t))

	tests := []struct {
		name string
		raw  string
	}{
		{"wrong method", "POST /hello.txt HTTP/1.1\r\n\r\n"},
		{"too few tokens", "GET /hello.txt\r\n\r\n"},
		{"wrong version", "GET /hello.txt HTTP/1.0\r\n\r\n"},
		{"garbage", "\x16\x03\x01\x02\x00\r\n\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sendRequest(t, addr, tt.raw)
			want := "HTTP/1.1 400 Bad Request\r\n\r\n"
			if string(got) != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestServerIdempotence(t *testing.T) {
	addr := startTestServer(t, testConfig(t))

	raw := "GET /index.html HTTP/1.1\r\nHost: test\r\n\r\n"
	first := sendRequest(t, addr, raw)
	second := sendRequest(t, addr, raw)

	if !bytes.Equal(first, second) {
		t.Errorf("separate connections got different responses:\n%q\n%q", first, second)
	}
}

func TestServerReadTimeout(t *testing.T) {
	cfg := testConfig(t)
	cfg.ReadTimeout = 50 * time.Millisecond
	addr := startTestServer(t, cfg)

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("failed to dial server: %v", err)
	}
	defer conn.Close()

	// Send nothing; the server must drop the connection without a
	// response once the deadline passes.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	response, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}
	if len(response) != 0 {
		t.Errorf("expected no response on timeout, got %q", response)
	}
}

// A client that connects and hangs up must not disturb the next request.
func TestServerSurvivesClientHangup(t *testing.T) {
	addr := startTestServer(t, testConfig(t))

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("failed to dial server: %v", err)
	}
	conn.Close()

	got := sendRequest(t, addr, "GET /hello.txt HTTP/1.1\r\n\r\n")
	if !bytes.HasPrefix(got, []byte("HTTP/1.1 200 OK\r\n")) {
		t.Errorf("server did not recover after hangup, got %q", got)
	}
}

func TestServerDefaultDocumentOnDisk(t *testing.T) {
	root := t.TempDir()
	content := []byte("<html>custom</html>")
	if err := os.WriteFile(filepath.Join(root, "home.html"), content, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cfg := Config{WebRoot: root, DefaultDocument: "/home.html"}
	addr := startTestServer(t, cfg)

	slash := sendRequest(t, addr, "GET / HTTP/1.1\r\n\r\n")
	direct := sendRequest(t, addr, "GET /home.html HTTP/1.1\r\n\r\n")

	if !bytes.Equal(slash, direct) {
		t.Errorf("GET / and GET /home.html differ:\n%q\n%q", slash, direct)
	}
	if !bytes.HasSuffix(slash, content) {
		t.Errorf("body mismatch: %q", slash)
	}
}
