package httpd

import (
	"fmt"
	"io"
	"log"
	"net"
	"time"
)

// Server owns the listener and the accept loop. Connections are served
// strictly one at a time; whatever arrives while a connection is being
// handled waits in the kernel's listen backlog.
type Server struct {
	cfg       Config
	responder *Responder
}

func NewServer(cfg Config) *Server {
	cfg = fillDefaults(cfg)
	return &Server{
		cfg:       cfg,
		responder: NewResponder(cfg),
	}
}

func (s *Server) Start() error {
	address := fmt.Sprintf("%s:%s", s.cfg.Addr, s.cfg.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to start server: %v", err)
	}
	defer listener.Close()

	log.Printf("I listening on %s", address)
	return s.serve(listener)
}

func (s *Server) serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			return fmt.Errorf("accept failed: %v", err)
		}
		s.handleConnection(conn)
	}
}

// handleConnection runs one read/parse/respond cycle and closes the
// connection. Every fault stays inside this function; the accept loop
// never sees it.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	defer func() {
		if v := recover(); v != nil {
			log.Printf("E client handling panic: %v", v)
		}
	}()

	conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

	buf := make([]byte, s.cfg.ReadBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		// Timeouts and client hangups get no response, only a closed
		// connection.
		if err != io.EOF {
			log.Printf("E read error from %s: %v", conn.RemoteAddr(), err)
		}
		return
	}
	if n == 0 {
		return
	}

	req, err := ParseRequest(buf[:n])
	if err != nil {
		if werr := writeResponse(conn, StatusBadRequest, nil, nil); werr != nil {
			log.Printf("E failed to send 400: %v", werr)
		}
		return
	}

	if err := s.responder.Respond(conn, req.Target); err != nil {
		log.Printf("E error responding to %s: %v", conn.RemoteAddr(), err)
	}
}
