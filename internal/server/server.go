package server

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/nhdewitt/jwp-dispatch/internal/request"
	"github.com/nhdewitt/jwp-dispatch/internal/response"
	"go.uber.org/atomic"
)

type Config struct {
	Port         int
	ReadTimeout  time.Duration
	MaxBodyBytes int
}

type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	cfg         Config
	handler     Handler
	onError     ErrorHandler
}

// Serve starts accepting connections in the background. Port 0 picks a
// free port; see Addr.
func Serve(cfg Config, handler Handler, onError ErrorHandler) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener: listener,
		cfg:      cfg,
		handler:  handler,
		onError:  onError,
	}
	s.isListening.Store(true)
	go s.listen()

	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	if s.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			log.Printf("Error setting read deadline: %v", err)
		}
	}

	resp := response.NewWriter(conn)
	req, err := request.RequestFromReaderWithLimit(conn, s.cfg.MaxBodyBytes)
	if err != nil {
		if s.onError != nil {
			s.onError(resp, err)
		}
		return
	}

	s.handler(resp, req)
}
