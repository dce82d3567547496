// Package sshserv hosts an in-process SSH server used by integration tests.
// It accepts any client, sinks scp uploads into memory, and answers exec
// requests through a caller-supplied handler so tests can script device
// responses without a real RouterOS target.
package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// Handler produces the canned output and exit status for one exec request.
type Handler func(cmd string) (out []byte, exit int)

// Server is a minimal SSH endpoint for tests.
type Server struct {
	Addr    string
	handler Handler

	ln     net.Listener
	stopCh chan struct{}
	done   chan struct{}

	mu    sync.Mutex
	files map[string][]byte
	cmds  []string
}

// Start launches the server on a random loopback port. Exec requests whose
// command begins with "scp" and carries the sink flag are treated as uploads
// and recorded in Files; every other command is passed to handler (nil means
// "ok\n", exit 0). Call Stop to shut down.
func Start(handler Handler) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	if handler == nil {
		handler = func(string) ([]byte, int) { return []byte("ok\n"), 0 }
	}
	s := &Server{
		Addr:    ln.Addr().String(),
		handler: handler,
		ln:      ln,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
		files:   make(map[string][]byte),
	}

	go func() {
		defer close(s.done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-s.stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go s.handleConn(conn, cfg)
		}
	}()

	return s, nil
}

// Stop closes the listener and waits for the accept loop to exit.
func (s *Server) Stop() {
	close(s.stopCh)
	_ = s.ln.Close()
	<-s.done
}

// Files returns a copy of the uploaded files keyed by remote name.
func (s *Server) Files() map[string][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]byte, len(s.files))
	for k, v := range s.files {
		out[k] = append([]byte(nil), v...)
	}
	return out
}

// Commands returns the non-scp exec commands received, in order.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cmds...)
}

func (s *Server) handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer func() { _ = sc.Close() }()
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, chReqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(c, chReqs)
	}
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		switch req.Type {
		case "exec":
			cmd := parseExecPayload(req.Payload)
			_ = req.Reply(true, nil)
			if name, ok := scpSinkTarget(cmd); ok {
				s.runSCPSink(ch, name)
			} else {
				s.runExec(ch, cmd)
			}
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}

// parseExecPayload extracts the command string from an exec request payload
// (uint32 length followed by the bytes).
func parseExecPayload(p []byte) string {
	if len(p) < 4 {
		return ""
	}
	n := binary.BigEndian.Uint32(p)
	if int(n) > len(p)-4 {
		return string(p[4:])
	}
	return string(p[4 : 4+n])
}

// scpSinkTarget reports whether cmd is an scp upload ("scp ... -t <path>")
// and returns the target path with any quoting stripped.
func scpSinkTarget(cmd string) (string, bool) {
	fields := strings.Fields(cmd)
	if len(fields) < 3 || fields[0] != "scp" {
		return "", false
	}
	sink := false
	for _, f := range fields[1 : len(fields)-1] {
		if strings.HasPrefix(f, "-") && strings.Contains(f, "t") {
			sink = true
		}
	}
	if !sink {
		return "", false
	}
	name := fields[len(fields)-1]
	if unq, err := strconv.Unquote(name); err == nil {
		name = unq
	}
	return strings.Trim(name, "'"), true
}

// runSCPSink speaks just enough of the scp sink protocol to receive one
// file: ack, header, ack, data + terminator, ack, exit 0.
func (s *Server) runSCPSink(ch ssh.Channel, name string) {
	br := newByteReader(ch)

	_, _ = ch.Write([]byte{0})
	header, err := br.readLine()
	if err != nil {
		return
	}
	// Header: C<mode> <size> <name>
	parts := strings.SplitN(strings.TrimSpace(header), " ", 3)
	if len(parts) != 3 || !strings.HasPrefix(parts[0], "C") {
		_, _ = ch.Write([]byte{1})
		return
	}
	size, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || size < 0 {
		_, _ = ch.Write([]byte{1})
		return
	}
	// The header carries the base name; prefer it over whatever came on
	// the command line since it survives shell quoting.
	if parts[2] != "" {
		name = parts[2]
	}
	_, _ = ch.Write([]byte{0})

	data := make([]byte, size)
	if _, err := io.ReadFull(br, data); err != nil {
		return
	}
	// Trailing \x00 from the sender
	_, _ = br.ReadByte()
	_, _ = ch.Write([]byte{0})

	s.mu.Lock()
	s.files[name] = data
	s.mu.Unlock()

	sendExit(ch, 0)
}

func (s *Server) runExec(ch ssh.Channel, cmd string) {
	s.mu.Lock()
	s.cmds = append(s.cmds, cmd)
	s.mu.Unlock()

	out, code := s.handler(cmd)
	_, _ = ch.Write(out)
	sendExit(ch, code)
}

func sendExit(ch ssh.Channel, code int) {
	payload := ssh.Marshal(struct{ Status uint32 }{uint32(code)})
	_, _ = ch.SendRequest("exit-status", false, payload)
	_ = ch.CloseWrite()
}

// byteReader is a tiny buffered reader exposing line and byte reads over the
// channel without over-reading past what the sink protocol needs.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func newByteReader(r io.Reader) *byteReader { return &byteReader{r: r} }

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}

func (b *byteReader) Read(p []byte) (int, error) { return b.r.Read(p) }

func (b *byteReader) readLine() (string, error) {
	var sb strings.Builder
	for {
		c, err := b.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		if c == '\n' {
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}
