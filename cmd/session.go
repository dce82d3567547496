package cmd

import (
	"errors"
	"io"

	"golang.org/x/crypto/ssh"
)

// remoteSession is a minimal interface for running one command and closing.
type remoteSession interface {
	CombinedOutput(cmd string) ([]byte, error)
	Close() error
}

// remoteRunner is a minimal interface to obtain a command session, so tests
// can stub the SSH transport.
type remoteRunner interface {
	NewSession() (remoteSession, error)
}

// sshRunner adapts *ssh.Client to remoteRunner.
type sshRunner struct {
	c *ssh.Client
}

func (r sshRunner) NewSession() (remoteSession, error) {
	s, err := r.c.NewSession()
	if err != nil {
		return nil, err
	}
	return sshSession{s}, nil
}

// sshSession adapts *ssh.Session to remoteSession.
type sshSession struct {
	s *ssh.Session
}

func (w sshSession) CombinedOutput(cmd string) ([]byte, error) {
	return w.s.CombinedOutput(cmd)
}

func (w sshSession) Close() error {
	err := w.s.Close()
	// Close after Wait returns EOF; that is not a failure.
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
