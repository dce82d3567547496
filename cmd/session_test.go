package cmd

import "time"

// fakeSession and fakeRunner stand in for the SSH transport in unit tests.

type fakeSession struct {
	out     []byte
	err     error
	delay   time.Duration
	closed  bool
	lastCmd string
}

func (s *fakeSession) CombinedOutput(cmd string) ([]byte, error) {
	s.lastCmd = cmd
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.out, s.err
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeRunner struct {
	sess   *fakeSession
	newErr error
}

func (r *fakeRunner) NewSession() (remoteSession, error) {
	if r.newErr != nil {
		return nil, r.newErr
	}
	return r.sess, nil
}
