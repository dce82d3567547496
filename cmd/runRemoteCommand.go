package cmd

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/ssh"
)

// runRemoteCommand executes a single command in a fresh exec session and
// returns the combined output, the remote exit status (-1 when none could be
// derived), and any error. A timeout of zero means the command may run for
// as long as the remote side needs.
func runRemoteCommand(conn remoteRunner, cmd string, timeout time.Duration) ([]byte, int, error) {
	type outcome struct {
		out  []byte
		code int
		err  error
	}

	exec := func() outcome {
		sess, err := conn.NewSession()
		if err != nil {
			return outcome{nil, -1, err}
		}
		defer func() { _ = sess.Close() }()
		out, err := sess.CombinedOutput(cmd)
		if err == nil {
			return outcome{out, 0, nil}
		}
		code := -1
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitStatus()
		}
		return outcome{out, code, err}
	}

	if timeout <= 0 {
		r := exec()
		return r.out, r.code, r.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ch := make(chan outcome, 1)
	go func() { ch <- exec() }()

	select {
	case r := <-ch:
		return r.out, r.code, r.err
	case <-ctx.Done():
		return nil, -1, context.DeadlineExceeded
	}
}
