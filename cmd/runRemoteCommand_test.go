package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunRemoteCommand_Success(t *testing.T) {
	s := &fakeSession{out: []byte("ok\n")}
	out, code, err := runRemoteCommand(&fakeRunner{sess: s}, "/system identity print", 0)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "ok\n", string(out))
	require.Equal(t, "/system identity print", s.lastCmd)
	require.True(t, s.closed)
}

func TestRunRemoteCommand_Timeout(t *testing.T) {
	s := &fakeSession{out: []byte("slow\n"), delay: 200 * time.Millisecond}
	out, code, err := runRemoteCommand(&fakeRunner{sess: s}, "sleep", 10*time.Millisecond)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Equal(t, -1, code)
	require.Nil(t, out)
}

func TestRunRemoteCommand_SessionError(t *testing.T) {
	out, code, err := runRemoteCommand(&fakeRunner{newErr: errors.New("no session")}, "cmd", 0)
	require.Error(t, err)
	require.Equal(t, -1, code)
	require.Nil(t, out)
}

func TestRunRemoteCommand_CommandErrorKeepsOutput(t *testing.T) {
	s := &fakeSession{out: []byte("bad command\n"), err: errors.New("boom")}
	out, code, err := runRemoteCommand(&fakeRunner{sess: s}, "cmd", 0)
	require.Error(t, err)
	require.Equal(t, -1, code)
	require.Equal(t, "bad command\n", string(out))
}
