package cmd

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh/agent"
)

// describeAgentKey returns a one-line description of the keys held by the
// ambient ssh agent, or "" when no agent is reachable or it holds no keys.
// The result is informational only; authentication uses the agent directly.
func describeAgentKey() string {
	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return ""
	}
	conn, err := net.Dial("unix", sock)
	if err != nil {
		return ""
	}
	defer func() { _ = conn.Close() }()

	keys, err := agent.NewClient(conn).List()
	if err != nil || len(keys) == 0 {
		return ""
	}
	k := keys[0]
	if len(keys) == 1 {
		return fmt.Sprintf("%s %s", k.Format, k.Comment)
	}
	return fmt.Sprintf("%s %s (+%d more)", k.Format, k.Comment, len(keys)-1)
}
