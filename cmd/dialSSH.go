package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// dialSSH establishes an SSH client connection to addr as user. The
// connection is non-interactive: authentication comes from the optional
// identity file and from any keys held by the ambient ssh agent, and host
// keys follow the accept-new policy against knownHostsPath. dialTimeout
// bounds connection establishment only, never the remote command.
func dialSSH(addr, user, keyPath, knownHostsPath string, dialTimeout time.Duration) (*ssh.Client, error) {
	var auths []ssh.AuthMethod

	if keyPath != "" {
		signer, err := loadSigner(keyPath)
		if err != nil {
			return nil, fmt.Errorf("load identity: %w", err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	// Try SSH agent if available
	if sock := os.Getenv("SSH_AUTH_SOCK"); sock != "" {
		if conn, err := net.Dial("unix", sock); err == nil {
			auths = append(auths, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		}
	}

	if len(auths) == 0 {
		return nil, errors.New("no authentication available: provide --identity or load a key into the ssh agent")
	}

	hostKeyCB, err := acceptNewHostKey(knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("known_hosts: %w", err)
	}

	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         dialTimeout,
	}

	logrus.Debugf("dialing %s as %s (timeout %s)", addr, user, dialTimeout)

	// Use explicit net.Dialer for connection timeout
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}
