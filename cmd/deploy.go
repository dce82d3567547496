package cmd

import (
	"fmt"
	"path/filepath"
	"time"
)

// deployHost performs the full sequence for one target: connect, upload the
// script, then import and remove it in a single remote invocation. The
// sequencing is fail-closed: a failed connect or upload returns immediately
// and the import is never attempted. Nothing is retried; one attempt per
// stage per target.
func deployHost(h hostSpec, token, scriptPath string, connTimeout, cmdTimeout time.Duration, identity, knownHostsPath string) hostResult {
	res := hostResult{Token: token, Spec: h, ExitCode: -1}
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	client, err := dialSSHFunc(h.addr(), h.User, identity, knownHostsPath, connTimeout)
	if err != nil {
		res.Status = statusUploadFailed
		res.Err = fmt.Errorf("connect: %w", err)
		return res
	}
	defer func() {
		if client != nil {
			_ = client.Close()
		}
	}()

	remoteName := filepath.Base(scriptPath)
	if err := uploadScriptFunc(client, scriptPath, remoteName); err != nil {
		res.Status = statusUploadFailed
		res.Err = err
		return res
	}

	out, code, err := runRemoteCommandFunc(sshRunner{client}, importCommand(remoteName), cmdTimeout)
	res.Output = out
	res.ExitCode = code
	if err != nil {
		// Import and removal share one invocation, so the script may
		// still be present on the device after this failure.
		res.Status = statusExecFailed
		res.Err = fmt.Errorf("import: %w", err)
		return res
	}
	if code != 0 {
		res.Status = statusExecFailed
		res.Err = fmt.Errorf("import: exit status %d", code)
		return res
	}

	res.Status = statusSuccess
	return res
}
