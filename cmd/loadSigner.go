package cmd

import (
	"errors"
	"os"

	"golang.org/x/crypto/ssh"
)

// loadSigner loads an unencrypted private key from path. Encrypted keys are
// rejected with a hint to use the agent, since the deployment runs in batch
// mode and never prompts for a passphrase.
func loadSigner(path string) (ssh.Signer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ssh.ParsePrivateKey(b)
	if err == nil {
		return s, nil
	}
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		return nil, errors.New("identity key is encrypted; load it into the ssh agent instead")
	}
	return nil, err
}
