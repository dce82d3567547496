package cmd

import (
	"context"
	"fmt"
	"os"

	scp "github.com/bramvdbogaerde/go-scp"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

// uploadScript copies the local script to remoteName on the device over the
// already-established SSH connection. The remote path is just the base name,
// which lands the file in the device's default file store where /import can
// find it.
func uploadScript(client *ssh.Client, localPath, remoteName string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	scpClient, err := scp.NewClientBySSH(client)
	if err != nil {
		return fmt.Errorf("scp client: %w", err)
	}
	defer scpClient.Close()

	logrus.Debugf("uploading %s as %s", localPath, remoteName)
	if err := scpClient.CopyFromFile(context.Background(), *f, remoteName, "0644"); err != nil {
		return fmt.Errorf("scp upload: %w", err)
	}
	return nil
}
