package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadHosts reads the hosts list file and returns the target tokens in file
// order. A "#" starts a comment (whole-line or trailing), surrounding
// whitespace is stripped, and blank lines are skipped. Duplicates are kept
// so every listed entry is deployed to. An empty result is an error: a hosts
// file that names nothing is almost certainly an operator mistake.
func loadHosts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hosts file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var tokens []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("hosts file: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("hosts file %s contains no usable entries", path)
	}
	return tokens, nil
}
