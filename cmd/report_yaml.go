package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport is the top-level structure serialized when --report is given.
// It records what was deployed, when, the aggregate counts, and one entry
// per target in attempt order.
type yamlReport struct {
	Script    string       `yaml:"script"`
	Generated string       `yaml:"generated"`
	Targets   int          `yaml:"targets"`
	Succeeded int          `yaml:"succeeded"`
	Failed    int          `yaml:"failed"`
	Hosts     []yamlResult `yaml:"hosts"`
}

// yamlResult records the outcome for a single target.
type yamlResult struct {
	Target   string `yaml:"target"`
	User     string `yaml:"user"`
	Address  string `yaml:"address"`
	Status   string `yaml:"status"`
	ExitCode int    `yaml:"exit_code"`
	Error    string `yaml:"error,omitempty"`
	Output   string `yaml:"output,omitempty"`
	Duration string `yaml:"duration,omitempty"`
}

// newYAMLReport builds the report model from the per-host results.
func newYAMLReport(scriptPath string, results []hostResult) *yamlReport {
	sum := summarize(results)
	rep := &yamlReport{
		Script:    filepath.Base(scriptPath),
		Generated: time.Now().Format(time.RFC3339),
		Targets:   sum.Total,
		Succeeded: sum.Succeeded,
		Failed:    len(sum.Failed),
	}
	for _, r := range results {
		e := yamlResult{
			Target:   r.Token,
			User:     r.Spec.User,
			Address:  r.Spec.addr(),
			Status:   r.Status.String(),
			ExitCode: r.ExitCode,
			Output:   string(r.Output),
			Duration: r.Duration.Round(time.Millisecond).String(),
		}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		rep.Hosts = append(rep.Hosts, e)
	}
	return rep
}

// writeReport serializes the deployment report to path, creating parent
// directories as needed.
func writeReport(path, scriptPath string, results []hostResult) error {
	b, err := yaml.Marshal(newYAMLReport(scriptPath, results))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
