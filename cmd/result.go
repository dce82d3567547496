package cmd

import "time"

// deployStatus classifies the outcome of one target's deployment.
type deployStatus int

const (
	statusSuccess deployStatus = iota
	statusUploadFailed
	statusExecFailed
)

func (s deployStatus) String() string {
	switch s {
	case statusSuccess:
		return "uploaded and imported"
	case statusUploadFailed:
		return "upload failed"
	case statusExecFailed:
		return "import failed"
	default:
		return "unknown"
	}
}

// hostResult records the outcome of deploying the script to a single target.
type hostResult struct {
	Token    string // original, unparsed specifier
	Spec     hostSpec
	Status   deployStatus
	Err      error
	Output   []byte
	ExitCode int
	Duration time.Duration
}

// summary aggregates per-host results. Failed holds the original tokens in
// the order the targets were attempted; a token deployed twice and failing
// twice appears twice.
type summary struct {
	Total     int
	Succeeded int
	Failed    []string
}

func summarize(results []hostResult) summary {
	s := summary{Total: len(results)}
	for _, r := range results {
		if r.Status == statusSuccess {
			s.Succeeded++
			continue
		}
		s.Failed = append(s.Failed, r.Token)
	}
	return s
}
