package job

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a job failed. Each kind is local to one job;
// none of them aborts the batch.
type ErrorKind string

const (
	KindInputNotFound  ErrorKind = "input-not-found"
	KindOutputExists   ErrorKind = "output-exists"
	KindOutputConflict ErrorKind = "output-conflict"
	KindEngineSpawn    ErrorKind = "engine-spawn"
	KindEngineExit     ErrorKind = "engine-exit"
)

// Outcome records how one job ended. Successful outcomes carry the output
// path; failed outcomes carry an error kind and message. An Outcome is
// never mutated after creation.
type Outcome struct {
	Input      string
	OutputPath string
	Success    bool
	Kind       ErrorKind
	Message    string
}

// Succeeded creates a successful Outcome for input with its written output path.
func Succeeded(input, outputPath string) Outcome {
	return Outcome{Input: input, OutputPath: outputPath, Success: true}
}

// Failed creates a failed Outcome for input with its error classification.
func Failed(input string, kind ErrorKind, message string) Outcome {
	return Outcome{Input: input, Success: false, Kind: kind, Message: message}
}

// Validate checks that the Outcome is internally consistent: successful
// outcomes must have an output path and no error kind, failed outcomes must
// have a kind and a message.
func (o Outcome) Validate() error {
	if o.Success {
		if strings.TrimSpace(o.OutputPath) == "" {
			return errors.New("successful outcome must have an output path")
		}
		if o.Kind != "" {
			return fmt.Errorf("successful outcome must not carry error kind %q", o.Kind)
		}
		return nil
	}
	if o.Kind == "" {
		return errors.New("failed outcome must have an error kind")
	}
	if strings.TrimSpace(o.Message) == "" {
		return errors.New("failed outcome must have a message")
	}
	return nil
}

// BatchResult is the ordered sequence of outcomes for one batch run, one
// per input encountered, in input order.
type BatchResult []Outcome

// Failures returns the number of failed jobs.
func (r BatchResult) Failures() int {
	n := 0
	for _, o := range r {
		if !o.Success {
			n++
		}
	}
	return n
}

// ExitCode collapses the batch into the process exit status: 0 when every
// job succeeded, 1 when at least one failed. The code does not encode how
// many jobs failed.
func (r BatchResult) ExitCode() int {
	if r.Failures() > 0 {
		return 1
	}
	return 0
}
