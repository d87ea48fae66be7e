// Package job defines the unit of work (one input file transcoded to one
// output file) and its outcome types.
package job

import "github.com/google/uuid"

// Spec is the resolved configuration for one file. It is immutable once
// constructed; the output resolver and the command builder are pure
// functions over it.
type Spec struct {
	// ID identifies the job in verbose logs and JSON progress records.
	ID string

	// Input is the source file path.
	Input string

	// OutputTemplate is the user-supplied output template with {SLUG}
	// substitution. Empty means the built-in default applies.
	OutputTemplate string

	// StripAudio and StripVideo drop the corresponding streams. Both set
	// is a degenerate but representable job; the engine reports it.
	StripAudio bool
	StripVideo bool

	// Overwrite allows replacing an existing output file.
	Overwrite bool

	// ExtraArgs are opaque engine arguments appended verbatim after the
	// tool's own flags and before the output path.
	ExtraArgs []string
}

// NewSpec builds a Spec for one input path, assigning a fresh job ID.
func NewSpec(input, outputTemplate string, stripAudio, stripVideo, overwrite bool, extraArgs []string) Spec {
	return Spec{
		ID:             uuid.NewString(),
		Input:          input,
		OutputTemplate: outputTemplate,
		StripAudio:     stripAudio,
		StripVideo:     stripVideo,
		Overwrite:      overwrite,
		ExtraArgs:      extraArgs,
	}
}
