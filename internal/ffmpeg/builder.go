package ffmpeg

import "github.com/thmsn/ffrenc/internal/job"

// Fixed encode policy. Video is transcoded to h264 at a visually lossless
// CRF with the fastest preset; audio is copied without re-encoding.
const (
	videoCodec  = "libx264"
	videoCRF    = "18"
	videoPreset = "ultrafast"
)

// Build constructs the complete engine argument vector for one job, with
// the binary at index 0. It is pure and has no failure mode at this layer:
// degenerate combinations (both streams stripped) are expressed unchanged
// and surfaced later by the engine itself.
//
// Argument order: preamble, input, video section, audio section, container
// options, overwrite policy, the job's verbatim extra arguments, and the
// resolved output path last — so user flags can still influence encoding
// but cannot accidentally override the destination.
func Build(bin string, spec job.Spec, outputPath string) []string {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, bin, "-hide_banner", "-nostdin")

	// --- Input ---
	args = append(args, "-i", spec.Input)

	// --- Video ---
	if spec.StripVideo {
		args = append(args, "-vn")
	} else {
		args = append(args,
			"-c:v", videoCodec,
			"-crf", videoCRF,
			"-preset", videoPreset,
		)
	}

	// --- Audio ---
	if spec.StripAudio {
		args = append(args, "-an")
	} else {
		args = append(args, "-c:a", "copy")
	}

	// --- Container opts ---
	args = append(args,
		"-movflags", "+frag_keyframe+empty_moov",
		"-f", "mp4",
	)

	// --- Overwrite policy ---
	// The driver checks output existence before spawning; -n is a backstop
	// so the engine and the pre-check can never disagree about the target.
	if spec.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}

	// --- User passthrough ---
	args = append(args, spec.ExtraArgs...)

	// --- Output ---
	args = append(args, outputPath)

	return args
}
