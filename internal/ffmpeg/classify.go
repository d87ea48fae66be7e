package ffmpeg

import "regexp"

// Pre-compiled regexes for classifying engine stderr into short human
// hints. Checked in order by [Classify]; the first match wins. Hints only
// annotate a failure message, they never change how a job is classified.
var stderrHints = []struct {
	re   *regexp.Regexp
	hint string
}{
	{
		regexp.MustCompile(`Output file (?:#\d+ )?does not contain any stream`),
		"no streams left in output (both audio and video stripped?)",
	},
	{
		regexp.MustCompile(`Unknown encoder|Encoder not found`),
		"encoder not available in this engine build",
	},
	{
		regexp.MustCompile(`Invalid data found when processing input|moov atom not found`),
		"input is not valid media data",
	},
	{
		regexp.MustCompile(`(?i)Permission denied`),
		"permission denied",
	},
	{
		regexp.MustCompile(`No such file or directory`),
		"file or directory missing",
	},
	{
		regexp.MustCompile(`already exists\. Exiting\.|not overwriting`),
		"output exists and overwrite was refused",
	},
}

// Classify maps engine stderr to a one-line hint, or "" when no known
// pattern matches.
func Classify(stderr string) string {
	for _, h := range stderrHints {
		if h.re.MatchString(stderr) {
			return h.hint
		}
	}
	return ""
}
