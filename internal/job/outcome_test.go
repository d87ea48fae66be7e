package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpec_AssignsUniqueIDs(t *testing.T) {
	a := NewSpec("a.mkv", "", false, false, false, nil)
	b := NewSpec("b.mkv", "", false, false, false, nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "a.mkv", a.Input)
}

func TestOutcomeValidate(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		wantErr bool
	}{
		{"valid success", Succeeded("in.mkv", "in.renc.mp4"), false},
		{"valid failure", Failed("in.mkv", KindEngineExit, "exit status 1"), false},
		{"success without output", Outcome{Input: "in.mkv", Success: true}, true},
		{"success with kind", Outcome{Input: "in.mkv", Success: true, OutputPath: "x", Kind: KindEngineExit}, true},
		{"failure without kind", Outcome{Input: "in.mkv"}, true},
		{"failure without message", Outcome{Input: "in.mkv", Kind: KindInputNotFound}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBatchResultExitCode(t *testing.T) {
	ok := Succeeded("a.mkv", "a.renc.mp4")
	bad := Failed("b.mkv", KindInputNotFound, "no such file")

	assert.Equal(t, 0, BatchResult{}.ExitCode())
	assert.Equal(t, 0, BatchResult{ok, ok}.ExitCode())
	assert.Equal(t, 1, BatchResult{ok, bad, ok}.ExitCode())
	// One bit of information: the code is the same however many jobs fail.
	assert.Equal(t, BatchResult{bad}.ExitCode(), BatchResult{bad, bad, bad}.ExitCode())
}

func TestBatchResultFailures(t *testing.T) {
	ok := Succeeded("a.mkv", "a.renc.mp4")
	bad := Failed("b.mkv", KindOutputExists, "already exists")
	r := BatchResult{ok, bad, ok, bad}
	assert.Equal(t, 2, r.Failures())
}
