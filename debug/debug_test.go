package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/structq/ir"
)

func TestLoad(t *testing.T) {
	t.Setenv("QS_DEBUG_KEYS", "true")
	t.Setenv("QS_DEBUG_TREE", "1")
	got := load()
	if !got.Keys || !got.Tree {
		t.Errorf("expected keys and tree flags, got %+v", got)
	}
	if got.Coerce || got.Override {
		t.Errorf("unexpected flags set: %+v", got)
	}
}

func TestLoadBadValue(t *testing.T) {
	t.Setenv("QS_DEBUG_COERCE", "sometimes")
	got := load()
	if *got != (debug{}) {
		t.Errorf("expected zero flags on bad environment, got %+v", got)
	}
}

func TestLogfNode(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	Logf("value %v\n", node)
	if got := buf.String(); !strings.Contains(got, `{"a":1}`) {
		t.Errorf("unexpected log output %q", got)
	}
}
