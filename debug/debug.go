package debug

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
)

type debug struct {
	Keys     bool `env:"QS_DEBUG_KEYS"`
	Coerce   bool `env:"QS_DEBUG_COERCE"`
	Tree     bool `env:"QS_DEBUG_TREE"`
	Override bool `env:"QS_DEBUG_OVERRIDE"`
}

var d *debug

func init() {
	d = load()
}

func load() *debug {
	res := &debug{}
	err := envdecode.Decode(res)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		fmt.Fprintf(os.Stderr, "ignoring debug environment: %v\n", err)
		return &debug{}
	}
	return res
}

func Keys() bool {
	return d.Keys
}
func Coerce() bool {
	return d.Coerce
}
func Tree() bool {
	return d.Tree
}
func Override() bool {
	return d.Override
}
