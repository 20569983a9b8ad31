package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain re-execs this test binary as the "lainc" subprocess whenever a
// .txtar script runs `exec lainc ...`, the standard testscript pattern for
// driving a CLI's actual argv/exit-code/stdio contract without a separate
// `go build` step.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"lainc": main1,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
