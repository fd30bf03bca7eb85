package main

// See doc.go for documentation

import (
	"os"

	"github.com/grailbio/base/log"
	"github.com/grailbio/bio-basepair/basepair"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

func newCmdRoot() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bio-basepair",
		Short:    "Print flanked single-mismatch base pair labels",
		Long:     "Prints 24 labels such as GGGAGGG/CCCACCC, one per line, in two passes (G/C flanks, then A/T flanks).",
		LookPath: false,
	}
	cmd.Runner = cmdline.RunnerFunc(func(env *cmdline.Env, _ []string) error {
		p := basepair.NewPrinter(env.Stdout)
		if err := p.Run(); err != nil {
			return errors.Wrap(err, "bio-basepair")
		}
		log.Debug.Printf("bio-basepair: wrote %d lines", p.Lines())
		return nil
	})
	return cmd
}

// run executes the command in env. The command line is never parsed: arguments,
// flag-like or not, have no effect on the output.
func run(env *cmdline.Env, _ []string) error {
	return cmdline.ParseAndRun(newCmdRoot(), env, nil)
}

func main() {
	if err := run(cmdline.EnvFromOS(), os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
