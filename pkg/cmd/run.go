package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/lambdalang/lambda/pkg/ast"
	"github.com/lambdalang/lambda/pkg/source"
	"github.com/lambdalang/lambda/pkg/syntax"
	"github.com/lambdalang/lambda/pkg/types"
)

// run reads stdin and performs the selected terminal action, exiting the
// process non-zero on any error path per §7.
func run(act action) {
	buf, err := source.Read(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Debugf("read %d bytes from stdin", buf.Len())

	if act == actionTestSourceRead {
		fmt.Printf("%d %s\n", buf.Len(), buf.Bytes())
		return
	}

	prog, errs := syntax.ParseProgram(buf.Bytes())
	if len(errs) > 0 {
		log.Debugf("%d syntax error(s)", len(errs))

		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}

		os.Exit(1)
	}

	log.Debugf("parsed %d top-level expression(s)", len(prog))

	for i, e := range prog {
		prog[i] = ast.ToDeBruijn(e)
	}

	switch act {
	case actionUnparse:
		for _, e := range prog {
			fmt.Println(ast.Print(e))
		}
	case actionType:
		checker := types.NewChecker()
		checker.Infer(prog)

		for _, line := range checker.Arena().PrintAll() {
			fmt.Println(line)
		}
	}
}
