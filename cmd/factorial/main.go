// Command factorial runs the numeric sample: it computes the factorial of
// its input and prints the result. With no flags the output matches
// testdata/golden/factorial.out byte for byte.
//
// Unlike the corpus fixture, which returns 1 for every input below 2, this
// binary rejects negative inputs and inputs whose factorial overflows int64.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/iamlongalong/fixturego"
)

func main() {
	n := flag.Int("n", 5, "value to compute the factorial of")
	flag.Parse()

	if err := run(os.Stdout, *n); err != nil {
		log.Fatalf("Failed to compute factorial: %v", err)
	}
}

func run(out io.Writer, n int) error {
	result, err := fixturego.FactorialChecked(n)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Factorial of %d is %d\n", n, result)
	return err
}
