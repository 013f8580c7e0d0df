// Command employee runs the record-construction sample: it builds one
// employee record and prints it in the fixed three-line form. With no flags
// the output matches testdata/golden/employee.out byte for byte.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/iamlongalong/fixturego"
)

func main() {
	id := flag.Int("id", 7, "employee identifier")
	name := flag.String("name", "Alice", "employee name (truncated to the fixed bound)")
	salary := flag.Float64("salary", 50000.5, "employee salary")
	flag.Parse()

	if err := run(os.Stdout, *id, *name, *salary); err != nil {
		log.Fatalf("Failed to print employee: %v", err)
	}
}

func run(out io.Writer, id int, name string, salary float64) error {
	return fixturego.NewEmployee(id, name, salary).Fprint(out)
}
