package fixturego

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// MaxNameLen is the maximum number of bytes kept for an employee name.
// Names longer than this are truncated on construction.
const MaxNameLen = 49

// Employee is the fixed-shape record produced by the record fixture: a
// numeric identifier, a bounded name, and a salary amount. Records are
// immutable after construction.
type Employee struct {
	id     int
	name   string
	salary float64
}

// NewEmployee builds a record from the given fields and hands ownership to
// the caller. The name is truncated to at most MaxNameLen bytes; truncation
// never splits a UTF-8 sequence, so a valid name may come out shorter than
// MaxNameLen for multi-byte input. Input within the bound is stored
// verbatim, invalid UTF-8 included.
func NewEmployee(id int, name string, salary float64) *Employee {
	return &Employee{
		id:     id,
		name:   truncateName(name),
		salary: salary,
	}
}

// truncateName enforces the MaxNameLen bound, backing up to the nearest
// rune boundary so that no UTF-8 sequence is cut in half.
func truncateName(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	cut := MaxNameLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// ID returns the numeric identifier.
func (e *Employee) ID() int { return e.id }

// Name returns the stored, possibly truncated, name.
func (e *Employee) Name() string { return e.name }

// Salary returns the salary amount.
func (e *Employee) Salary() float64 { return e.salary }

// Fprint writes the record to w in its fixed three-line form:
//
//	Employee ID: 7
//	Name: Alice
//	Salary: 50000.50
//
// The salary always carries two decimal places. Fprint fails only when the
// writer does.
func (e *Employee) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Employee ID: %d\nName: %s\nSalary: %.2f\n", e.id, e.name, e.salary)
	return err
}

// Print writes the record to standard output.
func (e *Employee) Print() error {
	return e.Fprint(os.Stdout)
}
