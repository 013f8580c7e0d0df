package main

import "fmt"

const maxNameLen = 49

// Employee is a fixed-shape record: an identifier, a bounded name, and a
// salary amount.
type Employee struct {
	ID     int
	Name   string
	Salary float64
}

func newEmployee(id int, name string, salary float64) *Employee {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	return &Employee{ID: id, Name: name, Salary: salary}
}

func printEmployee(e *Employee) {
	fmt.Printf("Employee ID: %d\n", e.ID)
	fmt.Printf("Name: %s\n", e.Name)
	fmt.Printf("Salary: %.2f\n", e.Salary)
}

func main() {
	e := newEmployee(7, "Alice", 50000.5)
	printEmployee(e)
}
