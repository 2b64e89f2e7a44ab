// Package demo generates the sample datasets browsed by the interactive widgets.
package demo

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagerkit/internal/pagination"
)

// EmployeeCount is the size of the generated employee directory.
const EmployeeCount = 127

// JoinDateLayout formats join dates as month/day/year.
const JoinDateLayout = "1/2/2006"

const (
	baseSalary      = 50000
	salaryStep      = 1000
	salarySpread    = 20000
	salaryScrambler = 7919
	firstJoinYear   = 2020
	joinYears       = 4
	monthsPerYear   = 12
	joinDays        = 28
)

// Employee statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusPending  = "Pending"
)

//nolint:gochecknoglobals // Fixed vocabularies cycled by index.
var (
	departments = []string{"Engineering", "Marketing", "Sales", "HR", "Finance"}
	roles       = []string{"Manager", "Developer", "Designer", "Analyst", "Coordinator"}
	statuses    = []string{StatusActive, StatusInactive, StatusPending}
)

// Employee is one row of the directory.
type Employee struct {
	ID         int       `json:"id"          yaml:"id"`
	Name       string    `json:"name"        yaml:"name"`
	Email      string    `json:"email"       yaml:"email"`
	Department string    `json:"department"  yaml:"department"`
	Role       string    `json:"role"        yaml:"role"`
	Status     string    `json:"status"      yaml:"status"`
	JoinDate   time.Time `json:"join_date"   yaml:"join_date"`
	Salary     int       `json:"salary"      yaml:"salary"`
}

// JoinDateString renders the join date with JoinDateLayout.
func (e Employee) JoinDateString() string {
	return e.JoinDate.Format(JoinDateLayout)
}

// Matches reports whether term occurs, case-insensitively, in the name, email,
// department or role. An empty term matches everything.
func (e Employee) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{e.Name, e.Email, e.Department, e.Role} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Employees returns the deterministic sample directory.
func Employees() []Employee {
	out := make([]Employee, EmployeeCount)
	for i := range out {
		out[i] = Employee{
			ID:         i + 1,
			Name:       fmt.Sprintf("John Doe %d", i+1),
			Email:      fmt.Sprintf("user%d@company.com", i+1),
			Department: departments[i%len(departments)],
			Role:       roles[i%len(roles)],
			Status:     statuses[i%len(statuses)],
			JoinDate: time.Date(firstJoinYear+i%joinYears, time.Month(i%monthsPerYear+1), i%joinDays+1,
				0, 0, 0, 0, time.UTC),
			Salary: baseSalary + i*salaryStep + (i*salaryScrambler)%salarySpread,
		}
	}
	return out
}

// FilterEmployees returns the employees matching term, preserving order.
func FilterEmployees(employees []Employee, term string) []Employee {
	if term == "" {
		return employees
	}
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if e.Matches(term) {
			out = append(out, e)
		}
	}
	return out
}

// Sortable employee fields.
const (
	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldDepartment = "department"
	FieldRole       = "role"
	FieldStatus     = "status"
	FieldJoinDate   = "joinDate"
	FieldSalary     = "salary"
)

// NewEmployeeSorter returns a sorter over every directory column.
func NewEmployeeSorter() *pagination.Sorter[Employee] {
	return pagination.NewSorter(map[string]pagination.LessFunc[Employee]{
		FieldID:         func(a, b Employee) bool { return a.ID < b.ID },
		FieldName:       func(a, b Employee) bool { return a.Name < b.Name },
		FieldEmail:      func(a, b Employee) bool { return a.Email < b.Email },
		FieldDepartment: func(a, b Employee) bool { return a.Department < b.Department },
		FieldRole:       func(a, b Employee) bool { return a.Role < b.Role },
		FieldStatus:     func(a, b Employee) bool { return a.Status < b.Status },
		FieldJoinDate:   func(a, b Employee) bool { return a.JoinDate.Before(b.JoinDate) },
		FieldSalary:     func(a, b Employee) bool { return a.Salary < b.Salary },
	})
}

// SalaryFormatter renders salaries with locale digit grouping.
type SalaryFormatter struct {
	printer *message.Printer
}

// NewSalaryFormatter returns a formatter for English digit grouping ("$1,234").
func NewSalaryFormatter() SalaryFormatter {
	return SalaryFormatter{printer: message.NewPrinter(language.English)}
}

// Format renders amount as "$N,NNN".
func (f SalaryFormatter) Format(amount int) string {
	return f.printer.Sprintf("$%d", amount)
}
