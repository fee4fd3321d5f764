package domain

import (
	"fmt"
	"time"
)

// KindEmployee is the aggregate-counter kind for employees; their EmployeeKind
// is the discriminant.
const KindEmployee = "employee"

// EmployeeKind selects the specialized behavior of an employee. A shared
// record plus a kind tag stands in for a type hierarchy.
type EmployeeKind string

const (
	KindDeveloper EmployeeKind = "developer"
	KindManager   EmployeeKind = "manager"
)

// Employee holds the fields common to every employee plus the kind-specific
// ones. Language is set for developers, Department and the team for managers.
type Employee struct {
	Name        string       `json:"name"`
	ID          string       `json:"id"`
	SalaryCents int64        `json:"salary_cents"`
	HiredAt     time.Time    `json:"hired_at"`
	Kind        EmployeeKind `json:"kind"`

	Language   string `json:"language,omitempty"`
	Department string `json:"department,omitempty"`

	team []*Employee
}

// NewDeveloper hires a developer with a primary language.
func NewDeveloper(name, id string, salaryCents int64, language string) *Employee {
	return &Employee{
		Name:        name,
		ID:          id,
		SalaryCents: salaryCents,
		HiredAt:     time.Now(),
		Kind:        KindDeveloper,
		Language:    language,
	}
}

// NewManager hires a manager for a department.
func NewManager(name, id string, salaryCents int64, department string) *Employee {
	return &Employee{
		Name:        name,
		ID:          id,
		SalaryCents: salaryCents,
		HiredAt:     time.Now(),
		Kind:        KindManager,
		Department:  department,
	}
}

// Work describes what the employee is doing, per kind.
func (e *Employee) Work() string {
	switch e.Kind {
	case KindDeveloper:
		return fmt.Sprintf("%s is developing software using %s", e.Name, e.Language)
	case KindManager:
		return fmt.Sprintf("%s is managing the %s department", e.Name, e.Department)
	default:
		return fmt.Sprintf("%s is working", e.Name)
	}
}

// AddTeamMember adds member to a manager's team; other kinds reject.
func (e *Employee) AddTeamMember(member *Employee) error {
	if e.Kind != KindManager {
		return ErrNotManager
	}
	e.team = append(e.team, member)
	return nil
}

// TeamSize returns the number of direct reports.
func (e *Employee) TeamSize() int { return len(e.team) }

// ConductMeeting describes a team meeting; only managers hold them.
func (e *Employee) ConductMeeting() (string, error) {
	if e.Kind != KindManager {
		return "", ErrNotManager
	}
	return fmt.Sprintf("%s is conducting a team meeting with %d members", e.Name, len(e.team)), nil
}
