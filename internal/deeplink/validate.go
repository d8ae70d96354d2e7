package deeplink

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/pkg/types"
)

// Field identifies which deep-link parameter a validation finding is
// about.
type Field string

const (
	FieldBranch   Field = "branch_id"
	FieldServices Field = "services"
	FieldDate     Field = "preferred_date"
	FieldTime     Field = "preferred_time"
	FieldPhone    Field = "customer_phone"
)

// Finding is one per-field validation failure with a message suitable
// for showing to the user.
type Finding struct {
	Field   Field
	Message string
}

// Context is the live reference data parameters are validated against.
type Context struct {
	Branches []domain.Branch // active branches
	Services []domain.Service
	Now      time.Time
}

// Result carries the per-field outcomes of validating one parameter
// set, plus the values that resolved successfully. Fields are checked
// independently of each other: a broken branch id does not suppress
// the date check, because the wizard resume algorithm needs the whole
// set of outcomes to find the furthest contiguous valid prefix.
type Result struct {
	Findings []Finding

	Branch     *domain.Branch
	ServiceIDs []int64
	Date       time.Time
	Time       types.TimeString
}

// Valid reports whether the named field produced no finding.
func (r *Result) Valid(field Field) bool {
	for _, f := range r.Findings {
		if f.Field == field {
			return false
		}
	}
	return true
}

// MessageFor returns the finding message for the named field, or "".
func (r *Result) MessageFor(field Field) string {
	for _, f := range r.Findings {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Messages returns every finding message in field order.
func (r *Result) Messages() []string {
	msgs := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// AddFinding records an extra failure for a field. The wizard-session
// layer uses it to fold slot-availability results into the same
// structure before computing the resume point.
func (r *Result) AddFinding(field Field, message string) {
	r.Findings = append(r.Findings, Finding{Field: field, Message: message})
}

// Validate checks decoded params against live reference data. Absent
// fields produce no finding; only present-but-unresolvable fields do.
func Validate(p *Params, ctx Context) *Result {
	result := &Result{}
	if p == nil {
		return result
	}

	validateBranch(p, ctx, result)
	validateServices(p, ctx, result)
	validateDate(p, ctx, result)
	validateTime(p, result)
	validatePhone(p, result)

	return result
}

func validateBranch(p *Params, ctx Context, result *Result) {
	if p.BranchID == "" {
		return
	}

	id, err := strconv.ParseInt(p.BranchID, 10, 64)
	if err != nil {
		result.AddFinding(FieldBranch, fmt.Sprintf("branch %q not recognized", p.BranchID))
		return
	}

	for i := range ctx.Branches {
		if ctx.Branches[i].ID == id && ctx.Branches[i].Active {
			result.Branch = &ctx.Branches[i]
			return
		}
	}
	result.AddFinding(FieldBranch, fmt.Sprintf("branch %q is not available", p.BranchID))
}

func validateServices(p *Params, ctx Context, result *Result) {
	if len(p.ServiceIDs) == 0 {
		return
	}

	resolved := make([]int64, 0, len(p.ServiceIDs))
	for _, raw := range p.ServiceIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || !serviceInCatalog(ctx.Services, id) {
			result.AddFinding(FieldServices, fmt.Sprintf("service %q is not offered", raw))
			return
		}
		resolved = append(resolved, id)
	}
	result.ServiceIDs = resolved
}

func serviceInCatalog(services []domain.Service, id int64) bool {
	for _, s := range services {
		if s.ID == id {
			return true
		}
	}
	return false
}

func validateDate(p *Params, ctx Context, result *Result) {
	if p.Date == "" {
		return
	}

	date, err := time.Parse(domain.DateFormat, p.Date)
	if err != nil {
		result.AddFinding(FieldDate, fmt.Sprintf("date %q is not a valid date", p.Date))
		return
	}

	today := time.Date(ctx.Now.Year(), ctx.Now.Month(), ctx.Now.Day(), 0, 0, 0, 0, ctx.Now.Location())
	if date.Before(today) {
		result.AddFinding(FieldDate, fmt.Sprintf("date %s is in the past", p.Date))
		return
	}

	// The closed-day rule needs a branch; when the branch field did not
	// resolve the date is judged on its own merits only.
	if result.Branch != nil && !result.Branch.IsOpenOn(date) {
		result.AddFinding(FieldDate, fmt.Sprintf("%s is closed on %s", result.Branch.Name, date.Weekday()))
		return
	}

	result.Date = date
}

func validateTime(p *Params, result *Result) {
	if p.Time == "" {
		return
	}

	t, err := types.NewTimeStringFromString(p.Time)
	if err != nil || !domain.IsCandidateSlotTime(t) {
		result.AddFinding(FieldTime, fmt.Sprintf("time %q is not a bookable slot time", p.Time))
		return
	}
	result.Time = t
}

func validatePhone(p *Params, result *Result) {
	if p.CustomerPhone == "" {
		return
	}

	digits := 0
	for _, r := range p.CustomerPhone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			result.AddFinding(FieldPhone, fmt.Sprintf("phone %q contains invalid characters", p.CustomerPhone))
			return
		}
	}
	if digits < 6 {
		result.AddFinding(FieldPhone, fmt.Sprintf("phone %q is too short", strings.TrimSpace(p.CustomerPhone)))
	}
}
