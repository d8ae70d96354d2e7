package deeplink

import (
	"net/url"
	"strings"
)

// Query parameter keys recognized by the codec. Anything else in a
// query string is ignored.
const (
	KeyBranchID      = "branch_id"
	KeyServices      = "services"
	KeyPreferredDate = "preferred_date"
	KeyPreferredTime = "preferred_time"
	KeyCustomerName  = "customer_name"
	KeyCustomerPhone = "customer_phone"
	KeySource        = "source"
)

// SourceWhatsApp marks arrival from the WhatsApp bot. The marker is
// informational only; it triggers a banner in the client and nothing
// else.
const SourceWhatsApp = "wa"

// Params is the subset of wizard form state that travels in a URL.
// Values are kept as the raw strings supplied in the query so that
// validation can tell "absent" apart from "present but unresolvable";
// resolution against live reference data happens in Validate.
type Params struct {
	BranchID      string
	ServiceIDs    []string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	CustomerName  string
	CustomerPhone string
	Source        string
}

// IsEmpty returns true when no field is set.
func (p *Params) IsEmpty() bool {
	return p.BranchID == "" &&
		len(p.ServiceIDs) == 0 &&
		p.Date == "" &&
		p.Time == "" &&
		p.CustomerName == "" &&
		p.CustomerPhone == "" &&
		p.Source == ""
}

// Encode serializes params into a URL query string. Only present,
// non-empty fields are written; absent fields are omitted entirely.
// Encode and Decode round-trip: Decode(Encode(p)) equals p for any
// valid p.
func Encode(p Params) string {
	values := url.Values{}

	if p.BranchID != "" {
		values.Set(KeyBranchID, p.BranchID)
	}
	if ids := joinNonEmpty(p.ServiceIDs); ids != "" {
		values.Set(KeyServices, ids)
	}
	if p.Date != "" {
		values.Set(KeyPreferredDate, p.Date)
	}
	if p.Time != "" {
		values.Set(KeyPreferredTime, p.Time)
	}
	if p.CustomerName != "" {
		values.Set(KeyCustomerName, p.CustomerName)
	}
	if p.CustomerPhone != "" {
		values.Set(KeyCustomerPhone, p.CustomerPhone)
	}
	if p.Source != "" {
		values.Set(KeySource, p.Source)
	}

	return values.Encode()
}

// Decode parses a query string into Params. It returns nil when the
// query carries none of the recognized keys, distinguishing "no
// booking intent" from "an intent with errors". Unrecognized keys are
// ignored, never errors.
func Decode(query string) *Params {
	// ParseQuery keeps every pair it could parse alongside the first
	// error, so one malformed pair does not discard the rest of the
	// link's intent.
	values, _ := url.ParseQuery(query)

	p := Params{
		BranchID:      values.Get(KeyBranchID),
		ServiceIDs:    splitServiceIDs(values[KeyServices]),
		Date:          values.Get(KeyPreferredDate),
		Time:          values.Get(KeyPreferredTime),
		CustomerName:  values.Get(KeyCustomerName),
		CustomerPhone: values.Get(KeyCustomerPhone),
		Source:        values.Get(KeySource),
	}

	if p.IsEmpty() {
		return nil
	}
	return &p
}

// splitServiceIDs accepts both encodings the original links use:
// comma-separated ("services=1,2") and repeated keys
// ("services=1&services=2").
func splitServiceIDs(raw []string) []string {
	var ids []string
	for _, entry := range raw {
		for _, id := range strings.Split(entry, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func joinNonEmpty(ids []string) string {
	var kept []string
	for _, id := range ids {
		if id != "" {
			kept = append(kept, id)
		}
	}
	return strings.Join(kept, ",")
}
