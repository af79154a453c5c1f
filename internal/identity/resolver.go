package identity

import (
	"log/slog"
	"strings"
	"time"

	"filings/internal/logging"
	"filings/internal/record"
)

// Action types assigned to records during resolution and reconciliation.
const (
	ActionInsert   = "INSERT"
	ActionUpdate   = "UPDATE"
	ActionNoChange = "NO_CHANGE"
)

// placeholderNames are candidate_name values that encode "no candidate
// filed" rather than an actual person. Matching is case-insensitive.
var placeholderNames = []string{
	"nan", "none", "null",
	"no nominations", "no nomination",
	"vacant", "unopposed",
	"write-in", "write in", "writein",
	"no candidate", "no candidates",
	"no candidate filed", "no candidates filed",
	"no filing", "no filings",
}

var placeholderSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(placeholderNames))
	for _, name := range placeholderNames {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}()

// IsPlaceholderName reports whether a candidate_name value is a known
// "no candidate filed" placeholder.
func IsPlaceholderName(name string) bool {
	_, ok := placeholderSet[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Resolver assigns stable identities to structured records (Phase 2).
type Resolver struct {
	session *Session
	logger  *slog.Logger
}

// NewResolver builds a resolver bound to the given session.
func NewResolver(session *Session, logger *slog.Logger) *Resolver {
	if session == nil {
		session = NewSession()
	}
	return &Resolver{
		session: session,
		logger:  logging.NewComponentLogger(logger, "identity"),
	}
}

// Session exposes the resolver's session for diagnostics.
func (r *Resolver) Session() *Session {
	return r.session
}

// Resolve filters out records lacking the minimum identity-bearing fields
// and augments every surviving row with stable_id, first_added_date, a null
// last_updated_date, and a default INSERT action_type. The election_year
// value on each row is coerced to a plain 4-digit string. Invalid rows are
// dropped, never erred, so one bad row cannot abort a state's batch.
func (r *Resolver) Resolve(state string, table *record.Table) (*record.Table, error) {
	log := r.logger.With(logging.String(logging.FieldState, state))

	out := record.New(table.Columns...)
	out.EnsureColumns(record.IdentityColumns...)

	filtered := 0
	for _, row := range table.Rows {
		name := record.TrimString(row[record.ColCandidateName])
		office := record.TrimString(row[record.ColOffice])
		year := record.YearString(row[record.ColElectionYear])

		if name == "" || office == "" || !isYear(year) ||
			IsPlaceholderName(name) || isNullWord(office) {
			filtered++
			continue
		}

		id := StableID(name, state, office, year)
		first := r.session.Observe(id)

		resolved := row.Clone()
		resolved[record.ColElectionYear] = year
		resolved[record.ColStableID] = id
		resolved[record.ColFirstAddedDate] = first.UTC().Format(time.RFC3339)
		resolved[record.ColLastUpdatedDate] = nil
		resolved[record.ColActionType] = ActionInsert
		out.Append(resolved)
	}

	if filtered > 0 {
		log.Warn("dropped records with missing critical data",
			logging.Args(logging.Int("dropped", filtered), logging.Int(logging.FieldRows, out.Len()))...)
	}
	log.Info("identity resolution complete",
		logging.Args(logging.Int(logging.FieldRows, out.Len()))...)
	return out, nil
}

// isYear accepts only plain 4-digit year strings; anything else is an
// unparseable year and a validation failure for the row.
func isYear(value string) bool {
	if len(value) != 4 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isNullWord(value string) bool {
	switch strings.ToLower(value) {
	case "nan", "none", "null":
		return true
	}
	return false
}
