package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"mission-report-srv/internal/missionreport/repository"
)

const (
	statePublished = "published"
	stateCorrected = "corrected"
	stateKilled    = "killed"
	stateRecalled  = "recalled"

	resultsQCode = "results"
)

type whereClause struct {
	conds []string
	args  []any
}

// add appends cond with its placeholder number substituted for %d.
func (w *whereClause) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereClause) next() string {
	return fmt.Sprintf("$%d", len(w.args)+1)
}

func (w *whereClause) String() string {
	return strings.Join(w.conds, " AND ")
}

// buildWhere - Build the shared window, repository and exclusion filter.
func buildWhere(opts repository.AggregateOptions) *whereClause {
	w := &whereClause{}
	w.add("versioncreated >= $%d", opts.From)
	w.add("versioncreated < $%d", opts.To)
	w.add("repo = ANY($%d)", pq.Array(opts.Repos))

	exclusions := []struct {
		column string
		values []string
	}{
		{"category", opts.ExcludeCategories},
		{"genre", opts.ExcludeGenres},
		{"ingest_provider", opts.ExcludeIngestProviders},
		{"stage_id", opts.ExcludeStages},
	}
	for _, e := range exclusions {
		if len(e.values) == 0 {
			continue
		}
		w.add("("+e.column+" IS NULL OR NOT ("+e.column+" = ANY($%d)))", pq.Array(e.values))
	}
	return w
}

func buildCountsQuery(w *whereClause) (string, []any) {
	q := `SELECT COUNT(*),
	COUNT(*) FILTER (WHERE rewrite_of IS NULL AND state = 'published'),
	COUNT(*) FILTER (WHERE rewrite_of IS NOT NULL),
	COUNT(*) FILTER (WHERE sms_alert)
FROM published_items
WHERE ` + w.String()
	return q, w.args
}

func buildCategoriesQuery(w *whereClause, resultGenres []string) (string, []any) {
	q := `SELECT CASE WHEN genre = ANY(` + w.next() + `) THEN '` + resultsQCode + `' ELSE COALESCE(category, '') END AS qcode, COUNT(*)
FROM published_items
WHERE ` + w.String() + ` AND rewrite_of IS NULL AND state = '` + statePublished + `'
GROUP BY 1
ORDER BY 1`
	args := append(append([]any{}, w.args...), pq.Array(resultGenres))
	return q, args
}

func buildRecordsQuery(w *whereClause) (string, []any) {
	q := `SELECT state, versioncreated, updated, slugline, anpa_take_key, ednote, reasons
FROM published_items
WHERE ` + w.String() + ` AND state = ANY(` + w.next() + `)
ORDER BY versioncreated, id`
	args := append(append([]any{}, w.args...), pq.Array([]string{stateCorrected, stateKilled, stateRecalled}))
	return q, args
}
