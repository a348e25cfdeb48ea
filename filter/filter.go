// Package filter compiles expr expressions for matching series, used by
// the list command. Expressions see the series under "Series", its tag
// labels under "Tags", and a set of helper functions:
//
//	Series.Year >= 2015 && Series.Network == "HBO"
//	hasTag("kids") && Series.Monitored
//	daysSince(Series.Added) > 365
//	contains(Series.Title, "star")
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arrtools/batcharr/sonarr"
)

// Filter is a compiled series filter expression
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles a filter expression
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty filter expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(staticEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a series. tagNames carries the
// labels of the series' tags, already resolved from their IDs.
func (f *Filter) Match(series sonarr.Series, tagNames []string) (bool, error) {
	env := staticEnv()
	env["Series"] = series
	env["Tags"] = tagNames
	env["hasTag"] = func(tag string) bool {
		for _, name := range tagNames {
			if strings.EqualFold(name, tag) {
				return true
			}
		}
		return false
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression:  f.expression,
			SeriesTitle: series.Title,
			Reason:      err.Error(),
			Err:         err,
		}
	}

	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression:  f.expression,
			SeriesTitle: series.Title,
			Reason:      "expression did not evaluate to a boolean",
		}
	}
	return matched, nil
}

// staticEnv returns the helper functions available in every expression.
func staticEnv() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t *time.Time) int {
			if t == nil {
				return 0
			}
			return int(time.Since(*t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		// Current time
		"now": time.Now,
		// Placeholders so compilation sees the names; Match rebinds them.
		"Series": sonarr.Series{},
		"Tags":   []string{},
		"hasTag": func(tag string) bool { return false },
	}
}
