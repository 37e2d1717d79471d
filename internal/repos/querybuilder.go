package repos

import "strings"

// predicate is one (column, operator, value) filter clause. Values are
// always bound as parameters; only the column expression and operator are
// rendered into SQL.
type predicate struct {
	column string
	op     string
	value  any
}

// whereBuilder accumulates optional predicates and renders them into a
// parameterized WHERE clause. Predicates combine with AND only; an empty
// builder renders to an empty string.
type whereBuilder struct {
	preds []predicate
}

func (b *whereBuilder) Eq(column string, v any) *whereBuilder {
	b.preds = append(b.preds, predicate{column, "=", v})
	return b
}

func (b *whereBuilder) Gte(column string, v any) *whereBuilder {
	b.preds = append(b.preds, predicate{column, ">=", v})
	return b
}

func (b *whereBuilder) Lte(column string, v any) *whereBuilder {
	b.preds = append(b.preds, predicate{column, "<=", v})
	return b
}

// Render returns the WHERE clause (with leading space) and its bind args,
// or ("", nil) when no predicate was added.
func (b *whereBuilder) Render() (string, []any) {
	if len(b.preds) == 0 {
		return "", nil
	}
	clauses := make([]string, 0, len(b.preds))
	args := make([]any, 0, len(b.preds))
	for _, p := range b.preds {
		clauses = append(clauses, p.column+" "+p.op+" ?")
		args = append(args, p.value)
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
