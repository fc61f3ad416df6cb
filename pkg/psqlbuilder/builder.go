// Package psqlbuilder возвращает squirrel-билдеры с плейсхолдерами PostgreSQL ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}

// Quote заключает идентификатор в двойные кавычки
// Нужно для колонок в camelCase ("PNR", "buyingPrice", "IssueDay")
func Quote(identifier string) string {
	return `"` + identifier + `"`
}

// QuoteAll заключает в кавычки все идентификаторы
func QuoteAll(identifiers []string) []string {
	out := make([]string, len(identifiers))
	for i, id := range identifiers {
		out[i] = Quote(id)
	}
	return out
}
