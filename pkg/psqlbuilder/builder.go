// Package psqlbuilder предоставляет squirrel-билдеры, преднастроенные
// на формат плейсхолдеров PostgreSQL ($1, $2, ...).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT-билдер с плейсхолдерами $
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT-билдер с плейсхолдерами $
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update возвращает UPDATE-билдер с плейсхолдерами $
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE-билдер с плейсхолдерами $
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
