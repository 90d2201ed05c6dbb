// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes and driver failures from pgx and classifies
// them into errs.Kind values (conflict, not found, connection failure),
// keeping the structured Postgres details around for logging.
package sqlerr
