// Package repository handles all interactions with the database.
//
// It contains the SQL for members, categories, networks and sessions.
// Every operation runs as one unit of work through database.Executor and
// decodes rows into model records with a typed row struct per query.
package repository
