// Package model holds the typed records returned by the repositories.
package model
