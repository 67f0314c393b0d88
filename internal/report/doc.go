// Package report renders lint results as text or JSON.
//
// Formatters are pure: they build the report string and leave writing it
// to the caller.
package report
