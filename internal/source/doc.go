// Package source gathers the YAML inputs a lint run validates.
//
// Inputs come from explicit file paths, recursively walked directories,
// the files a git work tree reports as changed, or standard input. Every
// input becomes a Source carrying either its content or the error that
// prevented reading it, so one unreadable file never aborts a run.
package source
