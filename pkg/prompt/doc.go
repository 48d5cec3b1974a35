// Package prompt fills a definition.Set interactively. Each field is asked
// through a Driver and validated as soon as it is answered, against the
// answers collected so far.
package prompt
