// Package template declares the engine contract used to render field chrome
// (labels and error messages) from user-supplied partials. The gotemplate
// subpackage provides a pongo2 implementation.
package template
