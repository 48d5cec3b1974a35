package commands

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/field"
)

// Flags holds the global flag values.
type Flags struct {
	LogLevel     string
	LogFile      string
	Definitions  string
	OpenAPI      string
	Lang         string
	ThemeFile    string
	ThemeVariant string
	Templates    string
}

// App is built in the Before hook and shared by every command.
type App struct {
	Store  *definition.Store
	Render field.RenderOptions
	Logger zerolog.Logger
}
