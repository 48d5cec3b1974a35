package openapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/definition"
)

const extensionKey = "x-formfield"

var (
	// ErrOperationNotFound is returned when no operation has the requested id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestBody is returned when the operation has no object request body.
	ErrNoRequestBody = errors.New("openapi: operation has no object request body")
)

var mediaTypes = []string{"application/x-www-form-urlencoded", "multipart/form-data", "application/json"}

var methods = []string{
	http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete,
	http.MethodPatch, http.MethodHead, http.MethodOptions, http.MethodTrace,
}

type operation struct {
	id     string
	title  string
	schema *openapi3.Schema
}

// Forms returns a form for every operation with an object request body,
// sorted by id.
func Forms(ctx context.Context, raw []byte) ([]definition.Form, error) {
	operations, err := parse(ctx, raw)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(operations))
	for id, op := range operations {
		if op.schema != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	forms := make([]definition.Form, 0, len(ids))
	for _, id := range ids {
		form, err := formFor(operations[id])
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// Fields returns the form derived from the request body of operationID.
func Fields(ctx context.Context, raw []byte, operationID string) (definition.Form, error) {
	operations, err := parse(ctx, raw)
	if err != nil {
		return definition.Form{}, err
	}
	op, ok := operations[operationID]
	if !ok {
		return definition.Form{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	if op.schema == nil {
		return definition.Form{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operationID)
	}
	return formFor(op)
}

func parse(ctx context.Context, raw []byte) (map[string]operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operations := make(map[string]operation)
	if doc.Paths == nil {
		return operations, nil
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, method := range methods {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			title := op.Summary
			operations[id] = operation{id: id, title: title, schema: requestSchema(op.RequestBody)}
		}
	}
	return operations, nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range mediaTypes {
		if mt := content.Get(mediaType); mt != nil && isObject(mt.Schema) {
			return mt.Schema.Value
		}
	}
	return nil
}

func isObject(ref *openapi3.SchemaRef) bool {
	if ref == nil || ref.Value == nil {
		return false
	}
	return ref.Value.Type.Is(openapi3.TypeObject) || len(ref.Value.Properties) > 0
}

func formFor(op operation) (definition.Form, error) {
	form := definition.Form{ID: op.id, Title: op.title}

	names := make([]string, 0, len(op.schema.Properties))
	for name := range op.schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := make(map[string]bool, len(op.schema.Required))
	for _, name := range op.schema.Required {
		required[name] = true
	}

	for _, name := range names {
		entry, ok := fieldEntry(name, op.schema.Properties[name], required[name])
		if !ok {
			continue
		}
		cfg, err := definition.ParseField(entry)
		if err != nil {
			return definition.Form{}, fmt.Errorf("openapi: operation %q property %q: %w", op.id, name, err)
		}
		form.Fields = append(form.Fields, cfg)
	}
	return form, nil
}

// fieldEntry builds a definition entry for a property. Object, array and
// read-only properties have no field.
func fieldEntry(name string, ref *openapi3.SchemaRef, required bool) (map[string]any, bool) {
	if ref == nil || ref.Value == nil {
		return nil, false
	}
	schema := ref.Value
	if schema.ReadOnly {
		return nil, false
	}

	fieldType, ok := typeFor(schema)
	if !ok {
		return nil, false
	}

	entry := map[string]any{"id": name, "type": fieldType}
	if required {
		entry["required"] = true
	}
	if schema.Title != "" {
		entry["label"] = schema.Title
	}
	if schema.Description != "" {
		entry["placeholder"] = schema.Description
	}
	if schema.Default != nil {
		entry["value"] = schema.Default
	}
	if schema.MinLength > 0 {
		entry["minlength"] = int(schema.MinLength)
	}
	if schema.MaxLength != nil {
		entry["maxlength"] = int(*schema.MaxLength)
	}
	if schema.Pattern != "" {
		entry["pattern"] = schema.Pattern
	}
	if fieldType == "number" {
		if schema.Min != nil {
			entry["min"] = *schema.Min
		}
		if schema.Max != nil {
			entry["max"] = *schema.Max
		}
		if schema.MultipleOf != nil {
			entry["step"] = *schema.MultipleOf
		}
	}
	if len(schema.Enum) > 0 {
		entry["choices"] = append([]any(nil), schema.Enum...)
	}

	if ext, ok := schema.Extensions[extensionKey].(map[string]any); ok {
		for key, value := range ext {
			entry[definition.CanonicalKey(key)] = value
		}
	}
	return entry, true
}

func typeFor(schema *openapi3.Schema) (string, bool) {
	switch {
	case len(schema.Enum) > 0:
		return "select", true
	case schema.Type.Is(openapi3.TypeBoolean):
		return "checkbox", true
	case schema.Type.Is(openapi3.TypeInteger), schema.Type.Is(openapi3.TypeNumber):
		return "number", true
	case schema.Type.Is(openapi3.TypeString):
		switch schema.Format {
		case "email":
			return "email", true
		case "uri", "url":
			return "url", true
		case "date":
			return "date", true
		case "date-time":
			return "datetime-local", true
		case "time":
			return "time", true
		case "password":
			return "password", true
		case "binary":
			return "file", true
		}
		return "text", true
	default:
		return "", false
	}
}
