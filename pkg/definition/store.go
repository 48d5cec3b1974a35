package definition

import (
	"fmt"
	"io/fs"
	"sort"
)

// Store holds the forms loaded from a set of definition files. It is
// read-only once loaded.
type Store struct {
	forms map[string]Form
	sets  map[string]*Set
}

// LoadFS walks fsys and loads every .json, .yaml, .yml and .toml file. Other
// files are skipped. Form ids must be unique across files and every field must
// build.
func LoadFS(fsys fs.FS, opts ...Option) (*Store, error) {
	o := newOptions(opts)
	store := &Store{
		forms: make(map[string]Form),
		sets:  make(map[string]*Set),
	}
	origin := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		format, ok := FormatFor(path)
		if !ok {
			o.logger.Debug().Str("file", path).Msg("skipping non-definition file")
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		forms, err := Parse(data, format)
		if err != nil {
			return fmt.Errorf("definition: %s: %w", path, err)
		}

		for _, form := range forms {
			if first, exists := origin[form.ID]; exists {
				return fmt.Errorf("%w: %q in %s and %s", ErrDuplicateForm, form.ID, first, path)
			}
			set, err := NewSet(form, opts...)
			if err != nil {
				return fmt.Errorf("definition: %s: %w", path, err)
			}
			origin[form.ID] = path
			store.forms[form.ID] = form
			store.sets[form.ID] = set
		}
		o.logger.Debug().Str("file", path).Int("forms", len(forms)).Msg("loaded definitions")
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info().Int("forms", len(store.forms)).Msg("definitions ready")
	return store, nil
}

// Add registers form, for forms built in code or imported from elsewhere.
func (s *Store) Add(form Form, opts ...Option) error {
	if _, exists := s.forms[form.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateForm, form.ID)
	}
	set, err := NewSet(form, opts...)
	if err != nil {
		return err
	}
	if s.forms == nil {
		s.forms = make(map[string]Form)
		s.sets = make(map[string]*Set)
	}
	s.forms[form.ID] = form
	s.sets[form.ID] = set
	return nil
}

// IDs returns the loaded form ids, sorted.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Form returns the declaration of form id.
func (s *Store) Form(id string) (Form, bool) {
	form, ok := s.forms[id]
	return form, ok
}

// Set returns the built field set of form id.
func (s *Store) Set(id string) (*Set, error) {
	set, ok := s.sets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormNotFound, id)
	}
	return set, nil
}
