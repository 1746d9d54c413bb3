package sheet

// Session carries the "currently selected spreadsheet" pointer for one
// user session. The store itself is selection-free; every operation that
// may omit its target goes through Resolve.
type Session struct {
	Store   *Store
	current string
}

func NewSession(store *Store) *Session {
	return &Session{Store: store}
}

// Current returns the selected sanitized table name, or "".
func (s *Session) Current() string {
	return s.current
}

// Resolve maps an optional user-facing target to a sanitized table name.
// An empty explicit target falls back to the current selection; with
// neither available the operation cannot proceed.
func (s *Session) Resolve(explicit string) (string, error) {
	if explicit == "" {
		if s.current == "" {
			return "", ErrNoSelection
		}
		return s.current, nil
	}

	table := Sanitize(explicit)
	exists, err := s.Store.Exists(table)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", &NotFoundError{Kind: "spreadsheet", Name: table}
	}
	return table, nil
}

// Use switches the selection to an existing spreadsheet.
func (s *Session) Use(name string) (string, error) {
	table, err := s.Resolve(name)
	if err != nil {
		return "", err
	}
	s.current = table
	return table, nil
}

// Create makes a new spreadsheet and selects it.
func (s *Session) Create(name string, columns []string) (string, []string, error) {
	table, cols, err := s.Store.Create(name, columns)
	if err != nil {
		return "", nil, err
	}
	s.current = table
	return table, cols, nil
}

// Drop deletes a spreadsheet; if it was selected the selection clears and
// subsequent unqualified operations fail with ErrNoSelection.
func (s *Session) Drop(name string) error {
	table := Sanitize(name)
	if err := s.Store.Drop(table); err != nil {
		return err
	}
	if s.current == table {
		s.current = ""
	}
	return nil
}

// AutoSelect picks the first registered spreadsheet when nothing is
// selected yet, mirroring session startup. Reports the selected name and
// whether a selection was made.
func (s *Session) AutoSelect() (string, bool, error) {
	if s.current != "" {
		return s.current, false, nil
	}
	infos, err := s.Store.List()
	if err != nil {
		return "", false, err
	}
	if len(infos) == 0 {
		return "", false, nil
	}
	s.current = infos[0].Name
	return s.current, true, nil
}
