package scan

import "sort"

// SetBookmark stores the current cursor offset under name, overwriting
// any existing entry.
func (s *Scanner) SetBookmark(name string) {
	s.marks[name] = s.cursor
}

// MoveToBookmark sets the cursor to the offset stored under name. It
// touches neither the undo history nor the result. Fails with
// ErrUnknownBookmark when the name has no entry.
func (s *Scanner) MoveToBookmark(name string) error {
	off, ok := s.marks[name]
	if !ok {
		return ErrUnknownBookmark
	}
	s.cursor = off
	return nil
}

// Bookmark returns the offset stored under name.
func (s *Scanner) Bookmark(name string) (int, error) {
	off, ok := s.marks[name]
	if !ok {
		return 0, ErrUnknownBookmark
	}
	return off, nil
}

// DeleteBookmark removes the entry for name, reporting whether it was
// present.
func (s *Scanner) DeleteBookmark(name string) bool {
	_, ok := s.marks[name]
	delete(s.marks, name)
	return ok
}

// DeleteAllBookmarks clears the bookmark table.
func (s *Scanner) DeleteAllBookmarks() {
	s.marks = make(map[string]int)
}

// Bookmarks returns all bookmark names in sorted order.
func (s *Scanner) Bookmarks() []string {
	names := make([]string, 0, len(s.marks))
	for name := range s.marks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectionBetween returns the substring between two bookmarked
// offsets, in either order, without touching the cursor or result.
// Fails with ErrUnknownBookmark when either name is undefined.
func (s *Scanner) SelectionBetween(nameA, nameB string) (string, error) {
	a, ok := s.marks[nameA]
	if !ok {
		return "", ErrUnknownBookmark
	}
	b, ok := s.marks[nameB]
	if !ok {
		return "", ErrUnknownBookmark
	}
	if a > b {
		a, b = b, a
	}
	return s.Selection(a, b)
}
