// Package editor holds the state behind the catalog screens: the form being
// edited, the search query, the current page and the selected rows. Every
// user intent goes through a Session, which delegates persistence to the
// catalog and recomputes the visible page on demand.
package editor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ChintyaPuja/technical/internal/catalog"
	"github.com/ChintyaPuja/technical/internal/models"
	"github.com/ChintyaPuja/technical/internal/view"
)

// ErrNotStored is returned when an update is not visible after the reload
var ErrNotStored = errors.New("product was not stored")

// PageView is the slice of the catalog currently on screen
type PageView struct {
	Items   []models.Product
	Number  int
	Total   int
	Size    int
	Matches int
	Query   string
}

// Session tracks the editing state of one user
type Session struct {
	catalog  *catalog.Catalog
	pageSize int
	query    string
	page     int
	editing  *models.Product
	selected map[int64]struct{}
}

// New creates a session over c. A non-positive pageSize uses view.DefaultPageSize.
func New(c *catalog.Catalog, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = view.DefaultPageSize
	}
	return &Session{
		catalog:  c,
		pageSize: pageSize,
		page:     1,
		selected: make(map[int64]struct{}),
	}
}

// Open loads the catalog from storage
func (s *Session) Open() error {
	return s.catalog.Load()
}

// Submit creates a product, or updates one when the form carries an id or a
// product is being edited. Editing is cleared on success only.
func (s *Session) Submit(form Form) (models.Product, error) {
	draft, err := form.Draft()
	if err != nil {
		return models.Product{}, err
	}

	id := form.ID
	if id == 0 && s.editing != nil {
		id = s.editing.ID
	}

	var product models.Product
	if id != 0 {
		if err := s.catalog.Update(draft.WithID(id)); err != nil {
			return models.Product{}, err
		}
		var ok bool
		product, ok = s.catalog.Get(id)
		if !ok {
			return models.Product{}, fmt.Errorf("update product %d: %w", id, ErrNotStored)
		}
	} else {
		product, err = s.catalog.Add(draft)
		if err != nil {
			return models.Product{}, err
		}
	}

	s.editing = nil
	return product, nil
}

// RequestEdit makes p the product the form is editing
func (s *Session) RequestEdit(p models.Product) {
	edit := p
	s.editing = &edit
}

// CancelEdit resets the form to creating a new product
func (s *Session) CancelEdit() {
	s.editing = nil
}

// Editing returns the product being edited, if any
func (s *Session) Editing() (models.Product, bool) {
	if s.editing == nil {
		return models.Product{}, false
	}
	return *s.editing, true
}

// EditForm returns the form pre-populated for the current edit, or an empty form
func (s *Session) EditForm() Form {
	if s.editing == nil {
		return Form{}
	}
	return FormFor(*s.editing)
}

// Delete removes products and refreshes the view state
func (s *Session) Delete(ids ...int64) error {
	if err := s.catalog.Delete(ids...); err != nil {
		return err
	}

	for _, id := range ids {
		delete(s.selected, id)
		if s.editing != nil && s.editing.ID == id {
			s.editing = nil
		}
	}
	s.page = view.ClampPage(s.page, s.pageCount())
	return nil
}

// Toggle flips the selection of one product
func (s *Session) Toggle(id int64) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// SelectPage selects exactly the products on the current page, or clears the
// selection when on is false
func (s *Session) SelectPage(on bool) {
	s.selected = make(map[int64]struct{})
	if !on {
		return
	}
	for _, p := range s.Page().Items {
		s.selected[p.ID] = struct{}{}
	}
}

// IsSelected reports whether id is selected
func (s *Session) IsSelected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

// PageSelected reports whether every product on the current page is selected
func (s *Session) PageSelected() bool {
	items := s.Page().Items
	if len(items) == 0 {
		return false
	}
	for _, p := range items {
		if !s.IsSelected(p.ID) {
			return false
		}
	}
	return true
}

// Selected returns the selected ids in ascending order
func (s *Session) Selected() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeleteSelected deletes every selected product and clears the selection.
// It returns how many ids were requested for deletion.
func (s *Session) DeleteSelected() (int, error) {
	ids := s.Selected()
	if len(ids) == 0 {
		return 0, nil
	}
	if err := s.Delete(ids...); err != nil {
		return 0, err
	}
	s.selected = make(map[int64]struct{})
	return len(ids), nil
}

// Search sets the query and goes back to the first page
func (s *Session) Search(query string) {
	s.query = query
	s.page = 1
}

// Query returns the active search query
func (s *Session) Query() string {
	return s.query
}

// GoTo moves to page, clamped to the available pages
func (s *Session) GoTo(page int) int {
	s.page = view.ClampPage(page, s.pageCount())
	return s.page
}

// Next moves one page forward
func (s *Session) Next() int {
	return s.GoTo(s.page + 1)
}

// Prev moves one page back
func (s *Session) Prev() int {
	return s.GoTo(s.page - 1)
}

// Page computes the rows visible for the current query and page
func (s *Session) Page() PageView {
	filtered := view.Filter(s.catalog.Products(), s.query)
	total := view.PageCount(len(filtered), s.pageSize)
	s.page = view.ClampPage(s.page, total)

	return PageView{
		Items:   view.Paginate(filtered, s.page, s.pageSize),
		Number:  s.page,
		Total:   total,
		Size:    s.pageSize,
		Matches: len(filtered),
		Query:   s.query,
	}
}

func (s *Session) pageCount() int {
	filtered := view.Filter(s.catalog.Products(), s.query)
	return view.PageCount(len(filtered), s.pageSize)
}
