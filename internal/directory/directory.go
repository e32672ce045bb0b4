// Package directory holds the department sheet rows used for classification
// and notification routing.
package directory

import (
	"sync"

	"github.com/podolabs/frontdesk/internal/domain"
)

// Directory is the in-process copy of the department sheet. Read-mostly
// after startup; Replace swaps the whole row set atomically on reload.
type Directory struct {
	mu   sync.RWMutex
	rows []domain.DepartmentRow
}

// New creates an empty Directory.
func New() *Directory {
	return &Directory{}
}

// Replace swaps in a freshly loaded row set.
func (d *Directory) Replace(rows []domain.DepartmentRow) {
	d.mu.Lock()
	d.rows = rows
	d.mu.Unlock()
}

// Rows returns the current row set. Callers must treat it as read-only.
func (d *Directory) Rows() []domain.DepartmentRow {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.rows
}

// Empty reports whether any rows are loaded.
func (d *Directory) Empty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rows) == 0
}

// ContactFor resolves the Slack identity owning a category. It tries the
// category verbatim first (site-specific rows like "주차(마포)" have their
// own contacts), then falls back to the base form.
func (d *Directory) ContactFor(cat domain.Category) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if id := d.contactByKey(cat.String()); id != "" {
		return id, true
	}
	if cat.Location != domain.LocationNone {
		if id := d.contactByKey(cat.Base); id != "" {
			return id, true
		}
	}
	return "", false
}

func (d *Directory) contactByKey(key string) string {
	for _, row := range d.rows {
		if row.Category == key && row.SlackUserID != "" {
			return row.SlackUserID
		}
	}
	return ""
}

// DepartmentFor returns a human-readable owner label for a category, e.g.
// "총무 부서 [홍길동]". Unknown categories get the catch-all label.
func (d *Directory) DepartmentFor(cat domain.Category) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, row := range d.rows {
		if row.Category == cat.String() || row.Category == cat.Base {
			dept := row.Department
			if dept == "" {
				dept = domain.CategoryCatchAll
			}
			name := row.SlackName
			if name == "" {
				name = "기타 담당자"
			}
			return dept + " 부서 [" + name + "]"
		}
	}
	return domain.CategoryCatchAll + " 부서 [기타 담당자]"
}
