// Package curriculum holds the static OSSU-derived catalog served by the
// courses API. The document is built once and treated as immutable; admin
// replacements live in the catalog repository, not here.
package curriculum

import (
	"sync"
)

type Lesson struct {
	ID      string `json:"id,omitempty"`
	Week    int    `json:"week,omitempty"`
	Title   string `json:"title"`
	TitleEn string `json:"titleEn,omitempty"`
	Content string `json:"content,omitempty"`
}

type Course struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	TitleEn  string   `json:"titleEn,omitempty"`
	Provider string   `json:"provider,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Effort   string   `json:"effort,omitempty"`
	Topics   []string `json:"topics,omitempty"`
	TopicsAr []string `json:"topicsAr,omitempty"`
	URL      string   `json:"url,omitempty"`
	Lessons  []Lesson `json:"lessons,omitempty"`
}

// The catalog has exactly two course-holding shapes: a flat list, or named
// subsections each holding a flat list. Both implement findByID so lookup
// is a dispatch over the pair rather than shape sniffing.

type CourseList []Course

func (l CourseList) findByID(id string) (Course, bool) {
	for _, c := range l {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

type Subsection struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	TitleEn string     `json:"titleEn,omitempty"`
	Courses CourseList `json:"courses"`
}

type SubsectionMap map[string]Subsection

func (m SubsectionMap) findByID(id string) (Course, bool) {
	for _, sub := range m {
		if c, ok := sub.Courses.findByID(id); ok {
			return c, true
		}
	}
	return Course{}, false
}

// Section is one top-level curriculum unit. Exactly one of Courses or
// Sections is populated.
type Section struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	TitleEn     string        `json:"titleEn,omitempty"`
	Description string        `json:"description,omitempty"`
	Courses     CourseList    `json:"courses,omitempty"`
	Sections    SubsectionMap `json:"sections,omitempty"`
}

func (s Section) findByID(id string) (Course, bool) {
	if c, ok := s.Courses.findByID(id); ok {
		return c, true
	}
	return s.Sections.findByID(id)
}

// Document is the full nested catalog keyed by section slug.
type Document map[string]Section

var (
	buildOnce sync.Once
	doc       Document
)

// All returns the full curriculum document.
func All() Document {
	buildOnce.Do(func() { doc = buildCatalog() })
	return doc
}

// FindByID searches every section for a course id. A miss is a normal
// sentinel result, not an error.
func FindByID(id string) (Course, bool) {
	for _, section := range All() {
		if c, ok := section.findByID(id); ok {
			return c, true
		}
	}
	return Course{}, false
}
