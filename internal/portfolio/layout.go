package portfolio

import (
	"fmt"
	"strings"
)

type RowKind int

const (
	RowText RowKind = iota
	RowTitle
	RowSubtitle
	RowHeading
	RowCardTitle
	RowMuted
	RowSkill
	RowButton
	RowLink
)

// Lines is how many text lines a row of this kind occupies.
func (k RowKind) Lines() int {
	switch k {
	case RowTitle:
		return 3
	case RowHeading:
		return 2
	}
	return 1
}

// Actions carried by button and link rows.
const (
	ActionViewProjects = "#projects"
	ActionResume       = "resume"
	ActionContactForm  = "contact-form"
)

// IconSlot is the width, in characters, reserved in front of a skill row.
const IconSlot = 8

type Row struct {
	Kind    RowKind
	Section string
	X, Y    float64
	Text    string
	Icon    string
	Action  string
}

// Width is the row's text extent for a given character width.
func (r Row) Width(charWidth float64) float64 {
	return float64(len([]rune(r.Text))) * charWidth
}

// Metrics describes the text grid of a host: ebiten's debug font is 6x16
// pixels, a terminal cell is 1x1.
type Metrics struct {
	CharWidth  float64
	LineHeight float64
	Margin     float64
}

type Section struct {
	Anchor      string
	Top, Bottom float64
}

type Page struct {
	Rows     []Row
	Sections []Section
	Height   float64
}

// Anchor returns the top of the named section.
func (p *Page) Anchor(name string) (float64, bool) {
	for _, s := range p.Sections {
		if s.Anchor == name {
			return s.Top, true
		}
	}
	return 0, false
}

type pageBuilder struct {
	m       Metrics
	cols    int
	y       float64
	section string
	page    *Page
}

// BuildPage lays the content out top to bottom for a viewport of the given
// width. The header height is left free for the navigation bar.
func BuildPage(c *Content, width float64, m Metrics) *Page {
	cols := int((width - 2*m.Margin) / m.CharWidth)
	if cols < 20 {
		cols = 20
	}
	b := &pageBuilder{m: m, cols: cols, y: 2 * m.LineHeight, page: &Page{}}

	b.begin("hero")
	b.gap(2)
	b.add(RowTitle, 0, c.Hero.Name, "", "")
	b.add(RowSubtitle, 0, c.Hero.Subtitle, "", "")
	b.gap(1)
	b.add(RowButton, 0, "[ View Projects ]", "", ActionViewProjects)
	if c.Hero.Resume != "" {
		b.add(RowButton, 0, "[ Download CV ]", "", ActionResume)
	}
	b.gap(2)

	b.begin("about")
	b.add(RowHeading, 0, "About Me", "", "")
	for _, p := range c.About {
		b.paragraph(RowText, 2, p)
		b.gap(1)
	}

	b.begin("education")
	b.add(RowHeading, 0, "Education", "", "")
	for _, e := range c.Education {
		b.add(RowCardTitle, 2, e.Institution, "", "")
		b.add(RowMuted, 2, e.Period, "", "")
		b.paragraph(RowText, 2, e.Detail)
		b.gap(1)
	}

	b.begin("skills")
	b.add(RowHeading, 0, "Skills", "", "")
	for _, cat := range c.Skills {
		b.add(RowCardTitle, 2, cat.Title, "", "")
		b.add(RowMuted, 2, cat.Blurb, "", "")
		for _, s := range cat.Items {
			b.add(RowSkill, 4+IconSlot, fmt.Sprintf("%-16s %s", s.Name, s.Level), s.Icon, "")
		}
		b.gap(1)
	}

	b.begin("projects")
	b.add(RowHeading, 0, "Projects", "", "")
	for _, p := range c.Projects {
		b.add(RowCardTitle, 2, fmt.Sprintf("%s  [%s]", p.Title, p.Status), "", "")
		b.paragraph(RowText, 2, p.Desc)
		b.add(RowMuted, 2, strings.Join(p.Tech, " · "), "", "")
		b.gap(1)
	}

	b.begin("contact")
	b.add(RowHeading, 0, "Contact", "", "")
	b.add(RowText, 2, "Email     "+c.Contact.Email, "", "mailto:"+c.Contact.Email)
	if c.Contact.Phone != "" {
		b.add(RowText, 2, "Phone     "+c.Contact.Phone, "", "")
	}
	if c.Contact.Location != "" {
		b.add(RowText, 2, "Location  "+c.Contact.Location, "", "")
	}
	b.gap(1)
	b.add(RowButton, 2, "[ Send Message ]", "", ActionContactForm)
	b.gap(2)

	b.begin("footer")
	b.add(RowMuted, 0, fmt.Sprintf("(c) %s. All rights reserved.", c.Hero.Name), "", "")
	for _, s := range c.Socials {
		b.add(RowLink, 2, s.Label, "", s.URL)
	}
	b.gap(1)
	b.end()

	b.page.Height = b.y
	return b.page
}

func (b *pageBuilder) begin(anchor string) {
	b.end()
	b.section = anchor
	b.page.Sections = append(b.page.Sections, Section{Anchor: anchor, Top: b.y})
}

func (b *pageBuilder) end() {
	if n := len(b.page.Sections); n > 0 && b.page.Sections[n-1].Bottom == 0 {
		b.page.Sections[n-1].Bottom = b.y
	}
}

func (b *pageBuilder) gap(lines int) {
	b.y += float64(lines) * b.m.LineHeight
}

func (b *pageBuilder) add(kind RowKind, indent int, text, icon, action string) {
	b.page.Rows = append(b.page.Rows, Row{
		Kind:    kind,
		Section: b.section,
		X:       b.m.Margin + float64(indent)*b.m.CharWidth,
		Y:       b.y,
		Text:    text,
		Icon:    icon,
		Action:  action,
	})
	b.y += b.m.LineHeight * float64(kind.Lines())
}

func (b *pageBuilder) paragraph(kind RowKind, indent int, text string) {
	for _, line := range Wrap(text, b.cols-indent) {
		b.add(kind, indent, line, "", "")
	}
}

// Wrap breaks text into lines of at most cols runes on word boundaries.
// Words longer than a line are split.
func Wrap(text string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > cols {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:cols]))
			w = w[cols:]
		}
		switch {
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) <= cols:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = append([]rune(nil), w...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
