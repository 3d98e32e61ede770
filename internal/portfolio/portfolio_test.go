package portfolio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Hero.Name != "Chamodh Theekshana Rathnayake" {
		t.Errorf("unexpected hero name %q", c.Hero.Name)
	}
	if len(c.Skills) != 4 || len(c.Projects) != 5 {
		t.Errorf("expected 4 skill categories and 5 projects, got %d and %d", len(c.Skills), len(c.Projects))
	}
	if c.Contact.Phone != "0776995285" {
		t.Errorf("phone should stay a string with its leading zero, got %q", c.Contact.Phone)
	}
}

func TestParse_RequiresName(t *testing.T) {
	_, err := Parse([]byte("contact:\n  email: a@b.c\n"))
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	data := "hero:\n  name: Ada\ncontact:\n  email: ada@example.com\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hero.Name != "Ada" {
		t.Errorf("expected Ada, got %q", c.Hero.Name)
	}
}

func TestProject_StatusClass(t *testing.T) {
	if got := (Project{Status: "In Progress"}).StatusClass(); got != "in-progress" {
		t.Errorf("expected in-progress, got %q", got)
	}
}

func TestTypewriter_Advance(t *testing.T) {
	tw := NewTypewriter("héllo", 80*time.Millisecond)

	if n := tw.Advance(79 * time.Millisecond); n != 0 || tw.Text() != "" {
		t.Errorf("nothing should show before the first interval, got %d %q", n, tw.Text())
	}
	if n := tw.Advance(time.Millisecond); n != 1 || tw.Text() != "h" {
		t.Errorf("expected h, got %d %q", n, tw.Text())
	}
	if n := tw.Advance(160 * time.Millisecond); n != 2 || tw.Text() != "hél" {
		t.Errorf("expected hél, got %d %q", n, tw.Text())
	}
	if n := tw.Advance(10 * time.Second); n != 2 || !tw.Done() || tw.Text() != "héllo" {
		t.Errorf("expected full text, got %d %q", n, tw.Text())
	}
	if n := tw.Advance(time.Second); n != 0 {
		t.Errorf("done typewriter should not reveal more, got %d", n)
	}
}

func TestContactForm_Validate(t *testing.T) {
	tests := []struct {
		name string
		form ContactForm
		err  error
	}{
		{"ok", ContactForm{Name: "Ada", Email: "ada@example.com", Message: "hi"}, nil},
		{"no name", ContactForm{Email: "ada@example.com", Message: "hi"}, ErrMissingField},
		{"blank message", ContactForm{Name: "Ada", Email: "ada@example.com", Message: "  "}, ErrMissingField},
		{"no email", ContactForm{Name: "Ada", Message: "hi"}, ErrMissingField},
		{"bad email", ContactForm{Name: "Ada", Email: "ada.example.com", Message: "hi"}, ErrInvalidEmail},
		{"display name", ContactForm{Name: "Ada", Email: "Ada <ada@example.com>", Message: "hi"}, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.err == nil && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestContactForm_Mailto(t *testing.T) {
	f := ContactForm{Name: "Ada L", Email: "ada@example.com", Message: "Hi & bye!"}
	got := f.Mailto("me@example.com")
	want := "mailto:me@example.com?subject=Contact%20from%20Portfolio" +
		"&body=Name%3A%20Ada%20L%0AEmail%3A%20ada%40example.com%0A%0AMessage%3A%0AHi%20%26%20bye!"
	if got != want {
		t.Errorf("Mailto mismatch\n got: %s\nwant: %s", got, want)
	}

	f.Subject = "Job (remote)"
	if !strings.Contains(f.Mailto("me@example.com"), "subject=Job%20(remote)&") {
		t.Errorf("custom subject not encoded as a URI component: %s", f.Mailto("me@example.com"))
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"a b":        "a%20b",
		"a+b":        "a%2Bb",
		"-_.!~*'()":  "-_.!~*'()",
		"x=1&y=2":    "x%3D1%26y%3D2",
		"é":          "%C3%A9",
		"line\nnext": "line%0Anext",
	}
	for in, want := range tests {
		if got := EncodeURIComponent(in); got != want {
			t.Errorf("EncodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestIconSet_Lookup(t *testing.T) {
	fsys := fstest.MapFS{
		"go.png":     {Data: pngBytes(t)},
		"broken.png": {Data: []byte("not a png")},
	}
	icons := NewIconSet(fsys)

	if icon := icons.Lookup("go"); icon.Fallback() || icon.Image.Bounds().Dx() != 2 {
		t.Errorf("expected decoded icon, got %+v", icon)
	}
	if icon := icons.Lookup("kotlin"); !icon.Fallback() || icon.Label != "KOTLIN" {
		t.Errorf("expected KOTLIN fallback, got %+v", icon)
	}
	if icon := icons.Lookup("broken"); !icon.Fallback() || icon.Label != "BROKEN" {
		t.Errorf("expected fallback for undecodable icon, got %+v", icon)
	}
}

func TestIconSet_NilFS(t *testing.T) {
	if icon := NewIconSet(nil).Lookup("cpp"); icon.Label != "CPP" {
		t.Errorf("expected CPP, got %+v", icon)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Wrap = %q, want %q", got, want)
	}

	got = Wrap("abcdefghijkl xy", 5)
	want = []string{"abcde", "fghij", "kl xy"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Wrap long word = %q, want %q", got, want)
	}

	for _, line := range Wrap(Default().About[0], 37) {
		if len([]rune(line)) > 37 {
			t.Errorf("line too long: %q", line)
		}
	}
}

func TestBuildPage(t *testing.T) {
	m := Metrics{CharWidth: 6, LineHeight: 16, Margin: 24}
	page := BuildPage(Default(), 1024, m)

	order := []string{"hero", "about", "education", "skills", "projects", "contact", "footer"}
	if len(page.Sections) != len(order) {
		t.Fatalf("expected %d sections, got %d", len(order), len(page.Sections))
	}
	prev := 0.0
	for i, s := range page.Sections {
		if s.Anchor != order[i] {
			t.Errorf("section %d: expected %s, got %s", i, order[i], s.Anchor)
		}
		if s.Top < prev || s.Bottom <= s.Top {
			t.Errorf("section %s has bad span [%v, %v]", s.Anchor, s.Top, s.Bottom)
		}
		prev = s.Bottom
	}
	if page.Height != page.Sections[len(order)-1].Bottom {
		t.Errorf("page height %v should end at the footer bottom", page.Height)
	}

	if y, ok := page.Anchor("projects"); !ok || y <= 0 {
		t.Errorf("expected a projects anchor, got %v %v", y, ok)
	}

	skills := 0
	for _, r := range page.Rows {
		if r.Kind == RowSkill {
			skills++
			if r.Icon == "" {
				t.Errorf("skill row without icon: %+v", r)
			}
		}
		if r.X+r.Width(m.CharWidth) > 1024 {
			t.Errorf("row overflows the viewport: %+v", r)
		}
	}
	if skills != 23 {
		t.Errorf("expected 23 skill rows, got %d", skills)
	}
}

func TestScrollState(t *testing.T) {
	s := NewScrollState()
	s.SetBounds(2000, 500)

	s.ScrollBy(-100)
	if s.Offset != 0 || s.Progress() != 0 {
		t.Errorf("offset should clamp at 0, got %v", s.Offset)
	}
	s.ScrollBy(3000)
	if s.Offset != 1500 || s.Progress() != 100 {
		t.Errorf("offset should clamp at 1500, got %v (%v%%)", s.Offset, s.Progress())
	}

	s.ScrollTo(750)
	s.Update(time.Second / 60)
	if s.Offset <= 750 || s.Offset >= 1500 {
		t.Errorf("smooth scroll should move part of the way, got %v", s.Offset)
	}
	for i := 0; i < 200; i++ {
		s.Update(time.Second / 60)
	}
	if s.Offset != 750 || s.Progress() != 50 {
		t.Errorf("expected to settle at 750 (50%%), got %v", s.Offset)
	}
}

func TestScrollState_Observe(t *testing.T) {
	s := NewScrollState()
	s.SetBounds(3000, 600)
	sections := []Section{
		{Anchor: "hero", Top: 0, Bottom: 400},
		{Anchor: "about", Top: 400, Bottom: 1000},
		{Anchor: "skills", Top: 1000, Bottom: 2000},
	}

	s.Observe(sections)
	if !s.Revealed("hero") {
		t.Error("hero should be revealed")
	}
	if !s.Revealed("about") {
		t.Error("about shows 150 of 600px and should be revealed")
	}
	if s.Revealed("skills") {
		t.Error("skills is off screen")
	}

	s.ScrollBy(1000)
	s.Observe(sections)
	s.ScrollBy(-1000)
	s.Observe(sections)
	if !s.Revealed("skills") {
		t.Error("skills should stay revealed after scrolling past it")
	}
}
