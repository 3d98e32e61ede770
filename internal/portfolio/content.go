// Package portfolio holds the showcase content and the small interaction
// models behind it: hero typing, contact form, skill icons, page layout and
// scrolling.
package portfolio

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

var ErrMissingField = errors.New("missing required field")

type Content struct {
	Hero      Hero            `yaml:"hero"`
	Nav       []NavLink       `yaml:"nav"`
	About     []string        `yaml:"about"`
	Education []Education     `yaml:"education"`
	Skills    []SkillCategory `yaml:"skills"`
	Projects  []Project       `yaml:"projects"`
	Contact   ContactInfo     `yaml:"contact"`
	Socials   []Social        `yaml:"socials"`
}

type Hero struct {
	Initials string `yaml:"initials"`
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
	Resume   string `yaml:"resume"`
}

type NavLink struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
}

type Education struct {
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
	Detail      string `yaml:"detail"`
}

type SkillCategory struct {
	Title string  `yaml:"title"`
	Blurb string  `yaml:"blurb"`
	Items []Skill `yaml:"items"`
}

type Skill struct {
	Icon  string `yaml:"icon"`
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Project struct {
	Title  string   `yaml:"title"`
	Desc   string   `yaml:"desc"`
	Tech   []string `yaml:"tech"`
	Status string   `yaml:"status"`
}

// StatusClass turns "In Progress" into "in-progress".
func (p Project) StatusClass() string {
	return strings.ReplaceAll(strings.ToLower(p.Status), " ", "-")
}

type ContactInfo struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
}

type Social struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the built-in portfolio.
func Default() *Content {
	c, err := Parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return c
}

func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.Hero.Name == "" {
		return nil, fmt.Errorf("%w: hero.name", ErrMissingField)
	}
	if c.Contact.Email == "" {
		return nil, fmt.Errorf("%w: contact.email", ErrMissingField)
	}
	return &c, nil
}
