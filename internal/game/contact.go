package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/folio/internal/portfolio"
)

const dialogTitle = "Send Message"

// sendMessageDialog collects the contact form with native entry dialogs and
// hands the composed message to the mail client. Cancelling any field
// abandons the form silently.
func (g *Game) sendMessageDialog() error {
	var form portfolio.ContactForm
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Your Name", &form.Name},
		{"Your Email", &form.Email},
		{"Subject (optional)", &form.Subject},
		{"Message", &form.Message},
	}

	for _, f := range fields {
		for {
			v, err := zenity.Entry(f.prompt, zenity.Title(dialogTitle), zenity.EntryText(*f.dst))
			if err != nil {
				if errors.Is(err, zenity.ErrCanceled) {
					return nil
				}
				return err
			}
			*f.dst = strings.TrimSpace(v)
			if f.dst == &form.Subject || *f.dst != "" {
				break
			}
			if err := zenity.Error(f.prompt+" is required.", zenity.Title(dialogTitle)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
				return err
			}
		}
	}

	if err := form.Validate(); err != nil {
		log.Printf("[Contact] rejected form: %v", err)
		if derr := zenity.Error(err.Error(), zenity.Title(dialogTitle)); derr != nil && !errors.Is(derr, zenity.ErrCanceled) {
			return derr
		}
		return nil
	}

	if err := g.open(form.Mailto(g.content.Contact.Email)); err != nil {
		return err
	}
	log.Printf("[Contact] handed message from %s to the mail client", form.Email)
	g.setStatus("Message sent! Your email client should open now.")
	return nil
}

// downloadResume saves a local resume file where the user chooses. Remote
// resumes are opened in the browser instead.
func (g *Game) downloadResume() error {
	src := g.content.Hero.Resume
	if src == "" {
		return nil
	}
	if strings.Contains(src, "://") {
		return g.open(src)
	}

	dst, err := zenity.SelectFileSave(
		zenity.Title("Download CV"),
		zenity.Filename(filepath.Base(src)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PDF",
			Patterns: []string{"*.pdf"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	log.Printf("[Contact] resume saved to %s", dst)
	g.setStatus("Saved " + filepath.Base(dst))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
