package domain

import "strings"

// Template is the ordered list of inspection task labels a checklist is seeded from.
type Template []string

// defaultLabels are the canonical toilet inspection tasks, in form order.
var defaultLabels = []string{
	"Menyikat lantai",
	"Membersihkan lantai dengan cairan pembersih",
	"Mengosongkan tempat sampah",
	"Membersihkan saringan/saluran air dari kotoran yang menyumbat",
	"Membersihkan dinding",
	"Membersihkan langit-langit",
	"Membersihkan ventilasi",
	"Menguras bak/ember",
	"Mengecek kelayakan fungsi kran air",
	"Mengecek alat/perlengkapan toilet",
	"Mengecek kelayakan fungsi pengharum ruangan",
	"Mengecek kelayakan fungsi egsel, gagang, kunci, gembok, gerendel pintu",
	"Mengecek fungsi saklar dan lampu",
	"Membersihkan keset",
}

// DefaultTemplate returns a copy of the built-in 14-task template.
func DefaultTemplate() Template {
	t := make(Template, len(defaultLabels))
	copy(t, defaultLabels)
	return t
}

// NewTemplate builds a template from labels, dropping blank entries.
func NewTemplate(labels []string) (Template, error) {
	t := make(Template, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		t = append(t, l)
	}
	if len(t) == 0 {
		return nil, ErrEmptyTemplate
	}
	return t, nil
}
