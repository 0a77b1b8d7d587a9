package report

import (
	"fmt"
	"strings"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// Print layout text.
const (
	PrintTitle      = "LAPORAN MONITORING KEBERSIHAN DAN KELENGKAPAN TOILET"
	emptyField      = "-"
	signatureBlank  = "................................"
	acknowledgedBy  = "Mengetahui,"
	coordinatorRole = "Koordinator Kebersihan"
	officerHeading  = "Petugas,"
	officerRole     = "Petugas Kebersihan"
)

// PrintOptions controls how a print view is projected.
type PrintOptions struct {
	// FallbackDate is shown when the metadata carries no date label.
	FallbackDate string
	StatusLabels domain.LabelStyle
}

// PrintLine is one checklist row of a print view.
type PrintLine struct {
	Label  string
	Status string
	Note   string
	Number int
}

// Signature is one column of the signature block.
type Signature struct {
	Heading string
	Name    string
	Role    string
}

// PrintView is the static, print-oriented projection of a checklist.
type PrintView struct {
	Title       string
	DateLine    string
	Location    string
	Coordinator string
	Lines       []PrintLine
	Signatures  [2]Signature
	Done        int
	Total       int
}

// BuildPrintView projects the checklist and metadata into a PrintView.
// It never mutates its inputs.
func BuildPrintView(c domain.Checklist, meta domain.SessionMetadata, opts PrintOptions) PrintView {
	date := meta.DateLabel
	if date == "" {
		date = opts.FallbackDate
	}

	items := c.Items()
	lines := make([]PrintLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, PrintLine{
			Number: it.ID,
			Label:  it.Label,
			Status: it.Status.Label(opts.StatusLabels),
			Note:   orDash(it.Note),
		})
	}

	done, total := c.Progress()

	coordinatorName := meta.Coordinator
	if coordinatorName == "" {
		coordinatorName = signatureBlank
	}

	return PrintView{
		Title:       PrintTitle,
		DateLine:    date,
		Location:    orDash(meta.Location),
		Coordinator: orDash(meta.Coordinator),
		Lines:       lines,
		Done:        done,
		Total:       total,
		Signatures: [2]Signature{
			{Heading: acknowledgedBy, Name: coordinatorName, Role: coordinatorRole},
			{Heading: officerHeading, Name: signatureBlank, Role: officerRole},
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

// Text renders the view as plain text suitable for a line printer.
func (v PrintView) Text() string {
	var b strings.Builder
	b.WriteString(v.Title)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Hari & Tanggal: %s\n", v.DateLine)
	fmt.Fprintf(&b, "Lokasi: %s | Koordinator: %s\n", v.Location, v.Coordinator)
	b.WriteString("\n")

	for _, l := range v.Lines {
		fmt.Fprintf(&b, "No. %d  %s\n", l.Number, l.Label)
		fmt.Fprintf(&b, "       Status: %s\n", l.Status)
		fmt.Fprintf(&b, "       Catatan: %s\n", l.Note)
	}

	for _, s := range v.Signatures {
		b.WriteString("\n")
		b.WriteString(s.Heading + "\n\n\n")
		fmt.Fprintf(&b, "(%s)\n", s.Name)
		b.WriteString(s.Role + "\n")
	}

	return b.String()
}

// Markdown renders the view as a Markdown document with the items in a table.
func (v PrintView) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	fmt.Fprintf(&b, "**Hari & Tanggal:** %s  \n", mdEscape(v.DateLine))
	fmt.Fprintf(&b, "**Lokasi:** %s | **Koordinator:** %s\n\n", mdEscape(v.Location), mdEscape(v.Coordinator))

	b.WriteString("| No | Checklist | Status | Catatan |\n")
	b.WriteString("|---:|---|---|---|\n")
	for _, l := range v.Lines {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", l.Number, mdEscape(l.Label), l.Status, mdEscape(l.Note))
	}

	for _, s := range v.Signatures {
		fmt.Fprintf(&b, "\n%s\n\n(%s)  \n%s\n", s.Heading, s.Name, s.Role)
	}

	return b.String()
}

// Summary renders a compact plain-text digest for sharing: the header
// lines, progress and one line per item.
func (v PrintView) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hari & Tanggal: %s\n", v.DateLine)
	fmt.Fprintf(&b, "Lokasi: %s | Koordinator: %s\n", v.Location, v.Coordinator)
	fmt.Fprintf(&b, "Progres: %d/%d\n", v.Done, v.Total)
	for _, l := range v.Lines {
		fmt.Fprintf(&b, "%d. %s [%s]", l.Number, l.Label, l.Status)
		if l.Note != emptyField {
			fmt.Fprintf(&b, " (%s)", l.Note)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

var mdReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
)

// mdEscape keeps free text inside a single table cell or line.
func mdEscape(s string) string {
	return mdReplacer.Replace(s)
}
