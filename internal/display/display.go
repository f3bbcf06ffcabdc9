// Package display renders conversion results for the terminal with
// lipgloss.
//
// A [Printer] writes whole blocks at a time under a lock, so results
// printed from several goroutines never interleave.
package display

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/recipe"
	"github.com/hammamikhairi/recipeparse/internal/units"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is the muted slate used for file banners.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Soft mint for "Ingredients", "Steps" and section titles.
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	amountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentOutputStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))
)

const indent = "  "

// ── Printer ──────────────────────────────────────────────────────

// Printer writes rendered blocks to an io.Writer. Safe for concurrent use.
type Printer struct {
	mu    sync.Mutex
	out   io.Writer
	width int
}

// NewPrinter creates a printer sized to the terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: termWidth()}
}

// SetWidth overrides the terminal width.
func (p *Printer) SetWidth(w int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = w
}

// Println prints one block followed by a newline.
func (p *Printer) Println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}

// PrintResult prints a banner with name, then the converted values and
// the errors.
func (p *Printer) PrintResult(name string, res recipe.Result) {
	p.Println(RenderResult(name, res, p.width))
}

// PrintSummary prints one line per document.
func (p *Printer) PrintSummary(docs []recipe.Document) {
	p.Println(RenderSummary(docs))
}

// PrintUnits prints the unit catalog.
func (p *Printer) PrintUnits(c *units.Catalog) {
	p.Println(RenderUnits(c))
}

// ── Renderers ────────────────────────────────────────────────────

// RenderResult renders whatever the result holds for its start rule.
func RenderResult(name string, res recipe.Result, width int) string {
	var blocks []string
	if name != "" {
		blocks = append(blocks, RenderBanner(name, width))
	}
	switch {
	case res.Recipe != nil:
		blocks = append(blocks, RenderRecipe(res.Recipe, width))
	case res.Ingredients != nil:
		blocks = append(blocks, RenderIngredients(res.Ingredients))
	case res.Steps != nil:
		blocks = append(blocks, RenderSteps(res.Steps, width))
	}
	if errs := res.Errors(); len(errs) > 0 {
		blocks = append(blocks, RenderErrors(errs))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderRecipe renders both halves of a recipe under headings.
func RenderRecipe(r *domain.Recipe, width int) string {
	return headingStyle.Render("Ingredients") + "\n" + RenderIngredients(r.Ingredients) +
		"\n\n" + headingStyle.Render("Steps") + "\n" + RenderSteps(r.Steps, width)
}

// RenderIngredients renders one ingredient per line with the amounts in
// an aligned column. A section title line is printed whenever an
// ingredient names a new section.
func RenderIngredients(items []domain.Ingredient) string {
	if len(items) == 0 {
		return secondaryStyle.Render(indent + "(none)")
	}

	amounts := make([]string, len(items))
	col := 0
	for i, it := range items {
		amounts[i] = FormatAmount(it.Amount)
		col = max(col, lipgloss.Width(amounts[i]))
	}

	var lines []string
	section := ""
	for i, it := range items {
		if it.Section != "" && it.Section != section {
			section = it.Section
			lines = append(lines, sectionStyle.Render(indent+section))
		}
		amt := amountStyle.Width(col).Render(amounts[i])
		lines = append(lines, indent+indent+amt+"  "+primaryStyle.Render(it.Name))
	}
	return strings.Join(lines, "\n")
}

// RenderSteps renders each step with its marker, wrapping the text to
// width. Section titles are printed like in RenderIngredients.
func RenderSteps(steps []domain.Step, width int) string {
	if len(steps) == 0 {
		return secondaryStyle.Render(indent + "(none)")
	}

	col := 0
	for _, s := range steps {
		col = max(col, lipgloss.Width(marker(s)))
	}
	textWidth := width - 2*len(indent) - col - 1
	if textWidth < 20 {
		textWidth = 20
	}

	var lines []string
	title := ""
	for _, s := range steps {
		if s.Title != "" && s.Title != title {
			title = s.Title
			lines = append(lines, sectionStyle.Render(indent+title))
		}
		text := primaryStyle.Width(textWidth).Render(s.Text)
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			indent+indent,
			secondaryStyle.Width(col+1).Render(marker(s)),
			text,
		)
		lines = append(lines, trimLines(row))
	}
	return strings.Join(lines, "\n")
}

// RenderErrors renders lexical and grammar errors, one per line.
func RenderErrors(errs []error) string {
	lines := []string{urgentOutputStyle.Render(fmt.Sprintf("%d error(s)", len(errs)))}
	for _, e := range errs {
		lines = append(lines, urgentOutputStyle.Render(indent+e.Error()))
	}
	return strings.Join(lines, "\n")
}

// RenderSummary renders a one-line overview per document.
func RenderSummary(docs []recipe.Document) string {
	nameCol := 0
	for _, d := range docs {
		nameCol = max(nameCol, lipgloss.Width(d.Name))
	}

	var lines []string
	for _, d := range docs {
		ingredients, steps := counts(d.Result)
		status := primaryStyle.Render("ok")
		if n := len(d.Result.LexErrors) + len(d.Result.ParseErrors); n > 0 {
			status = urgentOutputStyle.Render(fmt.Sprintf("%d error(s)", n))
		}
		lines = append(lines, fmt.Sprintf("%s%s  %s  %s",
			indent,
			primaryStyle.Width(nameCol).Render(d.Name),
			secondaryStyle.Render(fmt.Sprintf("%3d ingredients %3d steps", ingredients, steps)),
			status,
		))
	}
	return strings.Join(lines, "\n")
}

// RenderUnits lists every catalog entry with its spellings.
func RenderUnits(c *units.Catalog) string {
	var lines []string
	for _, e := range c.Entries() {
		lines = append(lines, fmt.Sprintf("%s%s %s  %s",
			indent,
			amountStyle.Width(6).Render(string(e.Unit)),
			primaryStyle.Width(12).Render(e.Name),
			secondaryStyle.Render(strings.Join(append(append([]string{}, e.Abbreviations...), e.Synonyms...), ", ")),
		))
	}
	return strings.Join(lines, "\n")
}

// ── Helpers ──────────────────────────────────────────────────────

// FormatAmount renders an amount as "1.5 cup". Pieces print the bare
// quantity.
func FormatAmount(a domain.Amount) string {
	q := FormatQuantity(a.Quantity)
	if a.Unit == domain.UnitPiece || a.Unit == "" {
		return q
	}
	return q + " " + a.Unit.String()
}

// FormatQuantity prints whole numbers without decimals and everything
// else with at most two.
func FormatQuantity(q float64) string {
	if math.IsNaN(q) {
		return "?"
	}
	if q == math.Trunc(q) {
		return strconv.FormatFloat(q, 'f', 0, 64)
	}
	s := strconv.FormatFloat(q, 'f', 2, 64)
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

func marker(s domain.Step) string {
	if s.ID == "" {
		return "•"
	}
	return s.ID
}

func counts(res recipe.Result) (ingredients, steps int) {
	if res.Recipe != nil {
		return len(res.Recipe.Ingredients), len(res.Recipe.Steps)
	}
	return len(res.Ingredients), len(res.Steps)
}

// trimLines drops the padding lipgloss adds to the right of each line.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
