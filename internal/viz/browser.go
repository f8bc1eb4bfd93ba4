package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/forcelab/internal/experiment"
)

var curveInfo = map[string]string{
	"float":          "net vertical force vs draft",
	"float_drag":     "float hull drag",
	"umbilical":      "net umbilical force",
	"umbilical_drag": "umbilical drag only",
	"body_ecomapper": "YSI Eco-mapper towed body",
	"body_vr2c":      "Mini VR2C towed body",
	"cable_drag":     "cable segment drag",
	"cable_vertical": "cable segment vertical force",
	"fin":            "control fin lift + drag",
}

// Browser is a Bubble Tea model listing every registered curve next to the
// chart and diagnostics of the selected one.
type Browser struct {
	registry   *experiment.Registry
	curves     []string
	cursor     int
	finDegrees bool

	results map[string]*experiment.Result
	err     error

	width  int
	height int
}

func NewBrowser(reg *experiment.Registry) *Browser {
	return &Browser{
		registry: reg,
		curves:   reg.ListCurves(),
		results:  make(map[string]*experiment.Result),
		width:    120,
		height:   32,
	}
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.curves)-1 {
				b.cursor++
			}
		case "d":
			b.finDegrees = !b.finDegrees
			delete(b.results, "fin")
		}
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	}
	return b, nil
}

func (b *Browser) Selected() string {
	if len(b.curves) == 0 {
		return ""
	}
	return b.curves[b.cursor]
}

// result evaluates the selected curve once and caches it.
func (b *Browser) result(name string) (*experiment.Result, error) {
	if r, ok := b.results[name]; ok {
		return r, nil
	}

	c, err := b.registry.GetCurve(name)
	if err != nil {
		return nil, err
	}
	cfg := experiment.Config{Curve: name}
	if name == "fin" && b.finDegrees {
		cfg.Params = map[string]float64{"angle_degrees": 1}
	}
	exp := experiment.New(cfg)
	if err := exp.Setup(c); err != nil {
		return nil, err
	}
	r, err := exp.Run(context.Background())
	if err != nil {
		return nil, err
	}
	b.results[name] = r
	return r, nil
}

func (b *Browser) View() string {
	var menu strings.Builder
	menu.WriteString(Title.Render("forcelab") + "\n\n")
	for i, name := range b.curves {
		if i == b.cursor {
			menu.WriteString(Selected.Render("▸ "+name) + "\n")
		} else {
			menu.WriteString("  " + name + "\n")
		}
	}
	menu.WriteString("\n" + KeyHint.Render("↑/↓ select  d fin degrees  q quit"))

	name := b.Selected()
	var detail string
	if name == "" {
		detail = Subtle.Render("no curves registered")
	} else if r, err := b.result(name); err != nil {
		detail = Warning.Render(fmt.Sprintf("error: %v", err))
	} else {
		plotWidth := b.width - 40
		if plotWidth < 20 {
			plotWidth = 20
		}
		detail = Subtle.Render(curveInfo[name]) + "\n" + RenderResult(r, PlotOptions{Width: plotWidth, Height: 10})
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		Panel.Width(24).Render(menu.String()),
		Panel.Render(detail),
	)
}

func RunBrowser(reg *experiment.Registry) error {
	p := tea.NewProgram(NewBrowser(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
