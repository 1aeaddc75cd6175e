package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/generate"
	"github.com/matzehuels/tagcloud/pkg/geometry"
)

type previewOpts struct {
	sizes  string
	layout layoutFlags
}

// previewCommand creates the preview command, an interactive terminal view
// that places rectangles one at a time.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Watch a cloud grow in the terminal",
		Long: `Preview places rectangles interactively and draws the cloud as a
character grid.

Keys: space places the next rectangle, a places the rest, +/- zoom,
arrow keys pan, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.pipelineOptions(cmd, opts.sizes, &opts.layout, nil)
			if err != nil {
				return err
			}
			sizes := popts.Sizes
			if sizes == nil {
				sizes, err = generate.Sizes(popts.Count, popts.SizeRange(), popts.Seed)
				if err != nil {
					return err
				}
			}

			var lopts []cloud.Option
			if popts.MaxRadius > 0 {
				lopts = append(lopts, cloud.WithMaxRadius(popts.MaxRadius))
			}
			m := newPreviewModel(cloud.New(popts.CenterPoint(), lopts...), sizes)

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(previewModel); ok {
				printStats(fm.placed, fm.layouter.Radius(), false)
				if fm.err != nil {
					printWarning("%s", fm.err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.sizes, "sizes", "", "file of WxH sizes to place instead of generated ones")
	opts.layout.register(cmd)

	return cmd
}

// =============================================================================
// Model
// =============================================================================

var previewColors = []lipgloss.Color{"167", "36", "220", "75", "35", "176", "209", "109"}

var (
	previewCellStyles = func() []lipgloss.Style {
		s := make([]lipgloss.Style, len(previewColors))
		for i, c := range previewColors {
			s[i] = lipgloss.NewStyle().Foreground(c)
		}
		return s
	}()
	previewCenterStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

const (
	previewCell    = "█"
	previewEmpty   = " "
	previewMarker  = "+"
	defaultCols    = 80
	defaultRows    = 24
	maxPreviewZoom = 64
)

// previewModel is the bubbletea model behind the preview command.
// One terminal cell spans zoom units across and 2*zoom units down.
type previewModel struct {
	layouter *cloud.Layouter
	sizes    []geometry.Size
	placed   int
	err      error

	zoom   int
	pan    geometry.Point
	width  int
	height int
}

func newPreviewModel(l *cloud.Layouter, sizes []geometry.Size) previewModel {
	return previewModel{
		layouter: l,
		sizes:    sizes,
		zoom:     8,
		width:    defaultCols,
		height:   defaultRows,
	}
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "n":
			m = m.placeNext()
		case "a":
			for !m.done() {
				m = m.placeNext()
			}
		case "+", "=":
			m.zoom = max(1, m.zoom/2)
		case "-":
			m.zoom = min(maxPreviewZoom, m.zoom*2)
		case "up", "k":
			m.pan.Y -= 4 * m.zoom
		case "down", "j":
			m.pan.Y += 4 * m.zoom
		case "left", "h":
			m.pan.X -= 4 * m.zoom
		case "right", "l":
			m.pan.X += 4 * m.zoom
		case "0":
			m.pan = geometry.Point{}
		}
	}
	return m, nil
}

// done reports whether every size is placed or placement has failed.
func (m previewModel) done() bool {
	return m.err != nil || m.placed >= len(m.sizes)
}

func (m previewModel) placeNext() previewModel {
	if m.done() {
		return m
	}
	if _, err := m.layouter.PlaceNext(m.sizes[m.placed]); err != nil {
		m.err = err
		return m
	}
	m.placed++
	return m
}

func (m previewModel) View() string {
	rows := max(1, m.height-2)
	cols := max(1, m.width)
	grid := m.grid(cols, rows)

	var b strings.Builder
	for _, row := range grid {
		for _, cell := range row {
			switch {
			case cell > 0:
				b.WriteString(previewCellStyles[(cell-1)%len(previewCellStyles)].Render(previewCell))
			case cell < 0:
				b.WriteString(previewCenterStyle.Render(previewMarker))
			default:
				b.WriteString(previewEmpty)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

func (m previewModel) status() string {
	line := fmt.Sprintf("%d/%d placed · radius %d · zoom 1:%d",
		m.placed, len(m.sizes), m.layouter.Radius(), m.zoom)
	if m.err != nil {
		line += " · " + StyleWarning.Render(m.err.Error())
	}
	return StyleDim.Render(line) + "\n" +
		StyleDim.Render("space next · a all · +/- zoom · arrows pan · 0 recenter · q quit")
}

// grid maps the cloud onto a cols×rows character grid. Cells hold the
// 1-based index of the covering rectangle, -1 for the center marker and 0
// when empty. Later rectangles never overlap earlier ones, so draw order
// does not matter.
func (m previewModel) grid(cols, rows int) [][]int {
	sx, sy := m.zoom, 2*m.zoom
	focus := m.layouter.Center().Add(m.pan.X, m.pan.Y)
	ox := focus.X - cols/2*sx
	oy := focus.Y - rows/2*sy

	grid := make([][]int, rows)
	for i := range grid {
		grid[i] = make([]int, cols)
	}

	for i, r := range m.layouter.Cloud().All() {
		if r.Size.Empty() {
			continue
		}
		end := r.Max()
		c0, c1 := floorDiv(r.Min.X-ox, sx), floorDiv(end.X-1-ox, sx)
		r0, r1 := floorDiv(r.Min.Y-oy, sy), floorDiv(end.Y-1-oy, sy)
		if c1 < 0 || r1 < 0 || c0 >= cols || r0 >= rows {
			continue
		}
		for row := max(r0, 0); row <= min(r1, rows-1); row++ {
			for col := max(c0, 0); col <= min(c1, cols-1); col++ {
				grid[row][col] = i + 1
			}
		}
	}

	c := m.layouter.Center()
	if col, row := floorDiv(c.X-ox, sx), floorDiv(c.Y-oy, sy); col >= 0 && col < cols && row >= 0 && row < rows && grid[row][col] == 0 {
		grid[row][col] = -1
	}
	return grid
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
