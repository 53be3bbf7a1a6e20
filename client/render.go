package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"text/template"

	"github.com/fatih/color"
	"github.com/jcy9503/Tetris3D/tetris"
)

const (
	resetPos = "\033[H" // Reset cursor position to 0,0
	empty    = "  "
	cell     = "[]"
)

//go:embed "layout.tmpl"
var layout string

var colorMap = map[int]color.Attribute{
	tetris.IDI: color.FgCyan,
	tetris.IDL: color.FgHiYellow,
	tetris.IDT: color.FgMagenta,
	tetris.IDO: color.FgYellow,
	tetris.IDJ: color.FgBlue,
	tetris.IDZ: color.FgRed,
	tetris.IDS: color.FgGreen,
}

func paint(id int, attrs ...color.Attribute) string {
	return color.New(append([]color.Attribute{colorMap[id], color.ReverseVideo}, attrs...)...).Sprint(cell)
}

type templateData struct {
	Local   *tetris.Tetris
	NoGhost bool
	View    ViewAngle

	// mu serialises frames: the game updates and the camera keys both redraw.
	mu sync.Mutex
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(w io.Writer, l *slog.Logger, noGhost bool) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	if w == nil {
		w = os.Stdout
	}
	return &render{
		writer:       w,
		logger:       l,
		template:     tmp,
		templateData: &templateData{NoGhost: noGhost},
	}, nil
}

func (r *render) lobby() {
	r.templateData.mu.Lock()
	defer r.templateData.mu.Unlock()
	fmt.Fprint(r.writer, "\033[2J"+resetPos)
	fmt.Fprint(r.writer, "+--------------------------------------+\r\n")
	fmt.Fprint(r.writer, "|              Tetris 3D               |\r\n")
	fmt.Fprint(r.writer, "|                                      |\r\n")
	fmt.Fprint(r.writer, "|          (p)lay     (q)uit           |\r\n")
	fmt.Fprint(r.writer, "+--------------------------------------+\r\n")
}

func (r *render) local(t *tetris.Tetris, v ViewAngle) {
	r.templateData.mu.Lock()
	defer r.templateData.mu.Unlock()
	r.templateData.Local = t
	r.templateData.View = v
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in local()", slog.String("error", err.Error()))
	}
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"topView":   topView,
		"frontView": frontView,
		"border":    border,
		"status":    status,
		"shape":     shape,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	return template.New("layout").Funcs(funcMap).Parse(l)
}

// camera maps the grid's horizontal plane to the screen for a ViewAngle.
// The screen's right and forward follow the remapped moves: at angle 0 right
// is +X and forward is -Z, every turn rotates both a quarter clockwise.
type camera struct {
	angle        ViewAngle
	sizeX, sizeZ int
}

// width is the number of screen columns.
func (c camera) width() int {
	if c.angle%2 == 0 {
		return c.sizeX
	}
	return c.sizeZ
}

// depth is the number of screen rows from front to back, row 0 the farthest.
func (c camera) depth() int {
	if c.angle%2 == 0 {
		return c.sizeZ
	}
	return c.sizeX
}

func (c camera) toGrid(col, row int) (x, z int) {
	switch c.angle {
	case 1:
		return c.sizeX - 1 - row, col
	case 2:
		return c.sizeX - 1 - col, c.sizeZ - 1 - row
	case 3:
		return row, c.sizeZ - 1 - col
	}
	return col, row
}

func (c camera) toScreen(x, z int) (col, row int) {
	switch c.angle {
	case 1:
		return z, c.sizeX - 1 - x
	case 2:
		return c.sizeX - 1 - x, c.sizeZ - 1 - z
	case 3:
		return c.sizeZ - 1 - z, x
	}
	return x, z
}

func newCamera(t *templateData) camera {
	return camera{angle: t.View.Turn(0), sizeX: t.Local.Grid.SizeX, sizeZ: t.Local.Grid.SizeZ}
}

// view is one way of flattening the grid onto the screen.
type view struct {
	rows, cols, depth int
	// cellAt maps a screen row and column plus a depth, nearest first, to the grid.
	cellAt func(row, col, depth int) (x, y, z int)
	// screen maps a grid position to a screen row and column.
	screen func(c tetris.Coord) (row, col int)
}

// topView renders the grid seen from above, one string per row, farthest
// first. Each column shows the highest locked cube with the active block
// drawn over it.
func topView(t *templateData) []string {
	if t.Local == nil || t.Local.Grid == nil {
		return nil
	}
	cam := newCamera(t)
	return project(t, view{
		rows:  cam.depth(),
		cols:  cam.width(),
		depth: t.Local.Grid.SizeY,
		cellAt: func(row, col, depth int) (int, int, int) {
			x, z := cam.toGrid(col, row)
			return x, depth, z
		},
		screen: func(c tetris.Coord) (int, int) {
			col, row := cam.toScreen(c.X, c.Z)
			return row, col
		},
	}, nil)
}

// frontView renders the grid seen from the camera, one string per layer, top
// to bottom. Each cell shows the nearest locked cube and the shadow marks
// where the active block would land.
func frontView(t *templateData) []string {
	if t.Local == nil || t.Local.Grid == nil {
		return nil
	}
	var shadow *tetris.Block
	if !t.NoGhost {
		shadow = t.Local.Shadow
	}
	cam := newCamera(t)
	return project(t, view{
		rows:  t.Local.Grid.SizeY,
		cols:  cam.width(),
		depth: cam.depth(),
		cellAt: func(row, col, depth int) (int, int, int) {
			// the camera stands behind the last row.
			x, z := cam.toGrid(col, cam.depth()-1-depth)
			return x, row, z
		},
		screen: func(c tetris.Coord) (int, int) {
			col, _ := cam.toScreen(c.X, c.Z)
			return c.Y, col
		},
	}, shadow)
}

func project(t *templateData, v view, shadow *tetris.Block) []string {
	g := t.Local.Grid
	rendered := make([][]string, v.rows)
	for r := range rendered {
		rendered[r] = make([]string, v.cols)
		for c := range rendered[r] {
			rendered[r][c] = empty
			for d := range v.depth {
				if id := g.Get(v.cellAt(r, c, d)); id != 0 {
					rendered[r][c] = paint(id)
					break
				}
			}
		}
	}

	if shadow != nil {
		for p := range shadow.TilePositions() {
			r, c := v.screen(p)
			rendered[r][c] = cell
		}
	}
	if b := t.Local.Block; b != nil {
		// bold so the block stands out from the locked cubes behind it.
		active := paint(b.ID, color.Bold)
		for p := range b.TilePositions() {
			r, c := v.screen(p)
			rendered[r][c] = active
		}
	}

	out := make([]string, len(rendered))
	for i, row := range rendered {
		out[i] = strings.Join(row, "")
	}
	return out
}

func border(t *templateData) string {
	if t.Local == nil || t.Local.Grid == nil {
		return ""
	}
	return strings.Repeat("-", newCamera(t).width()*len(cell))
}

func status(t *templateData) string {
	switch {
	case t.Local == nil:
		return ""
	case t.Local.State == tetris.GameOver:
		return "GAME OVER - (r)estart (q)uit"
	case t.Local.Paused:
		return "PAUSED"
	}
	return ""
}

func shape(b *tetris.Block) string {
	if b == nil {
		return "-"
	}
	return string(b.Shape())
}
