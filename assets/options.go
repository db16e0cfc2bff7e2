package assets

import (
	"log/slog"

	"github.com/disasterengine/canvas/text"
)

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	layout   FontLayout
	fontSize float64
}

// FontLayout describes how an image atlas is cut into glyph cells.
type FontLayout struct {
	Columns int
	Rows    int
	Charset text.Charset
}

// DefaultFontLayout is 16 columns by 6 rows of printable ASCII.
var DefaultFontLayout = FontLayout{Columns: 16, Rows: 6, Charset: text.ASCII}

func defaultOptions() options {
	return options{
		layout:   DefaultFontLayout,
		fontSize: 13,
	}
}

// WithLogger sets the registry logger. The default follows canvas.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFontLayout sets the cell grid of image font atlases. Layouts with
// non-positive dimensions are ignored.
func WithFontLayout(l FontLayout) Option {
	return func(o *options) {
		if l.Columns > 0 && l.Rows > 0 {
			if l.Charset == nil {
				l.Charset = text.ASCII
			}
			o.layout = l
		}
	}
}

// WithFontSize sets the pixel size vector fonts are baked at.
func WithFontSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.fontSize = px
		}
	}
}
