package colors

// Ansi colors
const (
	red    = "\033[31m"
	yellow = "\033[93m"
	green  = "\033[92m"
	reset  = "\033[0m"
)

// Palette wraps text with ANSI colors.
// Zero value outputs plain text, it is used when the stream is not a terminal.
type Palette struct {
	Enabled bool
}

func (p Palette) wrap(color, text string) string {
	if !p.Enabled {
		return text
	}
	return color + text + reset
}

func (p Palette) Red(text string) string {
	return p.wrap(red, text)
}

func (p Palette) Yellow(text string) string {
	return p.wrap(yellow, text)
}

func (p Palette) Green(text string) string {
	return p.wrap(green, text)
}

var colored = Palette{Enabled: true}

func Red(text string) string {
	return colored.Red(text)
}

func Yellow(text string) string {
	return colored.Yellow(text)
}

func Green(text string) string {
	return colored.Green(text)
}
