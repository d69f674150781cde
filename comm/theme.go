package comm

import "github.com/fatih/color"

type commTheme struct {
	OpSign   string
	StatSign string
}

var themes = map[string]*commTheme{
	"unicode": {
		OpSign:   "•",
		StatSign: "✓",
	},
	"ascii": {
		OpSign:   "*",
		StatSign: "+",
	},
}

var theme = themes["unicode"]

// UseASCIITheme switches to plain signs for terminals
// that can't render unicode
func UseASCIITheme() {
	theme = themes["ascii"]
}

var levelColors = map[interface{}]*color.Color{
	"warning": color.New(color.FgYellow),
	"error":   color.New(color.FgRed),
}

func colorForLevel(level interface{}) func(format string, a ...interface{}) string {
	if c, ok := levelColors[level]; ok {
		return c.Sprintf
	}
	return color.New().Sprintf
}
