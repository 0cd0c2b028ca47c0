package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes a small colored banner with the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	s1 := out.String("  ┏━╸╻┏━┓┏━┓╺┳╸┏━┓╻ ╻┏┓╻").Foreground(out.Color("#818cf8"))
	s2 := out.String("  ┣╸ ┃┣┳┛┗━┓ ┃ ┣┳┛┃ ┃┃┗┫").Foreground(out.Color("#c084fc"))
	s3 := out.String("  ╹  ╹╹┗╸┗━┛ ╹ ╹┗╸┗━┛╹ ╹").Foreground(out.Color("#f472b6"))
	ver := out.String("  v" + version).Faint()

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w, ver)
	fmt.Fprintln(w)
}
