package loader

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// search resolves module name m to a file path, following §4.4: the local
// directory (the directory of the file atop Loading, or the working
// directory), then GLAS_PATH split on ";", then ExtraSearch. The first
// directory yielding matches wins; more than one match in that directory
// is "ambiguous" (a logged failure); no matches anywhere is a logged
// warning.
func (l *Loader) search(m string) (string, bool) {
	for _, dir := range l.searchPath() {
		matches := matchesIn(dir, m)
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			l.Log.Error(m, "ambiguous module: %s", strings.Join(matches, ", "))
			return "", false
		}
		l.Log.Info(m, "found %s", matches[0])
		return matches[0], true
	}
	l.Log.Warn(m, "module not found on search path")
	return "", false
}

func (l *Loader) searchPath() []string {
	var path []string
	if !l.GlasPathOnly {
		path = append(path, l.localDir())
	}
	if env := os.Getenv("GLAS_PATH"); env != "" {
		path = append(path, strings.Split(env, ";")...)
	}
	path = append(path, l.ExtraSearch...)
	return path
}

func (l *Loader) localDir() string {
	if cur := l.currentFile(); cur != "" {
		return filepath.Dir(cur)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// moduleSegment returns the first "."-separated segment of a filename, the
// part that names the module rather than its extension chain: "a.cyc" ->
// "a", "a.g0.cyc" -> "a".
func moduleSegment(name string) string {
	return strings.SplitN(name, ".", 2)[0]
}

// matchesIn finds candidates for module m in dir: files directly in dir
// whose filename base (everything before the first ".") equals m, plus
// files in dir/m/ whose base equals the literal "public".
func matchesIn(dir, m string) []string {
	var out []string
	entries, err := ioutil.ReadDir(dir)
	if err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if moduleSegment(e.Name()) == m {
				p := filepath.Join(dir, e.Name())
				if accessible(p) {
					out = append(out, p)
				}
			}
		}
	}
	public := filepath.Join(dir, m)
	if sub, err := ioutil.ReadDir(public); err == nil {
		for _, e := range sub {
			if e.IsDir() {
				continue
			}
			if moduleSegment(e.Name()) == "public" {
				p := filepath.Join(public, e.Name())
				if accessible(p) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}
