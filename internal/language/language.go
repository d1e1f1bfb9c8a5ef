// Package language maps file extensions to fenced-code-block labels.
package language

import (
	"path/filepath"
	"strings"
)

var byExtension = map[string]string{
	"rs": "rust", "py": "python", "js": "javascript", "ts": "typescript",
	"jsx": "jsx", "tsx": "tsx", "java": "java", "c": "c", "h": "c",
	"cpp": "cpp", "cc": "cpp", "cxx": "cpp", "hpp": "cpp", "hh": "cpp",
	"cs": "csharp", "go": "go", "rb": "ruby", "php": "php", "swift": "swift",
	"kt": "kotlin", "kts": "kotlin", "r": "r", "m": "matlab", "mm": "objectivec",
	"sql": "sql", "sh": "bash", "bash": "bash", "zsh": "bash",
	"yaml": "yaml", "yml": "yaml", "json": "json", "xml": "xml",
	"html": "html", "htm": "html", "css": "css",
	"scss": "scss", "sass": "scss", "less": "less",
	"md": "markdown", "markdown": "markdown", "tex": "latex",
	"vim": "vim", "vimrc": "vim", "lua": "lua", "dart": "dart",
	"scala": "scala", "jl": "julia", "hs": "haskell",
	"clj": "clojure", "cljs": "clojure", "cljc": "clojure", "edn": "clojure",
	"ex": "elixir", "exs": "elixir", "erl": "erlang", "hrl": "erlang",
	"ml": "ocaml", "mli": "ocaml",
	"fs": "fsharp", "fsi": "fsharp", "fsx": "fsharp", "fsscript": "fsharp",
	"pl": "perl", "pm": "perl",
	"ps1": "powershell", "psm1": "powershell", "psd1": "powershell",
	"toml": "toml", "ini": "ini", "cfg": "ini", "conf": "ini",
	"dockerfile": "dockerfile",
	"makefile":   "makefile", "mk": "makefile", "mak": "makefile",
	"gradle": "groovy", "tf": "terraform", "tfvars": "terraform",
	"hcl": "hcl", "http": "http", "gd": "gdscript",
}

// Label returns the code-fence label for filename's extension. It is total:
// an unknown or missing extension yields an empty label.
func Label(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if label, ok := byExtension[ext]; ok {
		return label
	}
	return byExtension[strings.ToLower(ext)]
}
