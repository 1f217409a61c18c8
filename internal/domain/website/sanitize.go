package website

import "regexp"

// Best-effort textual neutralization of server-only syntax in generated
// client-side scripts. Two patterns only; anything else passes through
// unchanged, including other server APIs the model may have used.
var (
	requirePattern = regexp.MustCompile(`const\s+([^=]+)\s*=\s*require\('([^']+)'\);?`)
	importPattern  = regexp.MustCompile(`import\s+[^;\n]+\s+from\s+['"](fs|path|http|module)['"];`)
)

// SanitizeScript comments out const-require statements, keeping the original
// names and module path inspectable, and replaces imports of server-only
// modules with a fixed marker comment.
func SanitizeScript(code string) string {
	code = requirePattern.ReplaceAllString(code, `// const ${1} = require("${2}"); // Commented out for browser compatibility`)
	code = importPattern.ReplaceAllString(code, `// Server-side import removed for browser`)
	return code
}
