package meta

import (
	"os"
	"regexp"
)

var envExpr = regexp.MustCompile(`\$\{env\.([A-Za-z0-9_]*)}`)

// expandEnvExpr replaces all occurrences of ${env.KEY} in the input with the
// value of the environment variable KEY (or "" if unset). Malformed
// expressions are left as literals.
func expandEnvExpr(value string) string {
	return envExpr.ReplaceAllStringFunc(value, func(match string) string {
		key := envExpr.FindStringSubmatch(match)[1]
		return os.Getenv(key)
	})
}
