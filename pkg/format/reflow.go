package format

import (
	"regexp"
	"strings"
)

// modulePortsRE matches a module header "module name ( ports );" where the
// port list may span multiple lines. The port capture is non-greedy, so
// each header matches up to its own closing ");".
var modulePortsRE = regexp.MustCompile(`module\s+(\w+)\s*\(([\s\S]*?)\);`)

// reflowModulePorts rewrites every module header port list with one port
// per line, each prefixed by a single indent unit:
//
//	module name (
//		port_a,
//		port_b
//	);
//
// The pass is purely textual and tracks no nesting; a port whose default
// value contains parentheses or commas is split naively. Headers the
// pattern does not match are left untouched.
func reflowModulePorts(text, unit string) string {
	return modulePortsRE.ReplaceAllStringFunc(text, func(match string) string {
		sub := modulePortsRE.FindStringSubmatch(match)
		name, ports := sub[1], sub[2]

		parts := strings.Split(ports, ",")
		for i, p := range parts {
			parts[i] = unit + strings.TrimSpace(p)
		}

		return "module " + name + " (\n" + strings.Join(parts, ",\n") + "\n);"
	})
}
