package config

// Template returns the commented starter configuration written by
// "verifmt init".
func Template() []byte {
	return []byte(`# verifmt configuration

formatter:
  # Indentation engine: hierarchical (tabs, begin/end nesting with
  # module-aware extra indent) or flat (spaces, broad keyword triggers).
  mode: hierarchical

  # Indent unit when use_tabs is false.
  indent_size: 4
  use_tabs: true

  # Rewrite module headers with one port per line.
  expand_module_ports: true

  # Keyword lists driving the engine. Leave unset for the mode defaults.
  # indent_keywords: [begin]
  # unindent_keywords: [end, endcase, endfunction, endtask]

highlight:
  # Hex colors per token category; unset categories keep defaults.
  # theme:
  #   keyword: "#569CD6"
  #   comment: "#608B4E"

# Glob patterns to skip.
# ignore:
#   - "third_party/**"

backups:
  enabled: true
  mode: sidecar
`)
}
