// Package langdetect decides whether a file is Verilog/SystemVerilog.
//
// The .v extension is ambiguous: Coq proof scripts use it too, and
// formatting a Coq file as Verilog would mangle it. Detection combines
// cheap lexical heuristics with go-enry's content classifier.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names as reported by enry.
const (
	langVerilog       = "Verilog"
	langSystemVerilog = "SystemVerilog"
	langCoq           = "Coq"
)

// verilogMarkers are tokens that essentially only appear in HDL source.
var verilogMarkers = []string{
	"endmodule", "always @", "posedge", "negedge",
	"assign ", "timescale", "initial begin",
}

// coqMarkers are tokens common in Coq scripts and absent from Verilog.
var coqMarkers = []string{
	"Theorem ", "Lemma ", "Proof.", "Qed.", "Require Import",
}

// IsVerilog reports whether the file at path with the given content should
// be treated as Verilog or SystemVerilog source.
//
// .sv and .svh are unambiguous. For .v the content decides: marker tokens
// first, then enry's classifier; an empty or undecidable .v file is
// accepted, since a formatter that skips real Verilog is worse than one
// that no-ops on the odd stray file.
func IsVerilog(path string, content []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sv", ".svh", ".vh":
		return true
	case ".v":
		// Fall through to content detection.
	default:
		return false
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return true
	}

	text := string(content)
	for _, marker := range verilogMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	for _, marker := range coqMarkers {
		if strings.Contains(text, marker) {
			return false
		}
	}

	candidates := []string{langVerilog, langSystemVerilog, langCoq}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		return lang != langCoq
	}

	return true
}

// Detect returns the enry language name for content, or "Verilog" when the
// classifier is unsure. Used for diagnostics and JSON output.
func Detect(path string, content []byte) string {
	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return lang
	}
	return langVerilog
}
