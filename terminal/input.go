package terminal

// isEnter reports whether a raw stdin chunk is a lone Enter keypress.
// Raw mode delivers Enter as CR; LF is accepted for piped or odd terminals.
// Alt+Enter arrives as ESC CR and pasted text as a longer chunk, neither counts
func isEnter(p []byte) bool {
	return len(p) == 1 && (p[0] == '\r' || p[0] == '\n')
}
