package report

// formatMatch renders a boolean check for summaries.
func formatMatch(ok bool) string {
	if ok {
		return "YES"
	}
	return "NO"
}
