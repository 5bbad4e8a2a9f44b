package gemini

import "strings"

// ExtractJSON strips markdown code-fence markers from a model response so the
// remainder can be decoded. Models regularly wrap JSON output in ```json
// fences despite being told not to.
func ExtractJSON(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
