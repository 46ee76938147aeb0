package extract

import "fmt"

// TextParam is the query string parameter carrying the free-form text.
const TextParam = "text"

// BuildPrompt embeds text verbatim into the date extraction instruction.
// No trimming or escaping is applied; an empty text still yields a prompt.
func BuildPrompt(text string) string {
	return fmt.Sprintf(
		"Extract the date from the following text: %s and return it in the format of MMdd. If there is no date in the text, return an empty string.",
		text,
	)
}
