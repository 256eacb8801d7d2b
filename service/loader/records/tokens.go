package records

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	dayCode
	separatorCode
	quotedTextCode
	textCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	dayToken        = parsly.NewToken(dayCode, "Day", newDayMatcher())
	separatorToken  = parsly.NewToken(separatorCode, ";", matcher.NewByte(';'))
	quotedTextToken = parsly.NewToken(quotedTextCode, "QuotedText", newQuotedTextMatcher())
	textToken       = parsly.NewToken(textCode, "Text", newTextMatcher())
)

// Custom matchers
func newDayMatcher() parsly.Matcher {
	return &dayMatcher{}
}

func newQuotedTextMatcher() parsly.Matcher {
	return &quotedTextMatcher{}
}

func newTextMatcher() parsly.Matcher {
	return &textMatcher{}
}

// dayMatcher matches a calendar day literal (digits and dashes, e.g.
// 2024-01-01); actual validity is checked at conversion time.
type dayMatcher struct{}

func (m *dayMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	size := cursor.InputSize
	matched := 0
	for i := cursor.Pos; i < size; i++ {
		if isDigit(input[i]) || input[i] == '-' {
			matched++
			continue
		}
		break
	}
	return matched
}

// quotedTextMatcher matches a double-quoted field including the quotes.
type quotedTextMatcher struct{}

func (m *quotedTextMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size || input[pos] != '"' {
		return 0
	}
	for i := pos + 1; i < size; i++ {
		if input[i] == '"' {
			return i - pos + 1
		}
	}
	return 0
}

// textMatcher matches an unquoted field: everything up to the separator or
// end of input.
type textMatcher struct{}

func (m *textMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	size := cursor.InputSize
	matched := 0
	for i := cursor.Pos; i < size; i++ {
		if input[i] == ';' {
			break
		}
		matched++
	}
	return matched
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
