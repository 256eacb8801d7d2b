package records

import (
	"strings"
	"time"

	"github.com/viant/parsly"
	"github.com/viant/toolbox"
)

// Record is one reservation request in the format: start;end;name with
// YYYY-MM-DD dates and an optionally double-quoted name.
type Record struct {
	Start time.Time
	End   time.Time
	Name  string
}

var dayLayout = toolbox.DateFormatToLayout("yyyy-MM-dd")

// Parse parses a single delimited request line.
func Parse(input []byte) (*Record, error) {
	cursor := parsly.NewCursor("", input, 0)
	record := &Record{}

	start, err := matchDay(cursor)
	if err != nil {
		return nil, err
	}
	record.Start = start

	matched := cursor.MatchAfterOptional(whitespaceToken, separatorToken)
	if matched.Code != separatorToken.Code {
		return nil, cursor.NewError(separatorToken)
	}

	end, err := matchDay(cursor)
	if err != nil {
		return nil, err
	}
	record.End = end

	matched = cursor.MatchAfterOptional(whitespaceToken, separatorToken)
	if matched.Code != separatorToken.Code {
		return nil, cursor.NewError(separatorToken)
	}

	matched = cursor.MatchAfterOptional(whitespaceToken, quotedTextToken)
	if matched.Code == quotedTextToken.Code {
		text := matched.Text(cursor)
		record.Name = text[1 : len(text)-1]
		return record, nil
	}
	matched = cursor.MatchOne(textToken)
	if matched.Code != textToken.Code {
		return nil, cursor.NewError(textToken)
	}
	record.Name = strings.TrimSpace(matched.Text(cursor))
	if record.Name == "" {
		return nil, cursor.NewError(textToken)
	}
	return record, nil
}

func matchDay(cursor *parsly.Cursor) (time.Time, error) {
	matched := cursor.MatchAfterOptional(whitespaceToken, dayToken)
	if matched.Code != dayToken.Code {
		return time.Time{}, cursor.NewError(dayToken)
	}
	value, err := toolbox.ToTime(matched.Text(cursor), dayLayout)
	if err != nil {
		return time.Time{}, err
	}
	return *value, nil
}
