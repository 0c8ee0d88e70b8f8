package ics

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarStream(t *testing.T) {
	i := `
ATTENDEE;RSVP=TRUE;ROLE=REQ-PARTICIPANT;CUTYPE=GROUP:
 mailto:employee-A@example.com
DESCRIPTION:Project XYZ Review Meeting
CATEGORIES:MEETING
CLASS:PUBLIC
`
	expected := []LogicalLine{
		"ATTENDEE;RSVP=TRUE;ROLE=REQ-PARTICIPANT;CUTYPE=GROUP:mailto:employee-A@example.com",
		"DESCRIPTION:Project XYZ Review Meeting",
		"CATEGORIES:MEETING",
		"CLASS:PUBLIC",
	}
	c := NewCalendarStream(strings.NewReader(i))
	var got []LogicalLine
	for {
		l, err := c.ReadLine()
		if len(l) > 0 {
			got = append(got, l)
		}
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, expected, got)
}

func TestUnfold(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		output []LogicalLine
	}{
		{
			name:   "crlf fold with space",
			input:  "SUMMARY:Hello\r\n World\r\n",
			output: []LogicalLine{"SUMMARY:HelloWorld"},
		},
		{
			name:   "lf fold with tab",
			input:  "SUMMARY:Hel\n\tlo\nUID:1\n",
			output: []LogicalLine{"SUMMARY:Hello", "UID:1"},
		},
		{
			name:   "only one whitespace character is removed",
			input:  "DESCRIPTION:a\r\n  b",
			output: []LogicalLine{"DESCRIPTION:a b"},
		},
		{
			name:   "several folds",
			input:  "DESCRIPTION:one\r\n two\r\n three\r\nEND:VEVENT",
			output: []LogicalLine{"DESCRIPTION:onetwothree", "END:VEVENT"},
		},
		{
			name:   "trailing and blank lines are dropped",
			input:  "BEGIN:VEVENT\r\n\r\nEND:VEVENT\r\n\r\n\r\n",
			output: []LogicalLine{"BEGIN:VEVENT", "END:VEVENT"},
		},
		{
			name:   "mixed terminators",
			input:  "A:1\r\nB:2\nC:3",
			output: []LogicalLine{"A:1", "B:2", "C:3"},
		},
		{
			name:   "fold at end of input",
			input:  "A:1\r\n ",
			output: []LogicalLine{"A:1"},
		},
		{
			name:  "empty",
			input: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, Unfold(tc.input))
		})
	}
}
