package renamer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportApplied(t *testing.T) {
	report := Report{Outcomes: []Outcome{
		{From: "/a", To: "/b", Applied: true},
		{From: "/c", To: "/d"},
		{From: "/e", To: "/f", Applied: true},
	}}
	assert.Equal(t, 2, report.Applied())
}

func TestReportFailures(t *testing.T) {
	boom := errors.New("boom")
	report := Report{Outcomes: []Outcome{
		{From: "/a", To: "/b", Applied: true},
		{From: "/c", To: "/d", Err: boom},
	}}

	failures := report.Failures()
	assert.Len(t, failures, 1)
	assert.Equal(t, "/c", failures[0].From)
	assert.True(t, failures[0].Failed())
}

func TestOutcomeFailed(t *testing.T) {
	assert.False(t, Outcome{Applied: true}.Failed())
	assert.False(t, Outcome{}.Failed())
	assert.True(t, Outcome{Err: errors.New("x")}.Failed())
}
