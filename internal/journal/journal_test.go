package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partysheet/internal/travel"
)

func TestGenerate_ReturnsPDF(t *testing.T) {
	msgs := []travel.ChatMessage{
		{Content: "<b>Navigate</b>: 1 swords", Journal: "Lead the Way", CreatedAt: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)},
		{Content: "Wolf<br>A grey wolf", Journal: "Hunt"},
		{Content: "Hello"},
	}
	b, err := Generate("The Raven's Road", msgs)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerate_EmptyLog(t *testing.T) {
	b, err := Generate("", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestSections_GroupsInFirstUseOrder(t *testing.T) {
	msgs := []travel.ChatMessage{
		{Content: "a", Journal: "Hunt"},
		{Content: "b", Journal: "Fish"},
		{Content: "c", Journal: "Hunt"},
		{Content: "d"},
	}
	got := Sections(msgs)
	require.Len(t, got, 3)
	assert.Equal(t, "Hunt", got[0].Name)
	assert.Len(t, got[0].Messages, 2)
	assert.Equal(t, "Fish", got[1].Name)
	assert.Equal(t, otherSection, got[2].Name, "untagged messages")
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<b>Bold</b> text", "Bold text"},
		{"You've spotted a prey!<br><i>Create a table.</i>", "You've spotted a prey!\nCreate a table."},
		{"a &amp; b", "a & b"},
		{"  plain  ", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlainText(tt.in), "PlainText(%q)", tt.in)
	}
}

func TestWavyRectPoints_Closes(t *testing.T) {
	pts := wavyRectPoints(0, 0, 100, 50, 4, 0)
	require.Len(t, pts, 17)
	assert.Equal(t, pts[0], pts[len(pts)-1], "polygon closes")
}
