package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinuteRange(t *testing.T) {
	r := MinuteRange{Start: 600, End: 630}

	assert.True(t, r.Contains(600))
	assert.True(t, r.Contains(629))
	assert.False(t, r.Contains(630))
	assert.Equal(t, 30, r.Length())

	// соприкосновение границами не является пересечением
	assert.False(t, r.Overlaps(MinuteRange{Start: 630, End: 660}))
	assert.False(t, r.Overlaps(MinuteRange{Start: 570, End: 600}))
	assert.True(t, r.Overlaps(MinuteRange{Start: 620, End: 640}))
	assert.True(t, r.Overlaps(MinuteRange{Start: 540, End: 720}))

	assert.True(t, MinuteRange{Start: 540, End: 660}.Covers(r))
	assert.False(t, MinuteRange{Start: 610, End: 660}.Covers(r))
}
