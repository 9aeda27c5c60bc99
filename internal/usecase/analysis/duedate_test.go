package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Monday, June 2nd 2025
var fixedBase = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

func fixedResolver() *DueDateResolver {
	r := NewDueDateResolver(nil)
	r.now = func() time.Time { return fixedBase }
	return r
}

func TestResolveAbsoluteISODate(t *testing.T) {
	r := fixedResolver()
	assert.Equal(t, "2025-03-01", r.Resolve("finish the report by 2025-03-01"))
}

func TestResolveRelativeOffset(t *testing.T) {
	r := fixedResolver()
	assert.Equal(t, "2025-06-05", r.Resolve("complete the draft in 3 days"))
	assert.Equal(t, "2025-06-16", r.Resolve("ship the feature in 2 weeks"))
}

func TestResolveTodayAndTomorrow(t *testing.T) {
	r := fixedResolver()
	assert.Equal(t, "2025-06-03", r.Resolve("send the final slides tomorrow"))
	assert.Equal(t, "2025-06-02", r.Resolve("wrap this up today"))
}

func TestResolveEndOfPeriod(t *testing.T) {
	r := fixedResolver()
	assert.Equal(t, "2025-06-30", r.Resolve("close the accounts end of month"))
	assert.Equal(t, "2025-12-31", r.Resolve("finalize the audit end of year"))
}

func TestResolveNoDatePhrase(t *testing.T) {
	r := fixedResolver()
	assert.Equal(t, "", r.Resolve("send the minutes to everyone"))
	assert.Equal(t, "", r.Resolve(""))
}
