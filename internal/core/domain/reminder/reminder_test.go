package reminder

import (
	"encoding/json"
	"strings"
	"testing"

	e "assistant/internal/core/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderValidate(t *testing.T) {
	cases := []struct {
		id      string
		r       Reminder
		isValid bool
	}{
		{"valid", Reminder{Text: "call mom", At: MustTime(15, 30)}, true},
		{"midnight", Reminder{Text: "sleep", At: Time{}}, true},
		{"empty text", Reminder{Text: "", At: MustTime(15, 30)}, false},
		{"long text", Reminder{Text: strings.Repeat("a", 1000), At: MustTime(15, 30)}, true},
		{"invalid time", Reminder{Text: "call mom", At: Time{hour: 25}}, false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			err := testcase.r.Validate()
			if testcase.isValid {
				assert.Nil(t, err)
				return
			}
			var invalidState *e.InvalidStateError
			assert.ErrorAs(t, err, &invalidState)
		})
	}
}

func TestReminderJSON(t *testing.T) {
	reminders := []Reminder{
		{Text: "call mom", At: MustTime(15, 30)},
		{Text: "t", At: MustTime(9, 0)},
	}

	data, err := json.Marshal(reminders)
	require.Nil(t, err)
	require.JSONEq(t, `[{"text":"call mom","time":"15:30"},{"text":"t","time":"09:00"}]`, string(data))

	var parsed []Reminder
	require.Nil(t, json.Unmarshal(data, &parsed))
	require.Equal(t, reminders, parsed)
}

func TestReminderIsDue(t *testing.T) {
	r := Reminder{Text: "t", At: MustTime(9, 0)}
	assert.True(t, r.IsDue(MustTime(9, 0)))
	assert.False(t, r.IsDue(MustTime(9, 1)))
	assert.False(t, r.IsDue(MustTime(21, 0)))
}
