package wizard

import (
	"testing"
	"time"

	"conectcliente/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateWithin(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestNewConversationOpensWithGreeting(t *testing.T) {
	conv := NewConversation("sess-1", "client-1")

	assert.Equal(t, models.StageService, conv.Stage)
	assert.False(t, conv.Finalized)
	assert.Empty(t, conv.Answers)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, models.SenderBot, conv.Messages[0].Sender)
	assert.Equal(t, Prompt(models.StageService), conv.Messages[0].Text)
}

func TestSubmitFullConversation(t *testing.T) {
	conv := NewConversation("sess-1", "client-1")
	date := dateWithin(7)

	require.NoError(t, Submit(conv, "Fotos Aéreas"))
	require.NoError(t, Submit(conv, "Copacabana"))
	require.NoError(t, Submit(conv, date))
	require.NoError(t, Submit(conv, "10:00"))

	assert.Equal(t, models.StageConfirmation, conv.Stage)
	assert.True(t, conv.Finalized)
	assert.Equal(t, []string{"Fotos Aéreas", "Copacabana", date, "10:00"}, conv.Answers)

	// Greeting + 4 echoes + 4 follow-up prompts.
	require.Len(t, conv.Messages, 9)
	last := conv.Messages[len(conv.Messages)-1]
	assert.Equal(t, models.SenderBot, last.Sender)
	assert.Equal(t, Prompt(models.StageConfirmation), last.Text)

	// The date echo carries the picker wording, the answer stays raw.
	assert.Equal(t, "Data escolhida: "+date, conv.Messages[5].Text)
}

func TestSubmitRejectsUnknownService(t *testing.T) {
	conv := NewConversation("sess-1", "client-1")

	err := Submit(conv, "Entrega de Pizza")
	assert.ErrorIs(t, err, ErrUnknownService)
	assert.Equal(t, models.StageService, conv.Stage)
	assert.Empty(t, conv.Answers)
	assert.Len(t, conv.Messages, 1)
}

func TestSubmitRejectsEmptyLocation(t *testing.T) {
	for _, value := range []string{"", "   ", "\t\n"} {
		conv := NewConversation("sess-1", "client-1")
		require.NoError(t, Submit(conv, "Fotos Aéreas"))
		before := len(conv.Messages)

		err := Submit(conv, value)
		assert.ErrorIs(t, err, ErrEmptyAnswer)
		assert.Equal(t, models.StageLocation, conv.Stage)
		assert.Equal(t, []string{"Fotos Aéreas"}, conv.Answers)
		assert.Len(t, conv.Messages, before)
	}
}

func TestSubmitDateWindow(t *testing.T) {
	min, max := DateWindow(time.Now())

	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"today", min.Format("2006-01-02"), nil},
		{"upper bound inclusive", max.Format("2006-01-02"), nil},
		{"past the window", max.AddDate(0, 0, 1).Format("2006-01-02"), ErrDateOutOfRange},
		{"yesterday", min.AddDate(0, 0, -1).Format("2006-01-02"), ErrDateOutOfRange},
		{"garbage", "amanhã", ErrInvalidDate},
		{"wrong layout", "01/06/2025", ErrInvalidDate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conv := NewConversation("sess-1", "client-1")
			require.NoError(t, Submit(conv, "Fotos Aéreas"))
			require.NoError(t, Submit(conv, "Copacabana"))

			err := Submit(conv, tc.date)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, models.StageDate, conv.Stage)
				assert.Len(t, conv.Answers, 2)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, models.StageTime, conv.Stage)
				assert.Equal(t, tc.date, conv.Answers[2])
			}
		})
	}
}

func TestSubmitRejectsUnknownSlot(t *testing.T) {
	conv := NewConversation("sess-1", "client-1")
	require.NoError(t, Submit(conv, "Fotos Aéreas"))
	require.NoError(t, Submit(conv, "Copacabana"))
	require.NoError(t, Submit(conv, dateWithin(3)))

	for _, slot := range []string{"07:00", "22:00", "10:30", "meia-noite"} {
		err := Submit(conv, slot)
		assert.ErrorIs(t, err, ErrUnknownSlot)
	}
	assert.Equal(t, models.StageTime, conv.Stage)
	assert.Len(t, conv.Answers, 3)
}

func TestSubmitAfterFinalized(t *testing.T) {
	conv := NewConversation("sess-1", "client-1")
	require.NoError(t, Submit(conv, "Fotos Aéreas"))
	require.NoError(t, Submit(conv, "Copacabana"))
	require.NoError(t, Submit(conv, dateWithin(3)))
	require.NoError(t, Submit(conv, "10:00"))

	err := Submit(conv, "mais uma coisa")
	assert.ErrorIs(t, err, ErrConversationFinished)
	assert.Len(t, conv.Answers, 4)
}

func TestRestartResetsFromAnyState(t *testing.T) {
	conv := NewConversation("sess-1", "client-1")
	require.NoError(t, Submit(conv, "Fotos Aéreas"))
	require.NoError(t, Submit(conv, "Copacabana"))
	require.NoError(t, Submit(conv, dateWithin(3)))
	require.NoError(t, Submit(conv, "10:00"))
	require.True(t, conv.Finalized)

	Restart(conv)

	assert.Equal(t, models.StageService, conv.Stage)
	assert.False(t, conv.Finalized)
	assert.False(t, conv.Persisted)
	assert.Empty(t, conv.Answers)
	require.Len(t, conv.Messages, 1)
	assert.Equal(t, Prompt(models.StageService), conv.Messages[0].Text)

	// Restarted conversation is fully usable again.
	assert.NoError(t, Submit(conv, "Filmagens Aéreas"))
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 14)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "21:00", slots[len(slots)-1])
}

func TestServiceOptionsMatchCatalogue(t *testing.T) {
	options := ServiceOptions()
	require.Len(t, options, 7)
	assert.Contains(t, options, "Fotos Aéreas")
	assert.Contains(t, options, "Inspeções de Estruturas")
}
