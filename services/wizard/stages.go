package wizard

import (
	"fmt"
	"time"

	"conectcliente/models"
	"conectcliente/services/catalog"
)

// stagePrompts holds the bot prompt for each stage, in stage order.
var stagePrompts = [...]string{
	models.StageService:      "Olá! Bem-vindo à ConectCliente. 🚁\nO que você deseja?",
	models.StageLocation:     "Legal! Em qual local do RJ deseja realizar o serviço?",
	models.StageDate:         "Ótimo! Quando você gostaria de agendar?",
	models.StageTime:         "Maravilha! Qual seria o horário ideal?",
	models.StageConfirmation: "Perfeito! Entraremos em contato para finalizar o agendamento. ✅",
}

// Prompt returns the bot prompt for a stage.
func Prompt(s models.Stage) string {
	return stagePrompts[s]
}

// ServiceOptions returns the service labels offered at the first stage.
func ServiceOptions() []string {
	return catalog.ServiceTitles()
}

// bookingWindowMonths bounds how far ahead a flight can be scheduled.
const bookingWindowMonths = 2

// DateWindow returns the inclusive [min, max] range of selectable dates,
// anchored on the day of ref.
func DateWindow(ref time.Time) (min, max time.Time) {
	min = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	max = min.AddDate(0, bookingWindowMonths, 0)
	return min, max
}

const (
	firstSlotHour = 8
	slotCount     = 14
)

// TimeSlots returns the fixed hour-aligned slots, "08:00" through "21:00".
func TimeSlots() []string {
	slots := make([]string, slotCount)
	for i := range slots {
		slots[i] = fmt.Sprintf("%02d:00", firstSlotHour+i)
	}
	return slots
}
