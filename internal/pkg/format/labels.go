package format

import (
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Label keys. The English text doubles as the key.
const (
	LabelDate          = "Date"
	LabelStatus        = "Status"
	LabelEmployer      = "Employer"
	LabelHours         = "Hours"
	LabelSales         = "Sales"
	LabelTips          = "Tips"
	LabelTipOut        = "Tip Out"
	LabelOther         = "Other"
	LabelWages         = "Wages"
	LabelNetWages      = "Net Wages"
	LabelTotalRevenue  = "Total Revenue"
	LabelTipPercentage = "Tip %"
	LabelHourlyRate    = "Hourly Rate"
	LabelNotes         = "Notes"
	LabelPeriod        = "Period"
	LabelWorkedShifts  = "Worked Shifts"
	LabelMissedShifts  = "Missed Shifts"
	LabelShifts        = "Shifts"
	LabelSummary       = "Summary"
	LabelWorked        = "Worked"
	LabelScheduled     = "Scheduled"
	LabelMissed        = "Missed"

	LabelToday     = "Today"
	LabelWeek      = "Week"
	LabelMonth     = "Month"
	LabelYear      = "Year"
	LabelFourWeeks = "4 Weeks"
	LabelCustom    = "Custom"
)

var translations = map[language.Tag]map[string]string{
	language.French: {
		LabelDate:          "Date",
		LabelStatus:        "Statut",
		LabelEmployer:      "Employeur",
		LabelHours:         "Heures",
		LabelSales:         "Ventes",
		LabelTips:          "Pourboires",
		LabelTipOut:        "Partage des pourboires",
		LabelOther:         "Autre",
		LabelWages:         "Salaire",
		LabelNetWages:      "Salaire net",
		LabelTotalRevenue:  "Revenu total",
		LabelTipPercentage: "% pourboire",
		LabelHourlyRate:    "Taux horaire",
		LabelNotes:         "Notes",
		LabelPeriod:        "Période",
		LabelWorkedShifts:  "Quarts travaillés",
		LabelMissedShifts:  "Quarts manqués",
		LabelShifts:        "Quarts",
		LabelSummary:       "Résumé",
		LabelWorked:        "Travaillé",
		LabelScheduled:     "Planifié",
		LabelMissed:        "Manqué",
		LabelToday:         "Aujourd'hui",
		LabelWeek:          "Semaine",
		LabelMonth:         "Mois",
		LabelYear:          "Année",
		LabelFourWeeks:     "4 semaines",
		LabelCustom:        "Personnalisé",
	},
	language.Spanish: {
		LabelDate:          "Fecha",
		LabelStatus:        "Estado",
		LabelEmployer:      "Empleador",
		LabelHours:         "Horas",
		LabelSales:         "Ventas",
		LabelTips:          "Propinas",
		LabelTipOut:        "Reparto de propinas",
		LabelOther:         "Otro",
		LabelWages:         "Salario",
		LabelNetWages:      "Salario neto",
		LabelTotalRevenue:  "Ingresos totales",
		LabelTipPercentage: "% propina",
		LabelHourlyRate:    "Tarifa por hora",
		LabelNotes:         "Notas",
		LabelPeriod:        "Período",
		LabelWorkedShifts:  "Turnos trabajados",
		LabelMissedShifts:  "Turnos perdidos",
		LabelShifts:        "Turnos",
		LabelSummary:       "Resumen",
		LabelWorked:        "Trabajado",
		LabelScheduled:     "Programado",
		LabelMissed:        "Perdido",
		LabelToday:         "Hoy",
		LabelWeek:          "Semana",
		LabelMonth:         "Mes",
		LabelYear:          "Año",
		LabelFourWeeks:     "4 semanas",
		LabelCustom:        "Personalizado",
	},
}

var periodLabels = map[earnings.Period]string{
	earnings.PeriodToday:     LabelToday,
	earnings.PeriodWeek:      LabelWeek,
	earnings.PeriodMonth:     LabelMonth,
	earnings.PeriodYear:      LabelYear,
	earnings.PeriodFourWeeks: LabelFourWeeks,
	earnings.PeriodCustom:    LabelCustom,
}

// PeriodLabel returns the label key for p. Unknown periods pass through.
func PeriodLabel(p earnings.Period) string {
	if key, ok := periodLabels[p]; ok {
		return key
	}
	return string(p)
}

func init() {
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}
