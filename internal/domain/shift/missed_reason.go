package shift

import "strings"

// MissedReason explains why a scheduled shift was not worked.
type MissedReason string

const (
	MissedReasonSick           MissedReason = "sick"
	MissedReasonShiftCancelled MissedReason = "shift_cancelled"
	MissedReasonPersonal       MissedReason = "personal"
	MissedReasonHoliday        MissedReason = "holiday"
	MissedReasonNoShow         MissedReason = "no_show"
	MissedReasonWeather        MissedReason = "weather"
	MissedReasonOther          MissedReason = "other"
)

var MissedReasonValues = []string{
	string(MissedReasonSick),
	string(MissedReasonShiftCancelled),
	string(MissedReasonPersonal),
	string(MissedReasonHoliday),
	string(MissedReasonNoShow),
	string(MissedReasonWeather),
	string(MissedReasonOther),
}

// legacyMissedReasons maps the display strings older clients wrote into the
// notes field, in English, French and Spanish.
var legacyMissedReasons = map[string]MissedReason{
	"sick":                MissedReasonSick,
	"malade":              MissedReasonSick,
	"enfermo":             MissedReasonSick,
	"shift cancelled":     MissedReasonShiftCancelled,
	"quart annulé":        MissedReasonShiftCancelled,
	"turno cancelado":     MissedReasonShiftCancelled,
	"personal day":        MissedReasonPersonal,
	"personal":            MissedReasonPersonal,
	"personal emergency":  MissedReasonPersonal,
	"jour personnel":      MissedReasonPersonal,
	"urgence personnelle": MissedReasonPersonal,
	"día personal":        MissedReasonPersonal,
	"emergencia personal": MissedReasonPersonal,
	"holiday":             MissedReasonHoliday,
	"vacation":            MissedReasonHoliday,
	"jour férié":          MissedReasonHoliday,
	"día festivo":         MissedReasonHoliday,
	"no-show":             MissedReasonNoShow,
	"no show":             MissedReasonNoShow,
	"absence":             MissedReasonNoShow,
	"absent":              MissedReasonNoShow,
	"ausencia":            MissedReasonNoShow,
	"no presentado":       MissedReasonNoShow,
	"weather":             MissedReasonWeather,
	"météo":               MissedReasonWeather,
	"clima":               MissedReasonWeather,
	"other":               MissedReasonOther,
	"autre":               MissedReasonOther,
	"otro":                MissedReasonOther,
}

// ParseLegacyMissedReason recognizes a reason stored as free text by older
// clients. It reports false for notes that are not a known reason.
func ParseLegacyMissedReason(notes string) (MissedReason, bool) {
	r, ok := legacyMissedReasons[strings.ToLower(strings.TrimSpace(notes))]
	return r, ok
}

func (r MissedReason) Valid() bool {
	for _, v := range MissedReasonValues {
		if string(r) == v {
			return true
		}
	}
	return false
}

// AdoptLegacyMissedReason fills in MissedReason for a missed shift written by
// an older client, which kept the reason as the whole of its notes. The notes
// are cleared once they have been recognized.
func (s *Shift) AdoptLegacyMissedReason() {
	if s.Status != StatusMissed || s.MissedReason != nil || s.Notes == nil {
		return
	}
	reason, ok := ParseLegacyMissedReason(*s.Notes)
	if !ok {
		return
	}
	s.MissedReason = &reason
	s.Notes = nil
}
