package service

import (
	"math"
	"time"

	"github.com/nandoripardo888/TO--DO/internal/model"
)

// Compatibility score weights. Skills and resources reward matching
// requirements, workload penalizes volunteers already carrying assignments.
const (
	skillWeight        = 40.0
	skillBaseline      = 20.0
	resourceWeight     = 30.0
	resourceBaseline   = 15.0
	maxWorkloadPenalty = 30.0
	fullTimeBonus      = 10.0
)

// weekdayNamesPT maps weekdays to the full Portuguese names stored in
// volunteer availability (matches the enrollment flow's locale).
var weekdayNamesPT = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// isAvailable checks the volunteer's declared day/hour availability against
// the microtask's start instant. Full-time volunteers are always available.
func isAvailable(v *model.VolunteerProfile, mt *model.Microtask) bool {
	if v.IsFullTimeAvailable {
		return true
	}

	if mt.StartDateTime != nil {
		day := weekdayNamesPT[mt.StartDateTime.Weekday()]
		if !v.AvailableDays.Contains(day) {
			return false
		}
	}

	if mt.StartDateTime != nil && v.AvailableHoursStart != "" && v.AvailableHoursEnd != "" {
		// "HH:MM" strings compare correctly lexicographically; bounds inclusive.
		startOfDay := mt.StartDateTime.Format("15:04")
		if startOfDay < v.AvailableHoursStart || startOfDay > v.AvailableHoursEnd {
			return false
		}
	}

	return true
}

// intervalsOverlap reports half-open interval overlap: [aStart,aEnd) and
// [bStart,bEnd) collide iff aStart < bEnd && aEnd > bStart.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// countMatches counts how many required labels the volunteer offers.
func countMatches(required, offered model.StringArray) int {
	n := 0
	for _, r := range required {
		if offered.Contains(r) {
			n++
		}
	}
	return n
}

// compatibilityScore rates a volunteer's fit for a microtask in [0,100].
//
//   - skills: 40 × matched/required, or a flat 20 when nothing is required
//   - resources: 30 × matched/required, or a flat 15
//   - workload: 30 − min(currentWorkload×5, 30)
//   - +10 for full-time availability
//
// Clamped to [0,100], then rounded to the nearest integer.
func compatibilityScore(v *model.VolunteerProfile, mt *model.Microtask, currentWorkload int) int {
	score := 0.0

	if len(mt.RequiredSkills) > 0 {
		score += skillWeight * float64(countMatches(mt.RequiredSkills, v.Skills)) / float64(len(mt.RequiredSkills))
	} else {
		score += skillBaseline
	}

	if len(mt.RequiredResources) > 0 {
		score += resourceWeight * float64(countMatches(mt.RequiredResources, v.Resources)) / float64(len(mt.RequiredResources))
	} else {
		score += resourceBaseline
	}

	penalty := math.Min(float64(currentWorkload)*5, maxWorkloadPenalty)
	score += maxWorkloadPenalty - penalty

	if v.IsFullTimeAvailable {
		score += fullTimeBonus
	}

	return int(math.Round(math.Max(0, math.Min(100, score))))
}
