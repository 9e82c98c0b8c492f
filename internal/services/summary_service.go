package services

import (
	"math"

	"github.com/terraincognita07/vital/internal/models"
)

// summaryWindow is how many recent rows of each log kind feed the rollup.
const summaryWindow = 30

type SummaryEntryReader interface {
	Latest(limit int) ([]models.Entry, error)
}

type SummaryWeightReader interface {
	Latest(limit int) ([]models.Weight, error)
}

type SummaryMoodReader interface {
	Latest(limit int) ([]models.Mood, error)
}

type SummaryProfileReader interface {
	Read() (models.Profile, bool, error)
}

type SummaryGoalsReader interface {
	Read() (models.Goals, bool, error)
}

type SummaryService struct {
	entries SummaryEntryReader
	weights SummaryWeightReader
	moods   SummaryMoodReader
	profile SummaryProfileReader
	goals   SummaryGoalsReader
}

func NewSummaryService(
	entries SummaryEntryReader,
	weights SummaryWeightReader,
	moods SummaryMoodReader,
	profile SummaryProfileReader,
	goals SummaryGoalsReader,
) *SummaryService {
	return &SummaryService{
		entries: entries,
		weights: weights,
		moods:   moods,
		profile: profile,
		goals:   goals,
	}
}

type Averages struct {
	Steps      float64 `json:"steps"`
	WaterML    float64 `json:"water_ml"`
	SleepHours float64 `json:"sleep_hours"`
}

// Summary is the rollup over goals, profile and the recent log windows.
// Goals and Profile are `any` so a never-created singleton serializes as {}
// rather than null.
type Summary struct {
	Goals    any             `json:"goals"`
	Profile  any             `json:"profile"`
	Averages Averages        `json:"averages"`
	Streak   int             `json:"streak"`
	Weights  []models.Weight `json:"weights"`
	Moods    []models.Mood   `json:"moods"`
	BMI      *float64        `json:"bmi"`
}

// Build assembles the summary. Missing data degrades to zero/null/empty
// values; only storage failures surface as errors.
func (service *SummaryService) Build() (Summary, error) {
	goals, goalsFound, err := service.goals.Read()
	if err != nil {
		return Summary{}, err
	}
	profile, profileFound, err := service.profile.Read()
	if err != nil {
		return Summary{}, err
	}
	entries, err := service.entries.Latest(summaryWindow)
	if err != nil {
		return Summary{}, err
	}
	weights, err := service.weights.Latest(summaryWindow)
	if err != nil {
		return Summary{}, err
	}
	moods, err := service.moods.Latest(summaryWindow)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Goals:   map[string]any{},
		Profile: map[string]any{},
		Averages: Averages{
			Steps:      averageIntField(entries, func(entry models.Entry) *int64 { return entry.Steps }),
			WaterML:    averageIntField(entries, func(entry models.Entry) *int64 { return entry.WaterML }),
			SleepHours: averageFloatField(entries, func(entry models.Entry) *float64 { return entry.SleepHours }),
		},
		Streak:  goalStreak(goals, entries),
		Weights: weights,
		Moods:   moods,
		BMI:     bodyMassIndex(profile, weights),
	}
	if goalsFound {
		summary.Goals = goals
	}
	if profileFound {
		summary.Profile = profile
	}
	return summary, nil
}

// averageIntField averages a field over the rows where it is set. Rows with
// a nil field drop out of both numerator and denominator.
func averageIntField(entries []models.Entry, field func(models.Entry) *int64) float64 {
	sum := 0.0
	count := 0
	for _, entry := range entries {
		if value := field(entry); value != nil {
			sum += float64(*value)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return roundTo2(sum / float64(count))
}

func averageFloatField(entries []models.Entry, field func(models.Entry) *float64) float64 {
	sum := 0.0
	count := 0
	for _, entry := range entries {
		if value := field(entry); value != nil {
			sum += *value
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return roundTo2(sum / float64(count))
}

// goalStreak counts consecutive satisfying rows walking newest-first.
// A goal that is unset or zero never gates; an unset entry field counts as
// zero. Rows sharing a date each gate independently.
func goalStreak(goals models.Goals, entries []models.Entry) int {
	stepsGoal := intOrZero(goals.StepsGoal)
	waterGoal := intOrZero(goals.WaterGoal)
	sleepGoal := floatOrZero(goals.SleepGoal)

	streak := 0
	for _, entry := range entries {
		satisfied := true
		if stepsGoal > 0 {
			satisfied = satisfied && intOrZero(entry.Steps) >= stepsGoal
		}
		if waterGoal > 0 {
			satisfied = satisfied && intOrZero(entry.WaterML) >= waterGoal
		}
		if sleepGoal > 0 {
			satisfied = satisfied && floatOrZero(entry.SleepHours) >= sleepGoal
		}
		if !satisfied {
			break
		}
		streak++
	}
	return streak
}

// bodyMassIndex prefers the profile weight and falls back to the most recent
// weight record. Without a known height and weight it stays nil.
func bodyMassIndex(profile models.Profile, weights []models.Weight) *float64 {
	if profile.HeightCM == nil || *profile.HeightCM == 0 {
		return nil
	}

	weightKG := 0.0
	switch {
	case profile.WeightKG != nil && *profile.WeightKG != 0:
		weightKG = *profile.WeightKG
	case len(weights) > 0 && weights[0].WeightKG != nil && *weights[0].WeightKG != 0:
		weightKG = *weights[0].WeightKG
	default:
		return nil
	}

	heightM := *profile.HeightCM / 100.0
	bmi := roundTo2(weightKG / (heightM * heightM))
	return &bmi
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

func intOrZero(value *int64) int64 {
	if value == nil {
		return 0
	}
	return *value
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
