// Package market serves the static job-market datasets behind the dashboard.
// Every accessor returns a fresh copy; the backing tables never change.
package market

import (
	"sort"
	"strings"

	"github.com/fr4nk3nst1ner/talentscope/internal/models"
	"github.com/fr4nk3nst1ner/talentscope/internal/utils"
)

// Summary returns the headline market counters
func Summary() models.Summary {
	return models.Summary{
		TotalPostings:   totalPostings,
		UniqueRoles:     uniqueRoles,
		UniqueCompanies: uniqueCompanies,
		SkillsTracked:   skillsTracked,
		AvgSalary:       avgSalary,
		TopLocations:    clone(topLocations),
		TopRoles:        clone(topRoles),
	}
}

// Skills returns skill demand in table order
func Skills() []models.SkillDemand {
	return clone(skillsData)
}

// TopSkills returns the n most demanded skills. n <= 0 returns all of them.
func TopSkills(n int) []models.SkillDemand {
	skills := clone(skillsData)
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Demand > skills[j].Demand
	})
	return utils.Head(skills, n)
}

// SkillInfo looks up a skill by name, ignoring case
func SkillInfo(name string) (models.SkillDetail, bool) {
	for _, s := range skillsData {
		if strings.EqualFold(s.Skill, strings.TrimSpace(name)) {
			return models.SkillDetail{SkillDemand: s, SkillMeta: skillMeta[s.Skill]}, true
		}
	}
	return models.SkillDetail{}, false
}

// TrackedSkills returns the sample of tracked skill names
func TrackedSkills() []string {
	return clone(trackedSkills)
}

// Companies returns companies ranked by hiring volume
func Companies() []models.CompanyRank {
	return clone(companiesRanked)
}

// TopCompanies returns the first n ranked companies. n <= 0 returns all of them.
func TopCompanies(n int) []models.CompanyRank {
	return utils.Head(clone(companiesRanked), n)
}

// PostingsByMonth returns the monthly postings trend
func PostingsByMonth() []models.MonthlyPostings {
	return clone(postingsByMonth)
}

// PostingVolume returns the weekly posting volume
func PostingVolume() []models.WeeklyPostings {
	return clone(postingVolume)
}

// AvgSalaryByRole returns the average salary for the core roles
func AvgSalaryByRole() []models.RoleSalary {
	return clone(avgSalaryByRole)
}

// SalaryTrend returns the monthly salary curves
func SalaryTrend() []models.SalaryTrendPoint {
	return clone(salaryTrend)
}

// JobDistribution returns the share of postings per core role
func JobDistribution() []models.JobShare {
	return clone(jobDistribution)
}

// SkillProfiles returns the analyst vs scientist skill comparison
func SkillProfiles() []models.SkillProfilePoint {
	return clone(skillProfiles)
}

// Trends bundles all time series
func Trends() models.Trends {
	return models.Trends{
		PostingsByMonth: PostingsByMonth(),
		PostingVolume:   PostingVolume(),
		SalaryTrend:     SalaryTrend(),
		JobDistribution: JobDistribution(),
		SkillProfiles:   SkillProfiles(),
	}
}

// Locations returns hiring locations in table order
func Locations() []models.LocationStat {
	return clone(locationData)
}

// LocationsByJobs returns hiring locations ranked by job count
func LocationsByJobs() []models.LocationStat {
	locs := clone(locationData)
	sort.SliceStable(locs, func(i, j int) bool {
		return locs[i].Jobs > locs[j].Jobs
	})
	return locs
}

// LocationsBySalary returns hiring locations ranked by average salary
func LocationsBySalary() []models.LocationStat {
	locs := clone(locationData)
	sort.SliceStable(locs, func(i, j int) bool {
		return locs[i].AvgSalary > locs[j].AvgSalary
	})
	return locs
}

// States returns state salary data in table order
func States() []models.StateStat {
	return clone(stateData)
}

// State looks up a state by name, ignoring case
func State(name string) (models.StateStat, bool) {
	for _, s := range stateData {
		if strings.EqualFold(s.State, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return models.StateStat{}, false
}

// StatesBySalary returns states ranked by average salary
func StatesBySalary() []models.StateStat {
	states := clone(stateData)
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].AvgSalary > states[j].AvgSalary
	})
	return states
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
