package models

// ExperienceTier is the seniority bucket used by the salary predictor
type ExperienceTier string

const (
	Junior ExperienceTier = "Junior"
	Mid    ExperienceTier = "Mid"
	Senior ExperienceTier = "Senior"
)

// RoleEntry is a job role with its mid-level base compensation in $K
type RoleEntry struct {
	Label            string `json:"label"`
	BaseCompensation int    `json:"base_compensation"`
}

// LocationEntry is a location with its pay multiplier
type LocationEntry struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// TierEntry pairs an experience tier with its multiplier
type TierEntry struct {
	Tier       ExperienceTier `json:"tier"`
	Multiplier float64        `json:"multiplier"`
}

// EstimateResult is the predicted compensation in $K with its display band
type EstimateResult struct {
	Predicted         int `json:"predicted"`
	LowerBound        int `json:"lower_bound"`
	UpperBound        int `json:"upper_bound"`
	ConfidencePercent int `json:"confidence_percent"`
}

// EstimateRequest holds the three predictor selections
type EstimateRequest struct {
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Location   string `json:"location"`
}

// Estimate is an EstimateResult together with the inputs that produced it
type Estimate struct {
	Request              EstimateRequest `json:"request"`
	Result               EstimateResult  `json:"result"`
	BaseCompensation     int             `json:"base_compensation"`
	ExperienceMultiplier float64         `json:"experience_multiplier"`
	LocationMultiplier   float64         `json:"location_multiplier"`
	RoleKnown            bool            `json:"role_known"`
	ExperienceKnown      bool            `json:"experience_known"`
	LocationKnown        bool            `json:"location_known"`
}

// SkillDemand is the share of postings mentioning a skill and its average salary
type SkillDemand struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
	Salary int    `json:"salary"`
}

// SkillMeta describes a skill and how long it takes to learn
type SkillMeta struct {
	Description            string `json:"description"`
	BeginnerToIntermediate string `json:"beginner_to_intermediate"`
	IntermediateToCoder    string `json:"intermediate_to_coder"`
}

// SkillDetail is a SkillDemand joined with its SkillMeta
type SkillDetail struct {
	SkillDemand
	SkillMeta
}

// CompanyRank is a company ranked by hiring volume
type CompanyRank struct {
	Rank int    `json:"rank"`
	Name string `json:"name"`
	Jobs int    `json:"jobs"`
}

// MonthlyPostings is one point of the monthly postings trend
type MonthlyPostings struct {
	Month    string `json:"month"`
	Postings int    `json:"postings"`
}

// WeeklyPostings is one point of the weekly posting volume series
type WeeklyPostings struct {
	Week     string `json:"week"`
	Postings int    `json:"postings"`
}

// RoleSalary is the average mid-level salary for a role in $K
type RoleSalary struct {
	Role   string `json:"role"`
	Salary int    `json:"salary"`
}

// SalaryTrendPoint is one month of salary curves in $K
type SalaryTrendPoint struct {
	Month     string `json:"month"`
	Analyst   int    `json:"analyst"`
	Scientist int    `json:"scientist"`
	Engineer  int    `json:"engineer"`
}

// JobShare is a role's share of all postings in percent
type JobShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// LocationStat is the hiring volume and average salary of a city
type LocationStat struct {
	City      string `json:"city"`
	Jobs      int    `json:"jobs"`
	AvgSalary int    `json:"avg_salary"`
}

// SkillProfilePoint compares skill emphasis between data scientists and analysts
type SkillProfilePoint struct {
	Subject   string `json:"subject"`
	Scientist int    `json:"scientist"`
	Analyst   int    `json:"analyst"`
}

// StateStat is the salary spread and job count of a US state
type StateStat struct {
	State     string `json:"state"`
	AvgSalary int    `json:"avg_salary"`
	MinSalary int    `json:"min_salary"`
	MaxSalary int    `json:"max_salary"`
	Jobs      int    `json:"jobs"`
}

// LocationCount is a location with its posting count
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// RoleCount is a role title with its posting count
type RoleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Summary holds the headline market counters
type Summary struct {
	TotalPostings   int             `json:"total_postings"`
	UniqueRoles     int             `json:"unique_roles"`
	UniqueCompanies int             `json:"unique_companies"`
	SkillsTracked   int             `json:"skills_tracked"`
	AvgSalary       int             `json:"avg_salary"`
	TopLocations    []LocationCount `json:"top_locations"`
	TopRoles        []RoleCount     `json:"top_roles"`
}

// Trends bundles the time series shown on the overview and salary pages
type Trends struct {
	PostingsByMonth []MonthlyPostings   `json:"postings_by_month"`
	PostingVolume   []WeeklyPostings    `json:"posting_volume"`
	SalaryTrend     []SalaryTrendPoint  `json:"salary_trend"`
	JobDistribution []JobShare          `json:"job_distribution"`
	SkillProfiles   []SkillProfilePoint `json:"skill_profiles"`
}
