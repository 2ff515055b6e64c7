package market

import "github.com/fr4nk3nst1ner/talentscope/internal/models"

// Headline counters
const (
	totalPostings   = 1300000
	uniqueRoles     = 185
	uniqueCompanies = 48500
	skillsTracked   = 847
	avgSalary       = 118
)

var topLocations = []models.LocationCount{
	{Location: "New York, NY", Count: 15432},
	{Location: "San Francisco, CA", Count: 13289},
	{Location: "Remote", Count: 11876},
}

var topRoles = []models.RoleCount{
	{Title: "Data Analyst", Count: 25410},
	{Title: "Data Scientist", Count: 18976},
	{Title: "ML Engineer", Count: 8745},
}

var skillsData = []models.SkillDemand{
	{Skill: "Python", Demand: 78, Salary: 125},
	{Skill: "SQL", Demand: 72, Salary: 115},
	{Skill: "Tableau", Demand: 58, Salary: 108},
	{Skill: "R", Demand: 42, Salary: 112},
	{Skill: "Power BI", Demand: 51, Salary: 105},
	{Skill: "Spark", Demand: 38, Salary: 135},
	{Skill: "AWS", Demand: 45, Salary: 140},
	{Skill: "TensorFlow", Demand: 32, Salary: 145},
	{Skill: "Excel", Demand: 65, Salary: 95},
	{Skill: "Java", Demand: 35, Salary: 130},
}

var skillMeta = map[string]models.SkillMeta{
	"Python": {
		Description:            "A general-purpose programming language used for data analysis, ML, automation, and scripting. Dominant in data roles.",
		BeginnerToIntermediate: "2–4 months",
		IntermediateToCoder:    "6–12 months",
	},
	"SQL": {
		Description:            "Structured Query Language for querying and managing relational databases. Essential for analysts and engineers.",
		BeginnerToIntermediate: "1–2 months",
		IntermediateToCoder:    "3–6 months",
	},
	"Tableau": {
		Description:            "Visual analytics and BI tool for building interactive dashboards and reports from data.",
		BeginnerToIntermediate: "1–2 months",
		IntermediateToCoder:    "3–5 months",
	},
	"R": {
		Description:            "Statistical programming language for data analysis, visualization, and research. Strong in academia and biostats.",
		BeginnerToIntermediate: "2–3 months",
		IntermediateToCoder:    "5–9 months",
	},
	"Power BI": {
		Description:            "Microsoft's business intelligence platform for dashboards, reports, and data modeling.",
		BeginnerToIntermediate: "1–2 months",
		IntermediateToCoder:    "3–6 months",
	},
	"Spark": {
		Description:            "Distributed computing framework for large-scale data processing. Core for data engineering.",
		BeginnerToIntermediate: "2–4 months",
		IntermediateToCoder:    "6–12 months",
	},
	"AWS": {
		Description:            "Amazon Web Services: cloud platform for storage, compute, and data services (S3, Redshift, EMR, etc.).",
		BeginnerToIntermediate: "2–4 months",
		IntermediateToCoder:    "6–18 months",
	},
	"TensorFlow": {
		Description:            "Google's ML/deep learning framework for building and deploying models.",
		BeginnerToIntermediate: "3–5 months",
		IntermediateToCoder:    "9–18 months",
	},
	"Excel": {
		Description:            "Spreadsheet tool for analysis, pivot tables, and reporting. Ubiquitous in business and finance.",
		BeginnerToIntermediate: "2–4 weeks",
		IntermediateToCoder:    "2–4 months",
	},
	"Java": {
		Description:            "Object-oriented language used in big-data stacks (Hadoop, Spark, Kafka) and backend systems.",
		BeginnerToIntermediate: "3–6 months",
		IntermediateToCoder:    "12–24 months",
	},
}

// Sample of the tracked skills, shown in the Skills Tracked card
var trackedSkills = []string{
	"Python", "SQL", "R", "Excel", "Tableau", "Power BI", "Spark", "AWS", "TensorFlow", "Java",
	"Machine Learning", "Statistics", "ETL", "Data Modeling", "A/B Testing", "Git", "Docker", "Kafka",
	"Snowflake", "dbt", "Airflow", "Pandas", "Scikit-learn", "PyTorch", "NoSQL", "MongoDB", "Redshift",
	"BigQuery", "Looker", "SAS", "SPSS", "Jupyter", "Databricks", "Azure", "GCP", "CI/CD", "API design",
}

var companiesRanked = []models.CompanyRank{
	{Rank: 1, Name: "Amazon", Jobs: 12400},
	{Rank: 2, Name: "Google", Jobs: 9820},
	{Rank: 3, Name: "Microsoft", Jobs: 8750},
	{Rank: 4, Name: "Meta", Jobs: 6120},
	{Rank: 5, Name: "Apple", Jobs: 5890},
	{Rank: 6, Name: "JPMorgan Chase", Jobs: 4520},
	{Rank: 7, Name: "Deloitte", Jobs: 4180},
	{Rank: 8, Name: "Accenture", Jobs: 3950},
	{Rank: 9, Name: "IBM", Jobs: 3620},
	{Rank: 10, Name: "Netflix", Jobs: 2180},
	{Rank: 11, Name: "Salesforce", Jobs: 1950},
	{Rank: 12, Name: "Adobe", Jobs: 1720},
	{Rank: 13, Name: "Uber", Jobs: 1580},
	{Rank: 14, Name: "Spotify", Jobs: 920},
	{Rank: 15, Name: "Stripe", Jobs: 780},
}

var postingsByMonth = []models.MonthlyPostings{
	{Month: "Mar", Postings: 1120000},
	{Month: "Apr", Postings: 1150000},
	{Month: "May", Postings: 1190000},
	{Month: "Jun", Postings: 1220000},
	{Month: "Jul", Postings: 1260000},
	{Month: "Aug", Postings: 1300000},
}

var avgSalaryByRole = []models.RoleSalary{
	{Role: "Data Analyst", Salary: 85},
	{Role: "Data Scientist", Salary: 115},
	{Role: "Data Engineer", Salary: 125},
	{Role: "ML Engineer", Salary: 140},
	{Role: "Business Analyst", Salary: 82},
	{Role: "BI Analyst", Salary: 90},
}

var salaryTrend = []models.SalaryTrendPoint{
	{Month: "Jan", Analyst: 85, Scientist: 115, Engineer: 125},
	{Month: "Feb", Analyst: 87, Scientist: 118, Engineer: 128},
	{Month: "Mar", Analyst: 86, Scientist: 120, Engineer: 132},
	{Month: "Apr", Analyst: 90, Scientist: 122, Engineer: 130},
	{Month: "May", Analyst: 92, Scientist: 125, Engineer: 135},
	{Month: "Jun", Analyst: 91, Scientist: 128, Engineer: 138},
	{Month: "Jul", Analyst: 95, Scientist: 130, Engineer: 140},
	{Month: "Aug", Analyst: 93, Scientist: 132, Engineer: 142},
}

var jobDistribution = []models.JobShare{
	{Name: "Data Analyst", Value: 35},
	{Name: "Data Scientist", Value: 28},
	{Name: "Data Engineer", Value: 22},
	{Name: "ML Engineer", Value: 15},
}

var locationData = []models.LocationStat{
	{City: "San Francisco", Jobs: 4200, AvgSalary: 155},
	{City: "New York", Jobs: 3800, AvgSalary: 145},
	{City: "Seattle", Jobs: 2900, AvgSalary: 150},
	{City: "Austin", Jobs: 2100, AvgSalary: 128},
	{City: "Chicago", Jobs: 1800, AvgSalary: 120},
	{City: "Boston", Jobs: 1600, AvgSalary: 138},
	{City: "Denver", Jobs: 1200, AvgSalary: 118},
	{City: "Remote", Jobs: 5500, AvgSalary: 132},
}

var skillProfiles = []models.SkillProfilePoint{
	{Subject: "Python", Scientist: 92, Analyst: 78},
	{Subject: "SQL", Scientist: 88, Analyst: 85},
	{Subject: "ML", Scientist: 75, Analyst: 45},
	{Subject: "Stats", Scientist: 82, Analyst: 70},
	{Subject: "Viz", Scientist: 70, Analyst: 90},
	{Subject: "Cloud", Scientist: 65, Analyst: 40},
}

var postingVolume = []models.WeeklyPostings{
	{Week: "W1", Postings: 2400},
	{Week: "W2", Postings: 2800},
	{Week: "W3", Postings: 3100},
	{Week: "W4", Postings: 2900},
	{Week: "W5", Postings: 3500},
	{Week: "W6", Postings: 3800},
	{Week: "W7", Postings: 4200},
	{Week: "W8", Postings: 4600},
}

// State-level salary spread in $K
var stateData = []models.StateStat{
	{State: "Alabama", AvgSalary: 95, MinSalary: 62, MaxSalary: 145, Jobs: 1240},
	{State: "Alaska", AvgSalary: 112, MinSalary: 78, MaxSalary: 165, Jobs: 180},
	{State: "Arizona", AvgSalary: 105, MinSalary: 68, MaxSalary: 155, Jobs: 2180},
	{State: "Arkansas", AvgSalary: 88, MinSalary: 55, MaxSalary: 128, Jobs: 620},
	{State: "California", AvgSalary: 142, MinSalary: 85, MaxSalary: 210, Jobs: 18200},
	{State: "Colorado", AvgSalary: 125, MinSalary: 82, MaxSalary: 178, Jobs: 3450},
	{State: "Connecticut", AvgSalary: 128, MinSalary: 80, MaxSalary: 185, Jobs: 1920},
	{State: "Delaware", AvgSalary: 118, MinSalary: 72, MaxSalary: 168, Jobs: 480},
	{State: "District of Columbia", AvgSalary: 138, MinSalary: 88, MaxSalary: 195, Jobs: 2100},
	{State: "Florida", AvgSalary: 102, MinSalary: 65, MaxSalary: 152, Jobs: 5200},
	{State: "Georgia", AvgSalary: 108, MinSalary: 70, MaxSalary: 162, Jobs: 4100},
	{State: "Hawaii", AvgSalary: 98, MinSalary: 62, MaxSalary: 142, Jobs: 340},
	{State: "Idaho", AvgSalary: 92, MinSalary: 58, MaxSalary: 132, Jobs: 520},
	{State: "Illinois", AvgSalary: 118, MinSalary: 75, MaxSalary: 172, Jobs: 4850},
	{State: "Indiana", AvgSalary: 98, MinSalary: 62, MaxSalary: 142, Jobs: 2100},
	{State: "Iowa", AvgSalary: 94, MinSalary: 60, MaxSalary: 135, Jobs: 880},
	{State: "Kansas", AvgSalary: 96, MinSalary: 61, MaxSalary: 138, Jobs: 720},
	{State: "Kentucky", AvgSalary: 92, MinSalary: 58, MaxSalary: 132, Jobs: 1150},
	{State: "Louisiana", AvgSalary: 94, MinSalary: 59, MaxSalary: 138, Jobs: 980},
	{State: "Maine", AvgSalary: 98, MinSalary: 62, MaxSalary: 142, Jobs: 420},
	{State: "Maryland", AvgSalary: 125, MinSalary: 78, MaxSalary: 182, Jobs: 3200},
	{State: "Massachusetts", AvgSalary: 135, MinSalary: 85, MaxSalary: 198, Jobs: 6100},
	{State: "Michigan", AvgSalary: 105, MinSalary: 68, MaxSalary: 155, Jobs: 2650},
	{State: "Minnesota", AvgSalary: 115, MinSalary: 72, MaxSalary: 168, Jobs: 2280},
	{State: "Mississippi", AvgSalary: 85, MinSalary: 52, MaxSalary: 125, Jobs: 540},
	{State: "Missouri", AvgSalary: 99, MinSalary: 63, MaxSalary: 145, Jobs: 1950},
	{State: "Montana", AvgSalary: 92, MinSalary: 58, MaxSalary: 132, Jobs: 280},
	{State: "Nebraska", AvgSalary: 95, MinSalary: 60, MaxSalary: 138, Jobs: 580},
	{State: "Nevada", AvgSalary: 108, MinSalary: 68, MaxSalary: 158, Jobs: 920},
	{State: "New Hampshire", AvgSalary: 118, MinSalary: 74, MaxSalary: 172, Jobs: 620},
	{State: "New Jersey", AvgSalary: 128, MinSalary: 80, MaxSalary: 188, Jobs: 4200},
	{State: "New Mexico", AvgSalary: 98, MinSalary: 62, MaxSalary: 142, Jobs: 480},
	{State: "New York", AvgSalary: 132, MinSalary: 82, MaxSalary: 195, Jobs: 11200},
	{State: "North Carolina", AvgSalary: 108, MinSalary: 68, MaxSalary: 158, Jobs: 3850},
	{State: "North Dakota", AvgSalary: 96, MinSalary: 60, MaxSalary: 138, Jobs: 220},
	{State: "Ohio", AvgSalary: 100, MinSalary: 64, MaxSalary: 148, Jobs: 3450},
	{State: "Oklahoma", AvgSalary: 92, MinSalary: 58, MaxSalary: 132, Jobs: 820},
	{State: "Oregon", AvgSalary: 118, MinSalary: 74, MaxSalary: 172, Jobs: 2180},
	{State: "Pennsylvania", AvgSalary: 112, MinSalary: 70, MaxSalary: 165, Jobs: 4250},
	{State: "Rhode Island", AvgSalary: 115, MinSalary: 72, MaxSalary: 168, Jobs: 380},
	{State: "South Carolina", AvgSalary: 95, MinSalary: 60, MaxSalary: 138, Jobs: 1180},
	{State: "South Dakota", AvgSalary: 88, MinSalary: 55, MaxSalary: 128, Jobs: 240},
	{State: "Tennessee", AvgSalary: 98, MinSalary: 62, MaxSalary: 145, Jobs: 2280},
	{State: "Texas", AvgSalary: 112, MinSalary: 70, MaxSalary: 168, Jobs: 9200},
	{State: "Utah", AvgSalary: 108, MinSalary: 68, MaxSalary: 158, Jobs: 1250},
	{State: "Vermont", AvgSalary: 105, MinSalary: 66, MaxSalary: 152, Jobs: 280},
	{State: "Virginia", AvgSalary: 122, MinSalary: 76, MaxSalary: 178, Jobs: 4850},
	{State: "Washington", AvgSalary: 132, MinSalary: 82, MaxSalary: 192, Jobs: 4850},
	{State: "West Virginia", AvgSalary: 88, MinSalary: 55, MaxSalary: 125, Jobs: 320},
	{State: "Wisconsin", AvgSalary: 102, MinSalary: 65, MaxSalary: 148, Jobs: 1850},
	{State: "Wyoming", AvgSalary: 95, MinSalary: 60, MaxSalary: 138, Jobs: 140},
	{State: "Puerto Rico", AvgSalary: 72, MinSalary: 45, MaxSalary: 105, Jobs: 420},
}
