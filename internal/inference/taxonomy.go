package inference

import "github.com/garnizeh/staffing/pkg/models"

// GeneralDepartment is returned when no department family matches.
const GeneralDepartment = "General"

// Departments is ordered: the first family with a matching keyword wins, so
// more specific families come first.
var Departments = Classifier[string]{
	Rules: []Rule[string]{
		{Value: "Healthcare", Keywords: []string{
			"nurse*", "nursing", "physician*", "doctor", "medical", "clinical", "clinician*",
			"health*", "pharmac*", "therapist*", "therapy", "caregiver*", "dental", "dentist*",
			"surgeon*", "paramedic*", "radiolog*",
		}},
		{Value: "Engineering", Keywords: []string{
			"engineer*", "developer*", "software", "devops", "backend", "back end", "frontend",
			"front end", "fullstack", "full stack", "programmer*", "sre", "qa", "data scientist",
			"machine learning", "architect*", "golang", "java", "python",
		}},
		{Value: "Product", Keywords: []string{
			"product", "ux", "ui", "designer*", "design", "scrum master",
		}},
		{Value: "Sales", Keywords: []string{
			"sales", "account executive", "account manager", "business development", "sdr", "bdr",
			"salesperson", "closer",
		}},
		{Value: "Marketing", Keywords: []string{
			"marketing", "seo", "content", "brand*", "growth", "social media", "communications",
			"copywriter*",
		}},
		{Value: "Finance", Keywords: []string{
			"financ*", "accountant*", "accounting", "controller", "payroll", "auditor*", "treasury",
			"bookkeep*", "cfo", "tax",
		}},
		{Value: "Human Resources", Keywords: []string{
			"hr", "human resources", "recruit*", "talent", "people partner", "people operations",
		}},
		{Value: "Operations", Keywords: []string{
			"operations", "logistic*", "supply chain", "warehouse", "procurement", "office manager",
			"coordinator*", "dispatcher*", "driver*",
		}},
	},
	Fallback: GeneralDepartment,
}

var Seniorities = Classifier[models.SeniorityLevel]{
	Rules: []Rule[models.SeniorityLevel]{
		{Value: models.SeniorityEntry, Keywords: []string{"entry", "junior", "jr", "graduate", "trainee", "apprentice"}},
		{Value: models.SeniorityMid, Keywords: []string{"mid", "associate", "intermediate"}},
		{Value: models.SenioritySenior, Keywords: []string{"senior", "sr"}},
		{Value: models.SeniorityLead, Keywords: []string{"lead", "principal", "staff"}},
		{Value: models.SeniorityManager, Keywords: []string{"manager", "supervisor"}},
		{Value: models.SeniorityDirector, Keywords: []string{"director", "vp", "vice president", "head of", "chief"}},
	},
	Fallback: models.SeniorityMid,
}

var JobTypes = Classifier[models.JobType]{
	Rules: []Rule[models.JobType]{
		{Value: models.JobTypeInternship, Keywords: []string{"intern", "interns", "internship"}},
		{Value: models.JobTypeContract, Keywords: []string{"contract", "contractor", "freelance*", "temporary", "temp"}},
		{Value: models.JobTypePartTime, Keywords: []string{"part time", "parttime"}},
	},
	Fallback: models.JobTypeFullTime,
}

// Modalities checks hybrid first so "hybrid remote" reads as hybrid.
var Modalities = Classifier[models.WorkModality]{
	Rules: []Rule[models.WorkModality]{
		{Value: models.WorkModalityHybrid, Keywords: []string{"hybrid"}},
		{Value: models.WorkModalityRemote, Keywords: []string{"remote", "work from home", "wfh", "anywhere", "distributed", "telecommut*"}},
	},
	Fallback: models.WorkModalityOnSite,
}

// salaries is keyed by department then seniority. Missing pairs fall back to
// the General mid-level band.
var salaries = map[string]map[models.SeniorityLevel]string{
	"Engineering": {
		models.SeniorityEntry:    "$70,000 - $90,000",
		models.SeniorityMid:      "$90,000 - $120,000",
		models.SenioritySenior:   "$120,000 - $160,000",
		models.SeniorityLead:     "$150,000 - $190,000",
		models.SeniorityManager:  "$140,000 - $180,000",
		models.SeniorityDirector: "$180,000 - $240,000",
	},
	"Healthcare": {
		models.SeniorityEntry:    "$50,000 - $65,000",
		models.SeniorityMid:      "$65,000 - $85,000",
		models.SenioritySenior:   "$85,000 - $110,000",
		models.SeniorityLead:     "$100,000 - $125,000",
		models.SeniorityManager:  "$95,000 - $130,000",
		models.SeniorityDirector: "$130,000 - $180,000",
	},
	"Product": {
		models.SeniorityEntry:    "$65,000 - $85,000",
		models.SeniorityMid:      "$85,000 - $115,000",
		models.SenioritySenior:   "$115,000 - $150,000",
		models.SeniorityLead:     "$140,000 - $175,000",
		models.SeniorityManager:  "$130,000 - $170,000",
		models.SeniorityDirector: "$170,000 - $220,000",
	},
	"Sales": {
		models.SeniorityEntry:    "$45,000 - $60,000",
		models.SeniorityMid:      "$60,000 - $85,000",
		models.SenioritySenior:   "$85,000 - $115,000",
		models.SeniorityManager:  "$100,000 - $140,000",
		models.SeniorityDirector: "$140,000 - $190,000",
	},
	"Marketing": {
		models.SeniorityEntry:    "$45,000 - $60,000",
		models.SeniorityMid:      "$60,000 - $80,000",
		models.SenioritySenior:   "$80,000 - $105,000",
		models.SeniorityManager:  "$95,000 - $130,000",
		models.SeniorityDirector: "$130,000 - $175,000",
	},
	"Finance": {
		models.SeniorityEntry:    "$50,000 - $65,000",
		models.SeniorityMid:      "$65,000 - $90,000",
		models.SenioritySenior:   "$90,000 - $120,000",
		models.SeniorityManager:  "$110,000 - $145,000",
		models.SeniorityDirector: "$150,000 - $200,000",
	},
	"Human Resources": {
		models.SeniorityEntry:   "$42,000 - $55,000",
		models.SeniorityMid:     "$55,000 - $75,000",
		models.SenioritySenior:  "$75,000 - $95,000",
		models.SeniorityManager: "$90,000 - $120,000",
	},
	"Operations": {
		models.SeniorityEntry:   "$38,000 - $50,000",
		models.SeniorityMid:     "$50,000 - $68,000",
		models.SenioritySenior:  "$68,000 - $90,000",
		models.SeniorityManager: "$80,000 - $110,000",
	},
	GeneralDepartment: {
		models.SeniorityEntry:    "$40,000 - $55,000",
		models.SeniorityMid:      "$55,000 - $75,000",
		models.SenioritySenior:   "$75,000 - $100,000",
		models.SeniorityLead:     "$90,000 - $115,000",
		models.SeniorityManager:  "$85,000 - $115,000",
		models.SeniorityDirector: "$120,000 - $160,000",
	},
}

// urlTemplates holds the posting URL format per source. Formats receive the
// title slug, and the company slug first when withCompany is set. Sources
// without an entry (manual) get no URL.
var urlTemplates = map[models.Source]struct {
	format      string
	withCompany bool
}{
	models.SourceLinkedIn:       {format: "https://www.linkedin.com/jobs/view/%s"},
	models.SourceIndeed:         {format: "https://www.indeed.com/viewjob?jk=%s"},
	models.SourceGlassdoor:      {format: "https://www.glassdoor.com/job-listing/%s"},
	models.SourceCompanyWebsite: {format: "https://www.%s.com/careers/%s", withCompany: true},
}

var stageNotes = map[models.VacancyStage]string{
	models.VacancyStageDetected:  "Vacancy detected; no outreach made yet.",
	models.VacancyStageContacted: "Initial contact made with the hiring company.",
	models.VacancyStageProposal:  "Staffing proposal sent to the hiring company.",
	models.VacancyStageWon:       "Placement agreed with the hiring company.",
	models.VacancyStageLost:      "Opportunity closed without a placement.",
}

var seniorityLabels = map[models.SeniorityLevel]string{
	models.SeniorityEntry:    "entry-level",
	models.SeniorityMid:      "mid-level",
	models.SenioritySenior:   "senior",
	models.SeniorityLead:     "lead",
	models.SeniorityManager:  "manager-level",
	models.SeniorityDirector: "director-level",
}

var jobTypeLabels = map[models.JobType]string{
	models.JobTypeFullTime:   "full-time",
	models.JobTypePartTime:   "part-time",
	models.JobTypeContract:   "contract",
	models.JobTypeInternship: "internship",
}

var modalityLabels = map[models.WorkModality]string{
	models.WorkModalityOnSite: "on-site",
	models.WorkModalityRemote: "remote",
	models.WorkModalityHybrid: "hybrid",
}
