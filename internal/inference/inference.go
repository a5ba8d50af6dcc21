package inference

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/garnizeh/staffing/pkg/models"
)

// Department classifies a job title into a department family.
func Department(title string) string {
	return Departments.Classify(title)
}

func Seniority(title string) models.SeniorityLevel {
	return Seniorities.Classify(title)
}

func JobType(title string) models.JobType {
	return JobTypes.Classify(title)
}

// WorkModality looks for remote or hybrid markers in the title and location.
func WorkModality(title, location string) models.WorkModality {
	return Modalities.Classify(title + " " + location)
}

// RemoteViable reports whether a modality allows working away from the site.
func RemoteViable(m models.WorkModality) bool {
	return m != models.WorkModalityOnSite
}

// SalaryRange looks up the band for a department and seniority.
func SalaryRange(department string, level models.SeniorityLevel) string {
	if band, ok := salaries[department][level]; ok {
		return band
	}
	return salaries[GeneralDepartment][models.SeniorityMid]
}

// PostingURL synthesizes a listing URL for the source. Sources without a
// template return "".
func PostingURL(src models.Source, title, company string) string {
	tpl, ok := urlTemplates[src]
	if !ok {
		return ""
	}
	slug := Slugify(title)
	if tpl.withCompany {
		c := strings.ReplaceAll(Slugify(company), "-", "")
		if c == "" {
			c = "company"
		}
		return fmt.Sprintf(tpl.format, c, slug)
	}
	return fmt.Sprintf(tpl.format, slug)
}

// StageNote returns the boilerplate note for a vacancy stage.
func StageNote(stage models.VacancyStage) string {
	return stageNotes[stage]
}

const descriptionTemplate = `{{.Company}} is hiring {{.Article}} {{.Seniority}} {{.Title}} to join its {{.Department}} team` +
	`{{if .Location}} in {{.Location}}{{end}}. ` +
	`This is a {{.JobType}} position with {{.Modality}} work.` +
	`{{if .Salary}} Expected compensation: {{.Salary}}.{{end}}`

var description = template.Must(template.New("description").Parse(descriptionTemplate))

// DescriptionData feeds the description template.
type DescriptionData struct {
	Title      string
	Company    string
	Location   string
	Department string
	Seniority  models.SeniorityLevel
	JobType    models.JobType
	Modality   models.WorkModality
	Salary     string
}

// Description renders the narrative used when a vacancy arrives without one.
func Description(d DescriptionData) (string, error) {
	company := d.Company
	if company == "" {
		company = "The company"
	}
	seniority := label(seniorityLabels, d.Seniority)
	article := "a"
	if seniority != "" && strings.ContainsAny(seniority[:1], "aeiou") {
		article = "an"
	}
	data := map[string]string{
		"Article":    article,
		"Title":      d.Title,
		"Company":    company,
		"Location":   d.Location,
		"Department": d.Department,
		"Seniority":  seniority,
		"JobType":    label(jobTypeLabels, d.JobType),
		"Modality":   label(modalityLabels, d.Modality),
		"Salary":     d.Salary,
	}
	var buf bytes.Buffer
	if err := description.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render description: %w", err)
	}
	return buf.String(), nil
}

func label[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return strings.ReplaceAll(string(k), "_", " ")
}
