package mock

import (
	"time"

	"github.com/garnizeh/staffing/internal/inference"
	"github.com/garnizeh/staffing/pkg/models"
)

// enrich builds a vacancy from create input, inferring whatever the caller
// left out. Blank strings count as left out.
func enrich(id int64, in models.VacancyInput, companyName string, now time.Time) (models.Vacancy, error) {
	location, _ := text(in.Location)
	v := models.Vacancy{
		ID:            id,
		JobTitle:      in.JobTitle,
		CompanyID:     in.CompanyID,
		CompanyName:   companyName,
		Location:      location,
		Status:        orDefault(in.Status, models.VacancyStatusActive),
		PipelineStage: orDefault(in.PipelineStage, models.VacancyStageDetected),
		Source:        orDefault(in.Source, models.SourceManual),
		PublishedDate: orDefault(in.PublishedDate, now),
		ScrapedAt:     orDefault(in.ScrapedAt, now),
		AssignedTo:    cloneString(in.AssignedTo),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	derive(&v, derived{
		department:   in.Department,
		seniority:    in.SeniorityLevel,
		jobType:      in.JobType,
		modality:     in.WorkModality,
		remoteViable: in.IsRemoteViable,
		salary:       in.SalaryRange,
	})

	if u, ok := text(in.OriginalURL); ok {
		v.OriginalURL = u
	} else {
		v.OriginalURL = inference.PostingURL(v.Source, v.JobTitle, v.CompanyName)
	}
	if d, ok := text(in.Description); ok {
		v.Description = d
	} else {
		d, err := inference.Description(inference.DescriptionData{
			Title:      v.JobTitle,
			Company:    v.CompanyName,
			Location:   v.Location,
			Department: v.Department,
			Seniority:  v.SeniorityLevel,
			JobType:    v.JobType,
			Modality:   v.WorkModality,
			Salary:     v.SalaryRange,
		})
		if err != nil {
			return models.Vacancy{}, err
		}
		v.Description = d
	}
	if n, ok := text(in.Notes); ok {
		v.Notes = n
	} else {
		v.Notes = inference.StageNote(v.PipelineStage)
	}
	return v, nil
}

// derived holds the caller-supplied values of the inferable attributes; nil
// means infer.
type derived struct {
	department   *string
	seniority    *models.SeniorityLevel
	jobType      *models.JobType
	modality     *models.WorkModality
	remoteViable *bool
	salary       *string
}

// derive fills the title/location dependent attributes. Salary depends on the
// final department and seniority, so it runs last.
func derive(v *models.Vacancy, d derived) {
	if dep, ok := text(d.department); ok {
		v.Department = dep
	} else {
		v.Department = inference.Department(v.JobTitle)
	}
	v.SeniorityLevel = orDefault(d.seniority, inference.Seniority(v.JobTitle))
	v.JobType = orDefault(d.jobType, inference.JobType(v.JobTitle))
	v.WorkModality = orDefault(d.modality, inference.WorkModality(v.JobTitle, v.Location))
	v.IsRemoteViable = orDefault(d.remoteViable, inference.RemoteViable(v.WorkModality))
	if sal, ok := text(d.salary); ok {
		v.SalaryRange = sal
	} else {
		v.SalaryRange = inference.SalaryRange(v.Department, v.SeniorityLevel)
	}
}

// reinfer refreshes the attributes a title or location change invalidates,
// keeping the ones the patch set explicitly. Only the work modality (and the
// remote flag derived from it) reads the location.
func reinfer(v *models.Vacancy, p models.VacancyPatch) {
	if p.JobTitle != nil {
		derive(v, derived{
			department:   p.Department,
			seniority:    p.SeniorityLevel,
			jobType:      p.JobType,
			modality:     p.WorkModality,
			remoteViable: p.IsRemoteViable,
			salary:       p.SalaryRange,
		})
		return
	}
	if p.Location != nil {
		v.WorkModality = orDefault(p.WorkModality, inference.WorkModality(v.JobTitle, v.Location))
		v.IsRemoteViable = orDefault(p.IsRemoteViable, inference.RemoteViable(v.WorkModality))
	}
}
