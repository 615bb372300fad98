package models

// Input is the mutation payload for one entity: a create (no id) or an
// update (id required), each with an optional upload.
type Input[F any] struct {
	id     string
	Fields F
	Upload *Upload
}

func CreateInput[F any](fields F, upload *Upload) Input[F] {
	return Input[F]{Fields: fields, Upload: upload}
}

func UpdateInput[F any](id string, fields F, upload *Upload) (Input[F], error) {
	if id == "" {
		return Input[F]{}, NewValidationError("id", "id is required for updates")
	}
	return Input[F]{id: id, Fields: fields, Upload: upload}, nil
}

func (in Input[F]) ID() string {
	return in.id
}

func (in Input[F]) IsUpdate() bool {
	return in.id != ""
}

type ProjectFields struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GithubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
	Order       int      `json:"order"`
}

type ExperienceFields struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description []string `json:"description"`
	Order       int      `json:"order"`
}

type EducationFields struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type CertificationFields struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Order    int    `json:"order"`
}

type HeroFields struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Intro     string `json:"intro"`
	ResumeURL string `json:"resumeUrl"`
}

type AboutFields struct {
	Bio string `json:"bio"`
}

type SkillFields struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SummaryFields is the input of a project card summary request.
type SummaryFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
